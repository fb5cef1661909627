// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package store

import (
	"context"
	"fmt"

	"github.com/netwatch-dev/netwatch/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// Seed loads a small sample dataset into the store: four devices, four
// IDS rules, four security events, two password vaults with three
// entries, and one system metric snapshot. It works against any Store
// backend and is intended for development setups.
func Seed(ctx context.Context, s Store) error {
	bw := func(v float64) *float64 { return &v }

	devices := []models.CreateDeviceRequest{
		{
			Name:         "Core Router R1",
			Type:         "router",
			IPAddress:    "192.168.1.1",
			Status:       models.DeviceStatusOnline,
			Bandwidth:    bw(450),
			MaxBandwidth: bw(1000),
			Model:        strPtr("Cisco ASR 1000"),
			Location:     strPtr("Data Center A"),
		},
		{
			Name:         "Switch SW-01",
			Type:         "switch",
			IPAddress:    "192.168.1.10",
			Status:       models.DeviceStatusOnline,
			Bandwidth:    bw(320),
			MaxBandwidth: bw(600),
			Model:        strPtr("HP ProCurve 2920"),
			Location:     strPtr("Floor 1"),
		},
		{
			Name:         "Access Point AP-01",
			Type:         "access_point",
			IPAddress:    "192.168.1.20",
			Status:       models.DeviceStatusWarning,
			Bandwidth:    bw(890),
			MaxBandwidth: bw(1000),
			Model:        strPtr("Ubiquiti UniFi"),
			Location:     strPtr("Floor 2"),
		},
		{
			Name:         "Firewall FW-01",
			Type:         "firewall",
			IPAddress:    "192.168.1.5",
			Status:       models.DeviceStatusOffline,
			Bandwidth:    bw(0),
			MaxBandwidth: bw(500),
			Model:        strPtr("Fortinet FortiGate"),
			Location:     strPtr("DMZ"),
		},
	}
	for _, req := range devices {
		if _, err := s.CreateDevice(ctx, req); err != nil {
			return fmt.Errorf("failed to seed device %s: %w", req.Name, err)
		}
	}

	if _, err := s.CreateSystemMetric(ctx, models.CreateSystemMetricRequest{
		ActiveDevices:  127,
		TotalBandwidth: 2.4,
		Warnings:       3,
		Uptime:         99.9,
	}); err != nil {
		return fmt.Errorf("failed to seed system metric: %w", err)
	}

	rules := []models.CreateIdsRuleRequest{
		{
			Name:        "SSH Brute Force Detection",
			Description: "Detects repeated SSH login attempts from the same IP",
			Pattern:     `^.*sshd.*Failed password.*from\s+(\d+\.\d+\.\d+\.\d+)`,
			Severity:    models.SeverityHigh,
		},
		{
			Name:        "Port Scan Detection",
			Description: "Detects suspicious port scanning activity",
			Pattern:     "TCP.*SYN.*multiple_ports",
			Severity:    models.SeverityMedium,
		},
		{
			Name:        "Malware Communication",
			Description: "Detects known malware communication patterns",
			Pattern:     `.*\.exe.*suspicious_domain\.com`,
			Severity:    models.SeverityCritical,
		},
		{
			Name:        "Unusual Traffic Volume",
			Description: "Detects unusually high data transfer",
			Pattern:     "bandwidth_threshold_exceeded",
			Severity:    models.SeverityMedium,
		},
	}
	for _, req := range rules {
		if _, err := s.CreateIdsRule(ctx, req); err != nil {
			return fmt.Errorf("failed to seed IDS rule %s: %w", req.Name, err)
		}
	}

	events := []models.CreateSecurityEventRequest{
		{
			EventType:   "brute_force",
			Severity:    models.SeverityHigh,
			SourceIP:    "45.123.45.67",
			TargetIP:    strPtr("192.168.1.1"),
			Description: "Multiple failed SSH login attempts detected",
			Status:      models.EventStatusNew,
			DeviceID:    intPtr(1),
		},
		{
			EventType:   "port_scan",
			Severity:    models.SeverityMedium,
			SourceIP:    "178.62.199.34",
			TargetIP:    strPtr("192.168.1.10"),
			Description: "Port scan activity from external IP detected",
			Status:      models.EventStatusInvestigating,
			DeviceID:    intPtr(2),
		},
		{
			EventType:   "unusual_traffic",
			Severity:    models.SeverityMedium,
			SourceIP:    "192.168.1.20",
			TargetIP:    strPtr("203.0.113.5"),
			Description: "Unusually high outbound traffic volume",
			Status:      models.EventStatusNew,
			DeviceID:    intPtr(3),
		},
		{
			EventType:   "intrusion_attempt",
			Severity:    models.SeverityCritical,
			SourceIP:    "198.51.100.23",
			TargetIP:    strPtr("192.168.1.5"),
			Description: "Suspicious intrusion attempt against firewall detected",
			Status:      models.EventStatusResolved,
			DeviceID:    intPtr(4),
		},
	}
	for _, req := range events {
		if _, err := s.CreateSecurityEvent(ctx, req); err != nil {
			return fmt.Errorf("failed to seed security event %s: %w", req.EventType, err)
		}
	}

	vaults := []models.CreatePasswordVaultRequest{
		{Name: "Personal Vault", Description: strPtr("My personal password vault")},
		{Name: "Work Vault", Description: strPtr("Passwords for work accounts")},
	}
	vaultIDs := make([]int, 0, len(vaults))
	for _, req := range vaults {
		v, err := s.CreatePasswordVault(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to seed vault %s: %w", req.Name, err)
		}
		vaultIDs = append(vaultIDs, v.ID)
	}

	entries := []models.CreatePasswordEntryRequest{
		{
			VaultID:           vaultIDs[0],
			Title:             "Example Website",
			Username:          strPtr("user@example.com"),
			EncryptedPassword: "securepassword123",
			Website:           strPtr("https://www.example.com"),
			Notes:             strPtr("This is an example password entry."),
		},
		{
			VaultID:           vaultIDs[0],
			Title:             "Online Banking",
			Username:          strPtr("banking_user"),
			EncryptedPassword: "banksecure!",
			Website:           strPtr("https://www.mybank.com"),
			Notes:             strPtr("Important: MFA enabled."),
		},
		{
			VaultID:           vaultIDs[1],
			Title:             "Company VPN",
			Username:          strPtr("vpn_user"),
			EncryptedPassword: "corporateVPN#",
			Website:           strPtr("https://vpn.company.com"),
			Notes:             strPtr("Internal use only."),
		},
	}
	for _, req := range entries {
		if _, err := s.CreatePasswordEntry(ctx, req); err != nil {
			return fmt.Errorf("failed to seed password entry %s: %w", req.Title, err)
		}
	}

	return nil
}
