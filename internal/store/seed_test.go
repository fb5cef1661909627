// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package store

import (
	"context"
	"testing"

	"github.com/netwatch-dev/netwatch/internal/models"
)

func TestSeed(t *testing.T) {
	t.Parallel()
	m := NewMemory()
	ctx := context.Background()

	if err := Seed(ctx, m); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	devices, err := m.ListDevices(ctx)
	if err != nil {
		t.Fatalf("ListDevices failed: %v", err)
	}
	if len(devices) != 4 {
		t.Errorf("Expected 4 seeded devices, got %d", len(devices))
	}

	rules, err := m.ListIdsRules(ctx)
	if err != nil {
		t.Fatalf("ListIdsRules failed: %v", err)
	}
	if len(rules) != 4 {
		t.Errorf("Expected 4 seeded IDS rules, got %d", len(rules))
	}
	for _, r := range rules {
		if !r.Enabled {
			t.Errorf("Expected seeded rule %q to be enabled", r.Name)
		}
	}

	events, err := m.ListSecurityEvents(ctx, 0)
	if err != nil {
		t.Fatalf("ListSecurityEvents failed: %v", err)
	}
	if len(events) != 4 {
		t.Errorf("Expected 4 seeded security events, got %d", len(events))
	}

	vaults, err := m.ListPasswordVaults(ctx)
	if err != nil {
		t.Fatalf("ListPasswordVaults failed: %v", err)
	}
	if len(vaults) != 2 {
		t.Fatalf("Expected 2 seeded vaults, got %d", len(vaults))
	}

	entries := 0
	for _, v := range vaults {
		list, err := m.ListPasswordEntries(ctx, &v.ID)
		if err != nil {
			t.Fatalf("ListPasswordEntries(%d) failed: %v", v.ID, err)
		}
		entries += len(list)
	}
	if entries != 3 {
		t.Errorf("Expected 3 seeded password entries, got %d", entries)
	}

	latest, err := m.LatestSystemMetric(ctx)
	if err != nil {
		t.Fatalf("LatestSystemMetric failed: %v", err)
	}
	if latest.ActiveDevices != 127 {
		t.Errorf("Expected seeded system metric with 127 active devices, got %d", latest.ActiveDevices)
	}
}

func TestSeed_DeviceStatuses(t *testing.T) {
	t.Parallel()
	m := NewMemory()
	ctx := context.Background()

	if err := Seed(ctx, m); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	devices, err := m.ListDevices(ctx)
	if err != nil {
		t.Fatalf("ListDevices failed: %v", err)
	}

	counts := map[string]int{}
	for _, d := range devices {
		counts[d.Status]++
	}
	if counts[models.DeviceStatusOnline] != 2 {
		t.Errorf("Expected 2 online devices, got %d", counts[models.DeviceStatusOnline])
	}
	if counts[models.DeviceStatusWarning] != 1 {
		t.Errorf("Expected 1 warning device, got %d", counts[models.DeviceStatusWarning])
	}
	if counts[models.DeviceStatusOffline] != 1 {
		t.Errorf("Expected 1 offline device, got %d", counts[models.DeviceStatusOffline])
	}
}
