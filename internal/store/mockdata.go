// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package store

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/netwatch-dev/netwatch/internal/models"
)

// MockDataHours is the number of hourly snapshots GenerateMockData writes.
const MockDataHours = 24

// MockDataResult reports how many rows GenerateMockData created.
type MockDataResult struct {
	BandwidthMetrics int `json:"bandwidthMetrics"`
	SystemMetrics    int `json:"systemMetrics"`
}

// GenerateMockData writes 24 hourly snapshots of synthetic telemetry
// walking backward from now: one bandwidth sample per online or warning
// device and one system metric per hour. It succeeds even when no
// devices exist, in which case only system metrics are written.
func GenerateMockData(ctx context.Context, s Store) (MockDataResult, error) {
	var result MockDataResult

	devices, err := s.ListDevices(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list devices: %w", err)
	}

	active := make([]models.Device, 0, len(devices))
	for _, d := range devices {
		if d.Status == models.DeviceStatusOnline || d.Status == models.DeviceStatusWarning {
			active = append(active, d)
		}
	}

	now := time.Now().UTC()
	for i := 0; i < MockDataHours; i++ {
		ts := now.Add(-time.Duration(i) * time.Hour)
		for _, d := range active {
			deviceID := d.ID
			req := models.CreateBandwidthMetricRequest{
				DeviceID:  &deviceID,
				Timestamp: &ts,
				Incoming:  rand.Float64() * 3,
				Outgoing:  rand.Float64() * 2.5,
			}
			if _, err := s.CreateBandwidthMetric(ctx, req); err != nil {
				return result, fmt.Errorf("failed to create bandwidth metric for device %d: %w", d.ID, err)
			}
			result.BandwidthMetrics++
		}

		req := models.CreateSystemMetricRequest{
			Timestamp:      &ts,
			ActiveDevices:  120 + rand.IntN(10),
			TotalBandwidth: 2 + rand.Float64(),
			Warnings:       rand.IntN(5),
			Uptime:         99 + rand.Float64(),
		}
		if _, err := s.CreateSystemMetric(ctx, req); err != nil {
			return result, fmt.Errorf("failed to create system metric: %w", err)
		}
		result.SystemMetrics++
	}

	return result, nil
}
