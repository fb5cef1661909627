// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package models

import "time"

// BandwidthMetric is a single bandwidth sample for a device.
// DeviceID is a weak reference: it may point at a deleted device.
type BandwidthMetric struct {
	ID        int       `json:"id"`
	DeviceID  *int      `json:"deviceId"`
	Timestamp time.Time `json:"timestamp"`
	Incoming  float64   `json:"incoming"`
	Outgoing  float64   `json:"outgoing"`
}

// CreateBandwidthMetricRequest represents a request to record a bandwidth sample.
// The timestamp is server-assigned and never client-supplied; Timestamp
// is excluded from the JSON surface and exists only so mock-data
// generation can backfill hourly snapshots.
type CreateBandwidthMetricRequest struct {
	DeviceID  *int       `json:"deviceId,omitempty" validate:"omitempty,gt=0"`
	Timestamp *time.Time `json:"-"`
	Incoming  float64    `json:"incoming" validate:"gte=0"`
	Outgoing  float64    `json:"outgoing" validate:"gte=0"`
}

// Metric materializes the request into a BandwidthMetric.
// The caller assigns the ID.
func (r CreateBandwidthMetricRequest) Metric(now time.Time) BandwidthMetric {
	ts := now
	if r.Timestamp != nil {
		ts = *r.Timestamp
	}
	return BandwidthMetric{
		DeviceID:  r.DeviceID,
		Timestamp: ts,
		Incoming:  r.Incoming,
		Outgoing:  r.Outgoing,
	}
}

// SystemMetric is a point-in-time snapshot of overall network health.
type SystemMetric struct {
	ID             int       `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	ActiveDevices  int       `json:"activeDevices"`
	TotalBandwidth float64   `json:"totalBandwidth"`
	Warnings       int       `json:"warnings"`
	Uptime         float64   `json:"uptime"`
}

// CreateSystemMetricRequest represents a request to record a system snapshot.
// As with bandwidth samples, Timestamp is server-side only.
type CreateSystemMetricRequest struct {
	Timestamp      *time.Time `json:"-"`
	ActiveDevices  int        `json:"activeDevices" validate:"gte=0"`
	TotalBandwidth float64    `json:"totalBandwidth" validate:"gte=0"`
	Warnings       int        `json:"warnings" validate:"gte=0"`
	Uptime         float64    `json:"uptime" validate:"gte=0,lte=100"`
}

// Metric materializes the request into a SystemMetric.
// The caller assigns the ID.
func (r CreateSystemMetricRequest) Metric(now time.Time) SystemMetric {
	ts := now
	if r.Timestamp != nil {
		ts = *r.Timestamp
	}
	return SystemMetric{
		Timestamp:      ts,
		ActiveDevices:  r.ActiveDevices,
		TotalBandwidth: r.TotalBandwidth,
		Warnings:       r.Warnings,
		Uptime:         r.Uptime,
	}
}
