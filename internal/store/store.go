// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

// Package store defines the persistence contract for Netwatch and its two
// backends: an in-memory map store for development and tests, and a
// PostgreSQL store for production.
//
// Both backends share the same semantics: server-assigned auto-increment
// IDs, server-assigned timestamps, partial updates that leave nil fields
// untouched, and idempotent deletes that report whether a row existed.
// Time-series reads return newest first.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/netwatch-dev/netwatch/internal/models"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a write violates a uniqueness
// constraint, such as a device ipAddress that is already registered.
var ErrDuplicate = errors.New("duplicate value for unique field")

// Default limits for time-series queries.
const (
	DefaultBandwidthLimit     = 50
	DefaultEventLimit         = 50
	DefaultSystemHistoryLimit = 24
)

// BandwidthQuery filters bandwidth metric reads.
// A zero Limit means DefaultBandwidthLimit. Since and DeviceID are
// optional; both filters are applied before the limit.
type BandwidthQuery struct {
	DeviceID *int
	Since    *time.Time
	Limit    int
}

// Store is the persistence contract shared by the memory and postgres
// backends. All methods honor context cancellation where the backend
// supports it.
type Store interface {
	// Devices
	ListDevices(ctx context.Context) ([]models.Device, error)
	GetDevice(ctx context.Context, id int) (models.Device, error)
	CreateDevice(ctx context.Context, req models.CreateDeviceRequest) (models.Device, error)
	UpdateDevice(ctx context.Context, id int, req models.UpdateDeviceRequest) (models.Device, error)
	// DeleteDevice does not cascade: metrics and events keep their
	// deviceId even when it no longer resolves.
	DeleteDevice(ctx context.Context, id int) (bool, error)

	// Bandwidth metrics
	ListBandwidthMetrics(ctx context.Context, q BandwidthQuery) ([]models.BandwidthMetric, error)
	CreateBandwidthMetric(ctx context.Context, req models.CreateBandwidthMetricRequest) (models.BandwidthMetric, error)

	// System metrics
	SystemMetricsHistory(ctx context.Context, limit int) ([]models.SystemMetric, error)
	LatestSystemMetric(ctx context.Context) (models.SystemMetric, error)
	CreateSystemMetric(ctx context.Context, req models.CreateSystemMetricRequest) (models.SystemMetric, error)

	// Security events
	ListSecurityEvents(ctx context.Context, limit int) ([]models.SecurityEvent, error)
	ListSecurityEventsByStatus(ctx context.Context, status string, limit int) ([]models.SecurityEvent, error)
	GetSecurityEvent(ctx context.Context, id int) (models.SecurityEvent, error)
	CreateSecurityEvent(ctx context.Context, req models.CreateSecurityEventRequest) (models.SecurityEvent, error)
	UpdateSecurityEvent(ctx context.Context, id int, req models.UpdateSecurityEventRequest) (models.SecurityEvent, error)
	DeleteSecurityEvent(ctx context.Context, id int) (bool, error)

	// IDS rules
	ListIdsRules(ctx context.Context) ([]models.IdsRule, error)
	GetIdsRule(ctx context.Context, id int) (models.IdsRule, error)
	CreateIdsRule(ctx context.Context, req models.CreateIdsRuleRequest) (models.IdsRule, error)
	UpdateIdsRule(ctx context.Context, id int, req models.UpdateIdsRuleRequest) (models.IdsRule, error)
	DeleteIdsRule(ctx context.Context, id int) (bool, error)

	// Password vaults
	ListPasswordVaults(ctx context.Context) ([]models.PasswordVault, error)
	GetPasswordVault(ctx context.Context, id int) (models.PasswordVault, error)
	CreatePasswordVault(ctx context.Context, req models.CreatePasswordVaultRequest) (models.PasswordVault, error)
	UpdatePasswordVault(ctx context.Context, id int, req models.UpdatePasswordVaultRequest) (models.PasswordVault, error)
	// DeletePasswordVault removes the vault and all its entries in a
	// single atomic operation.
	DeletePasswordVault(ctx context.Context, id int) (bool, error)

	// Password entries. A nil vaultID lists entries across all vaults.
	ListPasswordEntries(ctx context.Context, vaultID *int) ([]models.PasswordEntry, error)
	GetPasswordEntry(ctx context.Context, id int) (models.PasswordEntry, error)
	CreatePasswordEntry(ctx context.Context, req models.CreatePasswordEntryRequest) (models.PasswordEntry, error)
	UpdatePasswordEntry(ctx context.Context, id int, req models.UpdatePasswordEntryRequest) (models.PasswordEntry, error)
	DeletePasswordEntry(ctx context.Context, id int) (bool, error)

	// Ping reports backend health.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close()
}
