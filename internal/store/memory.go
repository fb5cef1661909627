// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/netwatch-dev/netwatch/internal/models"
)

// Memory is an in-memory Store backed by maps and per-entity counters.
// It is safe for concurrent use within a single process; nothing is
// persisted across restarts.
type Memory struct {
	mu sync.RWMutex

	devices          map[int]models.Device
	bandwidthMetrics map[int]models.BandwidthMetric
	systemMetrics    map[int]models.SystemMetric
	securityEvents   map[int]models.SecurityEvent
	idsRules         map[int]models.IdsRule
	passwordVaults   map[int]models.PasswordVault
	passwordEntries  map[int]models.PasswordEntry

	nextDeviceID          int
	nextBandwidthMetricID int
	nextSystemMetricID    int
	nextSecurityEventID   int
	nextIdsRuleID         int
	nextPasswordVaultID   int
	nextPasswordEntryID   int

	// now is swappable for deterministic tests.
	now func() time.Time
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		devices:               make(map[int]models.Device),
		bandwidthMetrics:      make(map[int]models.BandwidthMetric),
		systemMetrics:         make(map[int]models.SystemMetric),
		securityEvents:        make(map[int]models.SecurityEvent),
		idsRules:              make(map[int]models.IdsRule),
		passwordVaults:        make(map[int]models.PasswordVault),
		passwordEntries:       make(map[int]models.PasswordEntry),
		nextDeviceID:          1,
		nextBandwidthMetricID: 1,
		nextSystemMetricID:    1,
		nextSecurityEventID:   1,
		nextIdsRuleID:         1,
		nextPasswordVaultID:   1,
		nextPasswordEntryID:   1,
		now:                   func() time.Time { return time.Now().UTC() },
	}
}

// Devices

func (m *Memory) ListDevices(_ context.Context) ([]models.Device, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Device, 0, len(m.devices))
	for _, d := range m.devices {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) GetDevice(_ context.Context, id int) (models.Device, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.devices[id]
	if !ok {
		return models.Device{}, ErrNotFound
	}
	return d, nil
}

func (m *Memory) CreateDevice(_ context.Context, req models.CreateDeviceRequest) (models.Device, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ipTakenLocked(req.IPAddress, 0) {
		return models.Device{}, fmt.Errorf("device ip %s: %w", req.IPAddress, ErrDuplicate)
	}

	d := req.Device(m.now())
	d.ID = m.nextDeviceID
	m.nextDeviceID++
	m.devices[d.ID] = d
	return d, nil
}

// ipTakenLocked reports whether ip belongs to a device other than
// excludeID. Callers must hold m.mu.
func (m *Memory) ipTakenLocked(ip string, excludeID int) bool {
	for _, d := range m.devices {
		if d.ID != excludeID && d.IPAddress == ip {
			return true
		}
	}
	return false
}

func (m *Memory) UpdateDevice(_ context.Context, id int, req models.UpdateDeviceRequest) (models.Device, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.devices[id]
	if !ok {
		return models.Device{}, ErrNotFound
	}
	if req.IPAddress != nil && m.ipTakenLocked(*req.IPAddress, id) {
		return models.Device{}, fmt.Errorf("device ip %s: %w", *req.IPAddress, ErrDuplicate)
	}
	req.Apply(&d, m.now())
	m.devices[id] = d
	return d, nil
}

func (m *Memory) DeleteDevice(_ context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.devices[id]
	delete(m.devices, id)
	return ok, nil
}

// Bandwidth metrics

func (m *Memory) ListBandwidthMetrics(_ context.Context, q BandwidthQuery) ([]models.BandwidthMetric, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultBandwidthLimit
	}

	out := make([]models.BandwidthMetric, 0, len(m.bandwidthMetrics))
	for _, bm := range m.bandwidthMetrics {
		if q.DeviceID != nil && (bm.DeviceID == nil || *bm.DeviceID != *q.DeviceID) {
			continue
		}
		if q.Since != nil && bm.Timestamp.Before(*q.Since) {
			continue
		}
		out = append(out, bm)
	}
	sortNewestFirst(out, func(bm models.BandwidthMetric) (time.Time, int) { return bm.Timestamp, bm.ID })
	return truncate(out, limit), nil
}

func (m *Memory) CreateBandwidthMetric(_ context.Context, req models.CreateBandwidthMetricRequest) (models.BandwidthMetric, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	bm := req.Metric(m.now())
	bm.ID = m.nextBandwidthMetricID
	m.nextBandwidthMetricID++
	m.bandwidthMetrics[bm.ID] = bm
	return bm, nil
}

// System metrics

func (m *Memory) SystemMetricsHistory(_ context.Context, limit int) ([]models.SystemMetric, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if limit <= 0 {
		limit = DefaultSystemHistoryLimit
	}

	out := make([]models.SystemMetric, 0, len(m.systemMetrics))
	for _, sm := range m.systemMetrics {
		out = append(out, sm)
	}
	sortNewestFirst(out, func(sm models.SystemMetric) (time.Time, int) { return sm.Timestamp, sm.ID })
	return truncate(out, limit), nil
}

func (m *Memory) LatestSystemMetric(ctx context.Context) (models.SystemMetric, error) {
	history, err := m.SystemMetricsHistory(ctx, 1)
	if err != nil {
		return models.SystemMetric{}, err
	}
	if len(history) == 0 {
		return models.SystemMetric{}, ErrNotFound
	}
	return history[0], nil
}

func (m *Memory) CreateSystemMetric(_ context.Context, req models.CreateSystemMetricRequest) (models.SystemMetric, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sm := req.Metric(m.now())
	sm.ID = m.nextSystemMetricID
	m.nextSystemMetricID++
	m.systemMetrics[sm.ID] = sm
	return sm, nil
}

// Security events

func (m *Memory) ListSecurityEvents(_ context.Context, limit int) ([]models.SecurityEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.listSecurityEventsLocked("", limit), nil
}

// ListSecurityEventsByStatus returns events with the given status.
// An unknown status simply matches nothing.
func (m *Memory) ListSecurityEventsByStatus(_ context.Context, status string, limit int) ([]models.SecurityEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.listSecurityEventsLocked(status, limit), nil
}

func (m *Memory) listSecurityEventsLocked(status string, limit int) []models.SecurityEvent {
	if limit <= 0 {
		limit = DefaultEventLimit
	}

	out := make([]models.SecurityEvent, 0, len(m.securityEvents))
	for _, e := range m.securityEvents {
		if status != "" && e.Status != status {
			continue
		}
		out = append(out, e)
	}
	sortNewestFirst(out, func(e models.SecurityEvent) (time.Time, int) { return e.Timestamp, e.ID })
	return truncate(out, limit)
}

func (m *Memory) GetSecurityEvent(_ context.Context, id int) (models.SecurityEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.securityEvents[id]
	if !ok {
		return models.SecurityEvent{}, ErrNotFound
	}
	return e, nil
}

func (m *Memory) CreateSecurityEvent(_ context.Context, req models.CreateSecurityEventRequest) (models.SecurityEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := req.Event(m.now())
	e.ID = m.nextSecurityEventID
	m.nextSecurityEventID++
	m.securityEvents[e.ID] = e
	return e, nil
}

func (m *Memory) UpdateSecurityEvent(_ context.Context, id int, req models.UpdateSecurityEventRequest) (models.SecurityEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.securityEvents[id]
	if !ok {
		return models.SecurityEvent{}, ErrNotFound
	}
	req.Apply(&e)
	m.securityEvents[id] = e
	return e, nil
}

func (m *Memory) DeleteSecurityEvent(_ context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.securityEvents[id]
	delete(m.securityEvents, id)
	return ok, nil
}

// IDS rules

func (m *Memory) ListIdsRules(_ context.Context) ([]models.IdsRule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.IdsRule, 0, len(m.idsRules))
	for _, r := range m.idsRules {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) GetIdsRule(_ context.Context, id int) (models.IdsRule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.idsRules[id]
	if !ok {
		return models.IdsRule{}, ErrNotFound
	}
	return r, nil
}

func (m *Memory) CreateIdsRule(_ context.Context, req models.CreateIdsRuleRequest) (models.IdsRule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r := req.Rule(m.now())
	r.ID = m.nextIdsRuleID
	m.nextIdsRuleID++
	m.idsRules[r.ID] = r
	return r, nil
}

func (m *Memory) UpdateIdsRule(_ context.Context, id int, req models.UpdateIdsRuleRequest) (models.IdsRule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.idsRules[id]
	if !ok {
		return models.IdsRule{}, ErrNotFound
	}
	req.Apply(&r, m.now())
	m.idsRules[id] = r
	return r, nil
}

func (m *Memory) DeleteIdsRule(_ context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.idsRules[id]
	delete(m.idsRules, id)
	return ok, nil
}

// Password vaults

func (m *Memory) ListPasswordVaults(_ context.Context) ([]models.PasswordVault, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.PasswordVault, 0, len(m.passwordVaults))
	for _, v := range m.passwordVaults {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) GetPasswordVault(_ context.Context, id int) (models.PasswordVault, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.passwordVaults[id]
	if !ok {
		return models.PasswordVault{}, ErrNotFound
	}
	return v, nil
}

func (m *Memory) CreatePasswordVault(_ context.Context, req models.CreatePasswordVaultRequest) (models.PasswordVault, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := req.Vault(m.now())
	v.ID = m.nextPasswordVaultID
	m.nextPasswordVaultID++
	m.passwordVaults[v.ID] = v
	return v, nil
}

func (m *Memory) UpdatePasswordVault(_ context.Context, id int, req models.UpdatePasswordVaultRequest) (models.PasswordVault, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.passwordVaults[id]
	if !ok {
		return models.PasswordVault{}, ErrNotFound
	}
	req.Apply(&v, m.now())
	m.passwordVaults[id] = v
	return v, nil
}

// DeletePasswordVault removes the vault and all its entries while
// holding the write lock, so readers never observe a half-deleted vault.
func (m *Memory) DeletePasswordVault(_ context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.passwordVaults[id]
	if !ok {
		return false, nil
	}
	for entryID, e := range m.passwordEntries {
		if e.VaultID == id {
			delete(m.passwordEntries, entryID)
		}
	}
	delete(m.passwordVaults, id)
	return true, nil
}

// Password entries

func (m *Memory) ListPasswordEntries(_ context.Context, vaultID *int) ([]models.PasswordEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.PasswordEntry, 0)
	for _, e := range m.passwordEntries {
		if vaultID == nil || e.VaultID == *vaultID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) GetPasswordEntry(_ context.Context, id int) (models.PasswordEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.passwordEntries[id]
	if !ok {
		return models.PasswordEntry{}, ErrNotFound
	}
	return e, nil
}

func (m *Memory) CreatePasswordEntry(_ context.Context, req models.CreatePasswordEntryRequest) (models.PasswordEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := req.Entry(m.now())
	e.ID = m.nextPasswordEntryID
	m.nextPasswordEntryID++
	m.passwordEntries[e.ID] = e
	return e, nil
}

func (m *Memory) UpdatePasswordEntry(_ context.Context, id int, req models.UpdatePasswordEntryRequest) (models.PasswordEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.passwordEntries[id]
	if !ok {
		return models.PasswordEntry{}, ErrNotFound
	}
	req.Apply(&e, m.now())
	m.passwordEntries[id] = e
	return e, nil
}

func (m *Memory) DeletePasswordEntry(_ context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.passwordEntries[id]
	delete(m.passwordEntries, id)
	return ok, nil
}

// Ping always succeeds for the in-memory backend.
func (m *Memory) Ping(_ context.Context) error { return nil }

// Close is a no-op for the in-memory backend.
func (m *Memory) Close() {}

// sortNewestFirst orders items by timestamp descending, breaking ties by
// ID ascending so rows created at the same instant keep insertion order.
func sortNewestFirst[T any](items []T, key func(T) (time.Time, int)) {
	sort.Slice(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if ti.Equal(tj) {
			return idi < idj
		}
		return ti.After(tj)
	})
}

func truncate[T any](items []T, limit int) []T {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
