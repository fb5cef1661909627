// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/netwatch-dev/netwatch/internal/models"
)

// newClockedMemory returns a store whose clock advances one hour per call,
// starting from a fixed instant, so ordering tests are deterministic.
func newClockedMemory() *Memory {
	m := NewMemory()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	m.now = func() time.Time {
		t := base.Add(time.Duration(tick) * time.Hour)
		tick++
		return t
	}
	return m
}

func createDevice(t *testing.T, m *Memory, name, ip, status string) models.Device {
	t.Helper()
	d, err := m.CreateDevice(context.Background(), models.CreateDeviceRequest{
		Name:      name,
		Type:      "router",
		IPAddress: ip,
		Status:    status,
	})
	if err != nil {
		t.Fatalf("CreateDevice(%s) failed: %v", name, err)
	}
	return d
}

func TestMemoryDevices_CreateAssignsSequentialIDs(t *testing.T) {
	t.Parallel()
	m := newClockedMemory()

	first := createDevice(t, m, "Router A", "10.0.0.1", "")
	second := createDevice(t, m, "Router B", "10.0.0.2", "")

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("Expected IDs 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestMemoryDevices_CreateAppliesDefaults(t *testing.T) {
	t.Parallel()
	m := newClockedMemory()

	d := createDevice(t, m, "Router A", "10.0.0.1", "")

	if d.Status != models.DeviceStatusOnline {
		t.Errorf("Expected default status %q, got %q", models.DeviceStatusOnline, d.Status)
	}
	if d.Bandwidth != 0 {
		t.Errorf("Expected default bandwidth 0, got %f", d.Bandwidth)
	}
	if d.MaxBandwidth != models.DefaultDeviceMaxBandwidth {
		t.Errorf("Expected default max bandwidth %f, got %f", models.DefaultDeviceMaxBandwidth, d.MaxBandwidth)
	}
	if d.LastActivity.IsZero() {
		t.Error("Expected lastActivity to be set on create")
	}
}

func TestMemoryDevices_UpdatePartial(t *testing.T) {
	t.Parallel()
	m := newClockedMemory()
	ctx := context.Background()

	d := createDevice(t, m, "Router A", "10.0.0.1", "")

	status := models.DeviceStatusWarning
	updated, err := m.UpdateDevice(ctx, d.ID, models.UpdateDeviceRequest{Status: &status})
	if err != nil {
		t.Fatalf("UpdateDevice failed: %v", err)
	}

	if updated.Status != models.DeviceStatusWarning {
		t.Errorf("Expected status %q, got %q", models.DeviceStatusWarning, updated.Status)
	}
	// Untouched fields keep their values
	if updated.Name != "Router A" {
		t.Errorf("Expected name to be unchanged, got %q", updated.Name)
	}
	if updated.IPAddress != "10.0.0.1" {
		t.Errorf("Expected IP to be unchanged, got %q", updated.IPAddress)
	}
	if !updated.LastActivity.After(d.LastActivity) {
		t.Error("Expected lastActivity to advance on update")
	}
}

func TestMemoryDevices_CreateDuplicateIP(t *testing.T) {
	t.Parallel()
	m := newClockedMemory()
	ctx := context.Background()

	createDevice(t, m, "Router A", "10.0.0.1", "")

	_, err := m.CreateDevice(ctx, models.CreateDeviceRequest{
		Name:      "Router B",
		Type:      "router",
		IPAddress: "10.0.0.1",
	})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Expected ErrDuplicate, got %v", err)
	}

	devices, err := m.ListDevices(ctx)
	if err != nil {
		t.Fatalf("ListDevices failed: %v", err)
	}
	if len(devices) != 1 {
		t.Errorf("Expected rejected create to leave 1 device, got %d", len(devices))
	}
}

func TestMemoryDevices_UpdateDuplicateIP(t *testing.T) {
	t.Parallel()
	m := newClockedMemory()
	ctx := context.Background()

	createDevice(t, m, "Router A", "10.0.0.1", "")
	b := createDevice(t, m, "Router B", "10.0.0.2", "")

	taken := "10.0.0.1"
	_, err := m.UpdateDevice(ctx, b.ID, models.UpdateDeviceRequest{IPAddress: &taken})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Expected ErrDuplicate, got %v", err)
	}

	got, err := m.GetDevice(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetDevice failed: %v", err)
	}
	if got.IPAddress != "10.0.0.2" {
		t.Errorf("Expected rejected update to leave IP 10.0.0.2, got %q", got.IPAddress)
	}

	// Re-submitting a device's own IP is not a conflict.
	own := "10.0.0.2"
	if _, err := m.UpdateDevice(ctx, b.ID, models.UpdateDeviceRequest{IPAddress: &own}); err != nil {
		t.Errorf("Expected update to own IP to succeed, got %v", err)
	}
}

func TestMemoryDevices_UpdateMissing(t *testing.T) {
	t.Parallel()
	m := NewMemory()

	name := "Ghost"
	_, err := m.UpdateDevice(context.Background(), 42, models.UpdateDeviceRequest{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestMemoryDevices_DeleteIdempotent(t *testing.T) {
	t.Parallel()
	m := newClockedMemory()
	ctx := context.Background()

	d := createDevice(t, m, "Router A", "10.0.0.1", "")

	deleted, err := m.DeleteDevice(ctx, d.ID)
	if err != nil {
		t.Fatalf("DeleteDevice failed: %v", err)
	}
	if !deleted {
		t.Error("Expected first delete to report true")
	}

	deleted, err = m.DeleteDevice(ctx, d.ID)
	if err != nil {
		t.Fatalf("Second DeleteDevice failed: %v", err)
	}
	if deleted {
		t.Error("Expected second delete to report false")
	}
}

func TestMemoryDevices_DeleteLeavesMetrics(t *testing.T) {
	t.Parallel()
	m := newClockedMemory()
	ctx := context.Background()

	d := createDevice(t, m, "Router A", "10.0.0.1", "")
	deviceID := d.ID
	if _, err := m.CreateBandwidthMetric(ctx, models.CreateBandwidthMetricRequest{
		DeviceID: &deviceID,
		Incoming: 1.5,
		Outgoing: 0.5,
	}); err != nil {
		t.Fatalf("CreateBandwidthMetric failed: %v", err)
	}

	if _, err := m.DeleteDevice(ctx, d.ID); err != nil {
		t.Fatalf("DeleteDevice failed: %v", err)
	}

	// Metrics referencing the deleted device survive
	metrics, err := m.ListBandwidthMetrics(ctx, BandwidthQuery{DeviceID: &deviceID})
	if err != nil {
		t.Fatalf("ListBandwidthMetrics failed: %v", err)
	}
	if len(metrics) != 1 {
		t.Fatalf("Expected 1 metric after device delete, got %d", len(metrics))
	}
	if metrics[0].DeviceID == nil || *metrics[0].DeviceID != deviceID {
		t.Error("Expected metric to keep its device reference")
	}
}

func TestMemoryBandwidthMetrics_NewestFirstWithLimit(t *testing.T) {
	t.Parallel()
	m := newClockedMemory()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := m.CreateBandwidthMetric(ctx, models.CreateBandwidthMetricRequest{
			Incoming: float64(i),
			Outgoing: float64(i),
		}); err != nil {
			t.Fatalf("CreateBandwidthMetric failed: %v", err)
		}
	}

	metrics, err := m.ListBandwidthMetrics(ctx, BandwidthQuery{Limit: 3})
	if err != nil {
		t.Fatalf("ListBandwidthMetrics failed: %v", err)
	}

	if len(metrics) != 3 {
		t.Fatalf("Expected 3 metrics, got %d", len(metrics))
	}
	for i := 1; i < len(metrics); i++ {
		if metrics[i].Timestamp.After(metrics[i-1].Timestamp) {
			t.Errorf("Expected newest-first ordering, got %v before %v",
				metrics[i-1].Timestamp, metrics[i].Timestamp)
		}
	}
	if metrics[0].ID != 5 {
		t.Errorf("Expected newest metric ID 5, got %d", metrics[0].ID)
	}
}

func TestMemoryBandwidthMetrics_TimestampTiesKeepInsertionOrder(t *testing.T) {
	t.Parallel()
	m := NewMemory()
	m.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := m.CreateBandwidthMetric(ctx, models.CreateBandwidthMetricRequest{
			Incoming: float64(i),
		}); err != nil {
			t.Fatalf("CreateBandwidthMetric failed: %v", err)
		}
	}

	metrics, err := m.ListBandwidthMetrics(ctx, BandwidthQuery{Limit: DefaultBandwidthLimit})
	if err != nil {
		t.Fatalf("ListBandwidthMetrics failed: %v", err)
	}
	if len(metrics) != 3 {
		t.Fatalf("Expected 3 metrics, got %d", len(metrics))
	}
	for i, bm := range metrics {
		if bm.ID != i+1 {
			t.Errorf("Expected equal timestamps in insertion order, got ID %d at position %d", bm.ID, i)
		}
	}
}

func TestMemoryBandwidthMetrics_FilterByDeviceAndSince(t *testing.T) {
	t.Parallel()
	m := newClockedMemory()
	ctx := context.Background()

	a := createDevice(t, m, "Router A", "10.0.0.1", "")
	b := createDevice(t, m, "Router B", "10.0.0.2", "")

	for i := 0; i < 4; i++ {
		id := a.ID
		if i%2 == 1 {
			id = b.ID
		}
		deviceID := id
		if _, err := m.CreateBandwidthMetric(ctx, models.CreateBandwidthMetricRequest{
			DeviceID: &deviceID,
			Incoming: 1,
			Outgoing: 1,
		}); err != nil {
			t.Fatalf("CreateBandwidthMetric failed: %v", err)
		}
	}

	deviceID := a.ID
	metrics, err := m.ListBandwidthMetrics(ctx, BandwidthQuery{DeviceID: &deviceID})
	if err != nil {
		t.Fatalf("ListBandwidthMetrics failed: %v", err)
	}
	if len(metrics) != 2 {
		t.Fatalf("Expected 2 metrics for device %d, got %d", a.ID, len(metrics))
	}
	for _, bm := range metrics {
		if bm.DeviceID == nil || *bm.DeviceID != a.ID {
			t.Errorf("Expected metric for device %d, got %v", a.ID, bm.DeviceID)
		}
	}

	// Since cutoff after the first two metrics excludes them
	since := metrics[0].Timestamp
	recent, err := m.ListBandwidthMetrics(ctx, BandwidthQuery{Since: &since})
	if err != nil {
		t.Fatalf("ListBandwidthMetrics with since failed: %v", err)
	}
	for _, bm := range recent {
		if bm.Timestamp.Before(since) {
			t.Errorf("Expected no metrics before %v, got one at %v", since, bm.Timestamp)
		}
	}
}

func TestMemorySystemMetrics_HistoryAndLatest(t *testing.T) {
	t.Parallel()
	m := newClockedMemory()
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		if _, err := m.CreateSystemMetric(ctx, models.CreateSystemMetricRequest{
			ActiveDevices:  100 + i,
			TotalBandwidth: 2.5,
			Warnings:       1,
			Uptime:         99.5,
		}); err != nil {
			t.Fatalf("CreateSystemMetric failed: %v", err)
		}
	}

	history, err := m.SystemMetricsHistory(ctx, 0)
	if err != nil {
		t.Fatalf("SystemMetricsHistory failed: %v", err)
	}
	if len(history) != DefaultSystemHistoryLimit {
		t.Errorf("Expected default limit of %d, got %d", DefaultSystemHistoryLimit, len(history))
	}

	latest, err := m.LatestSystemMetric(ctx)
	if err != nil {
		t.Fatalf("LatestSystemMetric failed: %v", err)
	}
	if latest.ActiveDevices != 129 {
		t.Errorf("Expected latest metric to have 129 active devices, got %d", latest.ActiveDevices)
	}
}

func TestMemorySystemMetrics_LatestEmpty(t *testing.T) {
	t.Parallel()
	m := NewMemory()

	_, err := m.LatestSystemMetric(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on empty store, got %v", err)
	}
}

func TestMemorySecurityEvents_StatusFilter(t *testing.T) {
	t.Parallel()
	m := newClockedMemory()
	ctx := context.Background()

	statuses := []string{
		models.EventStatusNew,
		models.EventStatusInvestigating,
		models.EventStatusNew,
		models.EventStatusResolved,
	}
	for i, status := range statuses {
		if _, err := m.CreateSecurityEvent(ctx, models.CreateSecurityEventRequest{
			EventType:   "port_scan",
			Severity:    models.SeverityMedium,
			SourceIP:    "203.0.113.1",
			Description: "scan detected",
			Status:      status,
		}); err != nil {
			t.Fatalf("CreateSecurityEvent %d failed: %v", i, err)
		}
	}

	tests := []struct {
		name   string
		status string
		want   int
	}{
		{"new events", models.EventStatusNew, 2},
		{"investigating", models.EventStatusInvestigating, 1},
		{"resolved", models.EventStatusResolved, 1},
		{"unknown status matches nothing", "escalated", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := m.ListSecurityEventsByStatus(ctx, tt.status, 0)
			if err != nil {
				t.Fatalf("ListSecurityEventsByStatus failed: %v", err)
			}
			if len(events) != tt.want {
				t.Errorf("Expected %d events, got %d", tt.want, len(events))
			}
			for _, e := range events {
				if e.Status != tt.status {
					t.Errorf("Expected status %q, got %q", tt.status, e.Status)
				}
			}
		})
	}
}

func TestMemorySecurityEvents_DefaultStatusAndOrder(t *testing.T) {
	t.Parallel()
	m := newClockedMemory()
	ctx := context.Background()

	e, err := m.CreateSecurityEvent(ctx, models.CreateSecurityEventRequest{
		EventType:   "brute_force",
		Severity:    models.SeverityHigh,
		SourceIP:    "203.0.113.9",
		Description: "failed logins",
	})
	if err != nil {
		t.Fatalf("CreateSecurityEvent failed: %v", err)
	}
	if e.Status != models.EventStatusNew {
		t.Errorf("Expected default status %q, got %q", models.EventStatusNew, e.Status)
	}

	second, err := m.CreateSecurityEvent(ctx, models.CreateSecurityEventRequest{
		EventType:   "port_scan",
		Severity:    models.SeverityLow,
		SourceIP:    "203.0.113.10",
		Description: "scan",
	})
	if err != nil {
		t.Fatalf("CreateSecurityEvent failed: %v", err)
	}

	events, err := m.ListSecurityEvents(ctx, 0)
	if err != nil {
		t.Fatalf("ListSecurityEvents failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if events[0].ID != second.ID {
		t.Errorf("Expected newest event first, got ID %d", events[0].ID)
	}
}

func TestMemoryIdsRules_DefaultsAndUpdate(t *testing.T) {
	t.Parallel()
	m := newClockedMemory()
	ctx := context.Background()

	r, err := m.CreateIdsRule(ctx, models.CreateIdsRuleRequest{
		Name:        "SSH Brute Force",
		Description: "Repeated SSH failures",
		Pattern:     "sshd.*Failed password",
		Severity:    models.SeverityHigh,
	})
	if err != nil {
		t.Fatalf("CreateIdsRule failed: %v", err)
	}
	if !r.Enabled {
		t.Error("Expected rule to be enabled by default")
	}

	disabled := false
	updated, err := m.UpdateIdsRule(ctx, r.ID, models.UpdateIdsRuleRequest{Enabled: &disabled})
	if err != nil {
		t.Fatalf("UpdateIdsRule failed: %v", err)
	}
	if updated.Enabled {
		t.Error("Expected rule to be disabled after update")
	}
	if !updated.UpdatedAt.After(r.UpdatedAt) {
		t.Error("Expected updatedAt to advance")
	}
	if updated.CreatedAt != r.CreatedAt {
		t.Error("Expected createdAt to be unchanged")
	}
}

func TestMemoryPasswordVaults_CascadeDelete(t *testing.T) {
	t.Parallel()
	m := newClockedMemory()
	ctx := context.Background()

	keep, err := m.CreatePasswordVault(ctx, models.CreatePasswordVaultRequest{Name: "Keep"})
	if err != nil {
		t.Fatalf("CreatePasswordVault failed: %v", err)
	}
	doomed, err := m.CreatePasswordVault(ctx, models.CreatePasswordVaultRequest{Name: "Doomed"})
	if err != nil {
		t.Fatalf("CreatePasswordVault failed: %v", err)
	}

	for _, vaultID := range []int{keep.ID, doomed.ID, doomed.ID} {
		if _, err := m.CreatePasswordEntry(ctx, models.CreatePasswordEntryRequest{
			VaultID:           vaultID,
			Title:             "Entry",
			EncryptedPassword: "secret",
		}); err != nil {
			t.Fatalf("CreatePasswordEntry failed: %v", err)
		}
	}

	deleted, err := m.DeletePasswordVault(ctx, doomed.ID)
	if err != nil {
		t.Fatalf("DeletePasswordVault failed: %v", err)
	}
	if !deleted {
		t.Fatal("Expected delete to report true")
	}

	orphans, err := m.ListPasswordEntries(ctx, &doomed.ID)
	if err != nil {
		t.Fatalf("ListPasswordEntries failed: %v", err)
	}
	if len(orphans) != 0 {
		t.Errorf("Expected cascade to remove entries, %d left", len(orphans))
	}

	kept, err := m.ListPasswordEntries(ctx, &keep.ID)
	if err != nil {
		t.Fatalf("ListPasswordEntries failed: %v", err)
	}
	if len(kept) != 1 {
		t.Errorf("Expected other vault's entry to survive, got %d", len(kept))
	}
}

func TestMemoryPasswordEntries_UpdateKeepsVault(t *testing.T) {
	t.Parallel()
	m := newClockedMemory()
	ctx := context.Background()

	v, err := m.CreatePasswordVault(ctx, models.CreatePasswordVaultRequest{Name: "Vault"})
	if err != nil {
		t.Fatalf("CreatePasswordVault failed: %v", err)
	}
	e, err := m.CreatePasswordEntry(ctx, models.CreatePasswordEntryRequest{
		VaultID:           v.ID,
		Title:             "Mail",
		EncryptedPassword: "secret",
	})
	if err != nil {
		t.Fatalf("CreatePasswordEntry failed: %v", err)
	}
	if e.IsFavorite {
		t.Error("Expected isFavorite to default to false")
	}

	fav := true
	title := "Mail Account"
	updated, err := m.UpdatePasswordEntry(ctx, e.ID, models.UpdatePasswordEntryRequest{
		Title:      &title,
		IsFavorite: &fav,
	})
	if err != nil {
		t.Fatalf("UpdatePasswordEntry failed: %v", err)
	}
	if updated.VaultID != v.ID {
		t.Errorf("Expected entry to stay in vault %d, got %d", v.ID, updated.VaultID)
	}
	if updated.Title != "Mail Account" || !updated.IsFavorite {
		t.Errorf("Expected updated title and favorite flag, got %q / %v", updated.Title, updated.IsFavorite)
	}
	if updated.EncryptedPassword != "secret" {
		t.Error("Expected password to be unchanged by partial update")
	}
}

func TestMemoryGetMissing(t *testing.T) {
	t.Parallel()
	m := NewMemory()
	ctx := context.Background()

	tests := []struct {
		name string
		get  func() error
	}{
		{"device", func() error { _, err := m.GetDevice(ctx, 99); return err }},
		{"security event", func() error { _, err := m.GetSecurityEvent(ctx, 99); return err }},
		{"ids rule", func() error { _, err := m.GetIdsRule(ctx, 99); return err }},
		{"vault", func() error { _, err := m.GetPasswordVault(ctx, 99); return err }},
		{"entry", func() error { _, err := m.GetPasswordEntry(ctx, 99); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.get(); !errors.Is(err, ErrNotFound) {
				t.Errorf("Expected ErrNotFound, got %v", err)
			}
		})
	}
}
