// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/devices", "200"))

	RecordAPIRequest("GET", "/api/devices", "200", 15*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/devices", "200"))
	if after != before+1 {
		t.Errorf("expected counter to increment by 1, got %f -> %f", before, after)
	}
}

func TestObserveStoreQuery(t *testing.T) {
	// Histograms cannot be read back with ToFloat64; just verify the
	// call does not panic with fresh label combinations.
	ObserveStoreQuery("list", "devices", 3*time.Millisecond)
	ObserveStoreQuery("create", "security_events", 1*time.Millisecond)
}

func TestTrackActiveRequest(t *testing.T) {
	base := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != base+1 {
		t.Errorf("expected gauge %f after increment, got %f", base+1, got)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != base {
		t.Errorf("expected gauge back to %f after decrement, got %f", base, got)
	}
}

func TestRecordMockDataRun(t *testing.T) {
	runsBefore := testutil.ToFloat64(MockDataRuns)
	bwBefore := testutil.ToFloat64(MockDataRowsCreated.WithLabelValues("bandwidth_metrics"))
	sysBefore := testutil.ToFloat64(MockDataRowsCreated.WithLabelValues("system_metrics"))

	RecordMockDataRun(48, 24)

	if got := testutil.ToFloat64(MockDataRuns); got != runsBefore+1 {
		t.Errorf("expected runs %f, got %f", runsBefore+1, got)
	}
	if got := testutil.ToFloat64(MockDataRowsCreated.WithLabelValues("bandwidth_metrics")); got != bwBefore+48 {
		t.Errorf("expected bandwidth rows %f, got %f", bwBefore+48, got)
	}
	if got := testutil.ToFloat64(MockDataRowsCreated.WithLabelValues("system_metrics")); got != sysBefore+24 {
		t.Errorf("expected system rows %f, got %f", sysBefore+24, got)
	}
}
