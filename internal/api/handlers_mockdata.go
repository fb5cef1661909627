// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package api

import (
	"fmt"
	"net/http"

	"github.com/netwatch-dev/netwatch/internal/logging"
	"github.com/netwatch-dev/netwatch/internal/metrics"
	"github.com/netwatch-dev/netwatch/internal/store"
)

// GenerateMockData backfills 24 hours of synthetic bandwidth and system
// telemetry for dashboard development.
//
// Method: POST
// Path: /api/generate-mock-data
func (h *Handler) GenerateMockData(w http.ResponseWriter, r *http.Request) {
	result, err := store.GenerateMockData(r.Context(), h.store)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	metrics.RecordMockDataRun(result.BandwidthMetrics, result.SystemMetrics)

	logging.Ctx(r.Context()).Info().
		Int("bandwidth_metrics", result.BandwidthMetrics).
		Int("system_metrics", result.SystemMetrics).
		Msg("Mock data generated")

	respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Mock data generated: %d bandwidth metrics, %d system metrics",
			result.BandwidthMetrics, result.SystemMetrics),
	})
}
