// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package api

import (
	"net/http"
	"time"

	"github.com/netwatch-dev/netwatch/internal/models"
	"github.com/netwatch-dev/netwatch/internal/store"
)

// bandwidthRouteLimit caps results on the bandwidth listing route.
const bandwidthRouteLimit = 100

// BandwidthMetrics returns bandwidth samples newest first, optionally
// filtered by device and a trailing window of days.
//
// Method: GET
// Path: /api/bandwidth-metrics?deviceId=&days=&limit=
func (h *Handler) BandwidthMetrics(w http.ResponseWriter, r *http.Request) {
	q := store.BandwidthQuery{Limit: bandwidthRouteLimit}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit := queryInt(r, "limit", 0)
		if limit < 1 {
			respondError(w, http.StatusBadRequest, models.ErrCodeBadRequest,
				"Invalid limit: must be a positive integer", nil)
			return
		}
		q.Limit = limit
	}

	if raw := r.URL.Query().Get("deviceId"); raw != "" {
		deviceID := queryInt(r, "deviceId", 0)
		if deviceID < 1 {
			respondError(w, http.StatusBadRequest, models.ErrCodeBadRequest,
				"Invalid deviceId: must be a positive integer", nil)
			return
		}
		q.DeviceID = &deviceID
	}

	if raw := r.URL.Query().Get("days"); raw != "" {
		days := queryInt(r, "days", 0)
		if days < 1 {
			respondError(w, http.StatusBadRequest, models.ErrCodeBadRequest,
				"Invalid days: must be a positive integer", nil)
			return
		}
		since := time.Now().UTC().AddDate(0, 0, -days)
		q.Since = &since
	}

	metrics, err := h.store.ListBandwidthMetrics(r.Context(), q)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, metrics)
}

// CreateBandwidthMetric records a bandwidth sample.
//
// Method: POST
// Path: /api/bandwidth-metrics
func (h *Handler) CreateBandwidthMetric(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBandwidthMetricRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	metric, err := h.store.CreateBandwidthMetric(r.Context(), req)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, metric)
}

// SystemMetrics returns the most recent system snapshots, newest first,
// capped at 24 entries unless a limit parameter overrides it.
//
// Method: GET
// Path: /api/system-metrics?limit= (also served at /api/system-metrics/history)
func (h *Handler) SystemMetrics(w http.ResponseWriter, r *http.Request) {
	limit := store.DefaultSystemHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit = queryInt(r, "limit", 0)
		if limit < 1 {
			respondError(w, http.StatusBadRequest, models.ErrCodeBadRequest,
				"Invalid limit: must be a positive integer", nil)
			return
		}
	}

	metrics, err := h.store.SystemMetricsHistory(r.Context(), limit)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, metrics)
}

// LatestSystemMetric returns the newest system snapshot, or 404 when
// none has been recorded yet.
//
// Method: GET
// Path: /api/system-metrics/latest
func (h *Handler) LatestSystemMetric(w http.ResponseWriter, r *http.Request) {
	metric, err := h.store.LatestSystemMetric(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, metric)
}

// CreateSystemMetric records a system snapshot.
//
// Method: POST
// Path: /api/system-metrics
func (h *Handler) CreateSystemMetric(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSystemMetricRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	metric, err := h.store.CreateSystemMetric(r.Context(), req)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, metric)
}
