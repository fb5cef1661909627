// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package api

import (
	"net/http"
	"time"
)

// healthResponse is the body returned by the health endpoint.
type healthResponse struct {
	Status         string  `json:"status"`
	StoreConnected bool    `json:"storeConnected"`
	UptimeSeconds  float64 `json:"uptimeSeconds"`
}

// Healthz reports process liveness and store connectivity. The endpoint
// always answers 200; a broken store shows up as status degraded.
//
// Method: GET
// Path: /healthz
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	storeConnected := h.store != nil && h.store.Ping(r.Context()) == nil

	status := "healthy"
	if !storeConnected {
		status = "degraded"
	}

	respondJSON(w, http.StatusOK, healthResponse{
		Status:         status,
		StoreConnected: storeConnected,
		UptimeSeconds:  time.Since(h.startTime).Seconds(),
	})
}
