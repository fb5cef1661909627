// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package api

import (
	"net/http"

	"github.com/netwatch-dev/netwatch/internal/models"
)

// Devices returns all monitored devices ordered by ID.
//
// Method: GET
// Path: /api/devices
func (h *Handler) Devices(w http.ResponseWriter, r *http.Request) {
	devices, err := h.store.ListDevices(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, devices)
}

// Device returns a single device by ID.
//
// Method: GET
// Path: /api/devices/{id}
func (h *Handler) Device(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	device, err := h.store.GetDevice(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, device)
}

// CreateDevice registers a new device. Status defaults to online and
// maxBandwidth to 1000 when omitted.
//
// Method: POST
// Path: /api/devices
func (h *Handler) CreateDevice(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDeviceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	device, err := h.store.CreateDevice(r.Context(), req)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, device)
}

// UpdateDevice applies a partial update; omitted fields keep their
// values and lastActivity is refreshed.
//
// Method: PUT
// Path: /api/devices/{id}
func (h *Handler) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateDeviceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	device, err := h.store.UpdateDevice(r.Context(), id, req)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, device)
}

// DeleteDevice removes a device. The delete is idempotent: removing an
// absent device still yields 204. Metrics and events referencing the
// device are left in place.
//
// Method: DELETE
// Path: /api/devices/{id}
func (h *Handler) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if _, err := h.store.DeleteDevice(r.Context(), id); err != nil {
		respondStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
