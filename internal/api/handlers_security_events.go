// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package api

import (
	"net/http"

	"github.com/netwatch-dev/netwatch/internal/models"
	"github.com/netwatch-dev/netwatch/internal/store"
)

// SecurityEvents returns security events newest first, capped at 50
// unless a limit parameter overrides it. An unknown status filter
// matches nothing and yields an empty list.
//
// Method: GET
// Path: /api/security-events?status=&limit=
func (h *Handler) SecurityEvents(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	limit := store.DefaultEventLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit = queryInt(r, "limit", 0)
		if limit < 1 {
			respondError(w, http.StatusBadRequest, models.ErrCodeBadRequest,
				"Invalid limit: must be a positive integer", nil)
			return
		}
	}

	var (
		events []models.SecurityEvent
		err    error
	)
	if status != "" {
		events, err = h.store.ListSecurityEventsByStatus(r.Context(), status, limit)
	} else {
		events, err = h.store.ListSecurityEvents(r.Context(), limit)
	}
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, events)
}

// SecurityEvent returns a single security event by ID.
//
// Method: GET
// Path: /api/security-events/{id}
func (h *Handler) SecurityEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	event, err := h.store.GetSecurityEvent(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, event)
}

// CreateSecurityEvent records a security event. Status defaults to new.
//
// Method: POST
// Path: /api/security-events
func (h *Handler) CreateSecurityEvent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSecurityEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	event, err := h.store.CreateSecurityEvent(r.Context(), req)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, event)
}

// UpdateSecurityEvent applies a partial update, typically the status
// transition new -> investigating -> resolved.
//
// Method: PUT
// Path: /api/security-events/{id}
func (h *Handler) UpdateSecurityEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateSecurityEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	event, err := h.store.UpdateSecurityEvent(r.Context(), id, req)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, event)
}

// DeleteSecurityEvent removes a security event, 404 when absent.
//
// Method: DELETE
// Path: /api/security-events/{id}
func (h *Handler) DeleteSecurityEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.store.DeleteSecurityEvent(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Resource not found", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
