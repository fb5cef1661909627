// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package api

import (
	"net/http"

	"github.com/netwatch-dev/netwatch/internal/models"
)

// IdsRules returns all intrusion detection rules ordered by ID.
//
// Method: GET
// Path: /api/ids-rules
func (h *Handler) IdsRules(w http.ResponseWriter, r *http.Request) {
	rules, err := h.store.ListIdsRules(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rules)
}

// IdsRule returns a single rule by ID.
//
// Method: GET
// Path: /api/ids-rules/{id}
func (h *Handler) IdsRule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	rule, err := h.store.GetIdsRule(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rule)
}

// CreateIdsRule adds a detection rule. Rules are enabled by default.
//
// Method: POST
// Path: /api/ids-rules
func (h *Handler) CreateIdsRule(w http.ResponseWriter, r *http.Request) {
	var req models.CreateIdsRuleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rule, err := h.store.CreateIdsRule(r.Context(), req)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rule)
}

// UpdateIdsRule applies a partial update and refreshes updatedAt.
//
// Method: PUT
// Path: /api/ids-rules/{id}
func (h *Handler) UpdateIdsRule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateIdsRuleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rule, err := h.store.UpdateIdsRule(r.Context(), id, req)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rule)
}

// DeleteIdsRule removes a rule, 404 when absent.
//
// Method: DELETE
// Path: /api/ids-rules/{id}
func (h *Handler) DeleteIdsRule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.store.DeleteIdsRule(r.Context(), id)
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
