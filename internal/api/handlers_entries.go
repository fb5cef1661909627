// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package api

import (
	"net/http"

	"github.com/netwatch-dev/netwatch/internal/models"
)

// PasswordEntries returns password entries across all vaults, or only
// those in one vault when a vaultId parameter is present.
//
// Method: GET
// Path: /api/password-entries?vaultId=
func (h *Handler) PasswordEntries(w http.ResponseWriter, r *http.Request) {
	var vaultID *int
	if raw := r.URL.Query().Get("vaultId"); raw != "" {
		id := queryInt(r, "vaultId", 0)
		if id < 1 {
			respondError(w, http.StatusBadRequest, models.ErrCodeBadRequest,
				"Invalid vaultId: must be a positive integer", nil)
			return
		}
		vaultID = &id
	}

	entries, err := h.store.ListPasswordEntries(r.Context(), vaultID)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// PasswordEntry returns a single password entry by ID.
//
// Method: GET
// Path: /api/password-entries/{id}
func (h *Handler) PasswordEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	entry, err := h.store.GetPasswordEntry(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

// CreatePasswordEntry creates an entry in an existing vault. A missing
// vault yields 404.
//
// Method: POST
// Path: /api/password-entries
func (h *Handler) CreatePasswordEntry(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePasswordEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.store.GetPasswordVault(r.Context(), req.VaultID); err != nil {
		respondStoreError(w, err)
		return
	}

	entry, err := h.store.CreatePasswordEntry(r.Context(), req)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

// UpdatePasswordEntry applies a partial update. Entries cannot move
// between vaults.
//
// Method: PUT
// Path: /api/password-entries/{id}
func (h *Handler) UpdatePasswordEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdatePasswordEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.store.UpdatePasswordEntry(r.Context(), id, req)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

// DeletePasswordEntry removes an entry, 404 when absent.
//
// Method: DELETE
// Path: /api/password-entries/{id}
func (h *Handler) DeletePasswordEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.store.DeletePasswordEntry(r.Context(), id)
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
