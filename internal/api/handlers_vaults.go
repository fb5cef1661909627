// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package api

import (
	"net/http"

	"github.com/netwatch-dev/netwatch/internal/models"
)

// PasswordVaults returns all vaults ordered by ID.
//
// Method: GET
// Path: /api/password-vaults
func (h *Handler) PasswordVaults(w http.ResponseWriter, r *http.Request) {
	vaults, err := h.store.ListPasswordVaults(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vaults)
}

// PasswordVault returns a single vault by ID.
//
// Method: GET
// Path: /api/password-vaults/{id}
func (h *Handler) PasswordVault(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	vault, err := h.store.GetPasswordVault(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vault)
}

// CreatePasswordVault creates a vault.
//
// Method: POST
// Path: /api/password-vaults
func (h *Handler) CreatePasswordVault(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePasswordVaultRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	vault, err := h.store.CreatePasswordVault(r.Context(), req)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, vault)
}

// UpdatePasswordVault applies a partial update and refreshes updatedAt.
//
// Method: PUT
// Path: /api/password-vaults/{id}
func (h *Handler) UpdatePasswordVault(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdatePasswordVaultRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	vault, err := h.store.UpdatePasswordVault(r.Context(), id, req)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vault)
}

// DeletePasswordVault removes a vault and all of its entries in one
// atomic operation, 404 when absent.
//
// Method: DELETE
// Path: /api/password-vaults/{id}
func (h *Handler) DeletePasswordVault(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.store.DeletePasswordVault(r.Context(), id)
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

// VaultPasswordEntries returns the entries of one vault, 404 when the
// vault does not exist.
//
// Method: GET
// Path: /api/password-vaults/{vaultId}/entries
func (h *Handler) VaultPasswordEntries(w http.ResponseWriter, r *http.Request) {
	vaultID, ok := pathID(w, r, "vaultId")
	if !ok {
		return
	}

	if _, err := h.store.GetPasswordVault(r.Context(), vaultID); err != nil {
		respondStoreError(w, err)
		return
	}

	entries, err := h.store.ListPasswordEntries(r.Context(), &vaultID)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}
