// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package models

import "time"

// PasswordVault groups password entries. Deleting a vault deletes its
// entries in the same operation.
type PasswordVault struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreatePasswordVaultRequest represents a request to create a vault.
type CreatePasswordVaultRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// Vault materializes the request into a PasswordVault.
// The caller assigns the ID.
func (r CreatePasswordVaultRequest) Vault(now time.Time) PasswordVault {
	return PasswordVault{
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdatePasswordVaultRequest represents a partial vault update.
// Nil fields are left unchanged.
type UpdatePasswordVaultRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// Apply merges the update into the vault and refreshes UpdatedAt.
func (r UpdatePasswordVaultRequest) Apply(v *PasswordVault, now time.Time) {
	if r.Name != nil {
		v.Name = *r.Name
	}
	if r.Description != nil {
		v.Description = r.Description
	}
	v.UpdatedAt = now
}

// PasswordEntry is a stored credential inside a vault.
// The password value is stored as provided; encryption happens client-side.
type PasswordEntry struct {
	ID                int        `json:"id"`
	VaultID           int        `json:"vaultId"`
	Title             string     `json:"title"`
	Username          *string    `json:"username,omitempty"`
	Email             *string    `json:"email,omitempty"`
	EncryptedPassword string     `json:"encryptedPassword"`
	Website           *string    `json:"website,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
	Category          *string    `json:"category,omitempty"`
	IsFavorite        bool       `json:"isFavorite"`
	LastUsed          *time.Time `json:"lastUsed,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// CreatePasswordEntryRequest represents a request to create an entry.
type CreatePasswordEntryRequest struct {
	VaultID           int     `json:"vaultId" validate:"required,gt=0"`
	Title             string  `json:"title" validate:"required,min=1,max=200"`
	Username          *string `json:"username,omitempty" validate:"omitempty,max=100"`
	Email             *string `json:"email,omitempty" validate:"omitempty,email"`
	EncryptedPassword string  `json:"encryptedPassword" validate:"required"`
	Website           *string `json:"website,omitempty" validate:"omitempty,max=200"`
	Notes             *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
	Category          *string `json:"category,omitempty" validate:"omitempty,max=50"`
	IsFavorite        *bool   `json:"isFavorite,omitempty"`
}

// Entry materializes the request into a PasswordEntry, applying defaults.
// The caller assigns the ID.
func (r CreatePasswordEntryRequest) Entry(now time.Time) PasswordEntry {
	e := PasswordEntry{
		VaultID:           r.VaultID,
		Title:             r.Title,
		Username:          r.Username,
		Email:             r.Email,
		EncryptedPassword: r.EncryptedPassword,
		Website:           r.Website,
		Notes:             r.Notes,
		Category:          r.Category,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if r.IsFavorite != nil {
		e.IsFavorite = *r.IsFavorite
	}
	return e
}

// UpdatePasswordEntryRequest represents a partial entry update.
// Nil fields are left unchanged. The entry cannot be moved between vaults.
type UpdatePasswordEntryRequest struct {
	Title             *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Username          *string    `json:"username,omitempty" validate:"omitempty,max=100"`
	Email             *string    `json:"email,omitempty" validate:"omitempty,email"`
	EncryptedPassword *string    `json:"encryptedPassword,omitempty" validate:"omitempty,min=1"`
	Website           *string    `json:"website,omitempty" validate:"omitempty,max=200"`
	Notes             *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
	Category          *string    `json:"category,omitempty" validate:"omitempty,max=50"`
	IsFavorite        *bool      `json:"isFavorite,omitempty"`
	LastUsed          *time.Time `json:"lastUsed,omitempty"`
}

// Apply merges the update into the entry and refreshes UpdatedAt.
func (r UpdatePasswordEntryRequest) Apply(e *PasswordEntry, now time.Time) {
	if r.Title != nil {
		e.Title = *r.Title
	}
	if r.Username != nil {
		e.Username = r.Username
	}
	if r.Email != nil {
		e.Email = r.Email
	}
	if r.EncryptedPassword != nil {
		e.EncryptedPassword = *r.EncryptedPassword
	}
	if r.Website != nil {
		e.Website = r.Website
	}
	if r.Notes != nil {
		e.Notes = r.Notes
	}
	if r.Category != nil {
		e.Category = r.Category
	}
	if r.IsFavorite != nil {
		e.IsFavorite = *r.IsFavorite
	}
	if r.LastUsed != nil {
		e.LastUsed = r.LastUsed
	}
	e.UpdatedAt = now
}
