// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

// Package api provides the HTTP handlers and routing for the Netwatch
// REST API. Handlers are thin: they parse and validate the request,
// call the store, and translate store errors into the API error shape.
package api

import (
	"time"

	"github.com/netwatch-dev/netwatch/internal/config"
	"github.com/netwatch-dev/netwatch/internal/store"
)

// Handler holds the dependencies shared by all endpoint handlers.
type Handler struct {
	store     store.Store
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a Handler backed by the given store.
func NewHandler(s store.Store, cfg *config.Config) *Handler {
	return &Handler{
		store:     s,
		config:    cfg,
		startTime: time.Now(),
	}
}
