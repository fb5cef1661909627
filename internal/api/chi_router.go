// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/netwatch-dev/netwatch/internal/config"
	"github.com/netwatch-dev/netwatch/internal/middleware"
	"github.com/netwatch-dev/netwatch/internal/models"
	"github.com/netwatch-dev/netwatch/internal/store"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router for the given store and configuration.
func NewRouter(s store.Store, cfg *config.Config) *Router {
	mwConfig := DefaultChiMiddlewareConfig()
	if cfg != nil {
		mwConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
		mwConfig.RateLimitRequests = cfg.Security.RateLimitReqs
		mwConfig.RateLimitWindow = cfg.Security.RateLimitWindow
		mwConfig.RateLimitDisabled = cfg.Security.RateLimitDisabled
	}

	return &Router{
		handler:       NewHandler(s, cfg),
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so it works with r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.Get("/healthz", router.handler.Healthz)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Route("/devices", func(r chi.Router) {
			r.Get("/", router.handler.Devices)
			r.Post("/", router.handler.CreateDevice)
			r.Get("/{id}", router.handler.Device)
			r.Put("/{id}", router.handler.UpdateDevice)
			r.Delete("/{id}", router.handler.DeleteDevice)
		})

		r.Route("/bandwidth-metrics", func(r chi.Router) {
			r.Get("/", router.handler.BandwidthMetrics)
			r.Post("/", router.handler.CreateBandwidthMetric)
		})

		r.Route("/system-metrics", func(r chi.Router) {
			r.Get("/", router.handler.SystemMetrics)
			r.Post("/", router.handler.CreateSystemMetric)
			r.Get("/history", router.handler.SystemMetrics)
			r.Get("/latest", router.handler.LatestSystemMetric)
		})

		r.Route("/security-events", func(r chi.Router) {
			r.Get("/", router.handler.SecurityEvents)
			r.Post("/", router.handler.CreateSecurityEvent)
			r.Get("/{id}", router.handler.SecurityEvent)
			r.Put("/{id}", router.handler.UpdateSecurityEvent)
			r.Delete("/{id}", router.handler.DeleteSecurityEvent)
		})

		r.Route("/ids-rules", func(r chi.Router) {
			r.Get("/", router.handler.IdsRules)
			r.Post("/", router.handler.CreateIdsRule)
			r.Get("/{id}", router.handler.IdsRule)
			r.Put("/{id}", router.handler.UpdateIdsRule)
			r.Delete("/{id}", router.handler.DeleteIdsRule)
		})

		r.Route("/password-vaults", func(r chi.Router) {
			r.Get("/", router.handler.PasswordVaults)
			r.Post("/", router.handler.CreatePasswordVault)
			r.Get("/{id}", router.handler.PasswordVault)
			r.Put("/{id}", router.handler.UpdatePasswordVault)
			r.Delete("/{id}", router.handler.DeletePasswordVault)
			r.Get("/{vaultId}/entries", router.handler.VaultPasswordEntries)
		})

		r.Route("/password-entries", func(r chi.Router) {
			r.Get("/", router.handler.PasswordEntries)
			r.Post("/", router.handler.CreatePasswordEntry)
			r.Get("/{id}", router.handler.PasswordEntry)
			r.Put("/{id}", router.handler.UpdatePasswordEntry)
			r.Delete("/{id}", router.handler.DeletePasswordEntry)
		})

		r.Post("/generate-mock-data", router.handler.GenerateMockData)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, models.ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Resource not found", nil)
	})

	return r
}
