// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

// Package main is the entry point for the Netwatch server.
//
// Netwatch is a self-hosted network monitoring dashboard backend. It
// tracks network devices, bandwidth and system telemetry, security
// events, intrusion detection rules, and encrypted password vaults
// behind a REST API.
//
// The server initializes components in the following order:
//
//  1. Configuration: layered settings from defaults, config file, and
//     environment variables (Koanf v2)
//  2. Logging: structured zerolog output
//  3. Store: in-memory or PostgreSQL backend, optionally seeded with a
//     sample dataset
//  4. HTTP server: chi-routed REST API with Prometheus metrics
//
// Shutdown is graceful on SIGINT and SIGTERM: the server stops
// accepting connections, waits up to 10 seconds for in-flight requests,
// then closes the store.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/netwatch-dev/netwatch/internal/api"
	"github.com/netwatch-dev/netwatch/internal/config"
	"github.com/netwatch-dev/netwatch/internal/logging"
	"github.com/netwatch-dev/netwatch/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("backend", cfg.Store.Backend).
		Msg("Starting Netwatch server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := newStore(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize store")
	}
	defer st.Close()

	if cfg.Store.Seed {
		if err := store.Seed(ctx, st); err != nil {
			logging.Fatal().Err(err).Msg("Failed to seed store")
		}
		logging.Info().Msg("Sample dataset loaded")
	}

	router := api.NewRouter(st, cfg)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}

	logging.Info().Msg("Server stopped")
}

// newStore builds the configured store backend.
func newStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DSN)
	case "memory":
		return store.NewMemory(), nil
	default:
		return nil, errors.New("unknown store backend: " + cfg.Store.Backend)
	}
}
