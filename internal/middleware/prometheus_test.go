// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPrometheusMetrics_PassesThrough(t *testing.T) {
	called := false
	handler := func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusCreated)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/devices", nil)
	rec := httptest.NewRecorder()

	PrometheusMetrics(handler)(rec, req)

	if !called {
		t.Error("Expected wrapped handler to be called")
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status %d, got %d", http.StatusCreated, rec.Code)
	}
}

func TestMetricsResponseWriter_DefaultStatus(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		// Write without an explicit WriteHeader call
		if _, err := w.Write([]byte("ok")); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/devices", nil)
	rec := httptest.NewRecorder()

	PrometheusMetrics(handler)(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected default status %d, got %d", http.StatusOK, rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("Expected body to pass through, got %q", rec.Body.String())
	}
}

func TestMetricsResponseWriter_CapturesStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"not found", http.StatusNotFound},
		{"server error", http.StatusInternalServerError},
		{"no content", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			wrapper := &metricsResponseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

			wrapper.WriteHeader(tt.status)

			if wrapper.statusCode != tt.status {
				t.Errorf("Expected captured status %d, got %d", tt.status, wrapper.statusCode)
			}
			if rec.Code != tt.status {
				t.Errorf("Expected underlying status %d, got %d", tt.status, rec.Code)
			}
		})
	}
}
