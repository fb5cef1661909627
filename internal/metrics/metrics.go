// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

// Package metrics provides Prometheus instrumentation for the API
// surface and the persistence layer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Store Metrics
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_query_duration_seconds",
			Help:    "Duration of store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Mock Data Generation Metrics
	MockDataRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mock_data_runs_total",
			Help: "Total number of mock data generation runs",
		},
	)

	MockDataRowsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mock_data_rows_created_total",
			Help: "Total number of rows created by mock data generation",
		},
		[]string{"table"},
	)
)

// ObserveStoreQuery records a store query duration.
func ObserveStoreQuery(operation, table string, duration time.Duration) {
	StoreQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordMockDataRun records a mock data generation run and its row counts.
func RecordMockDataRun(bandwidthRows, systemRows int) {
	MockDataRuns.Inc()
	MockDataRowsCreated.WithLabelValues("bandwidth_metrics").Add(float64(bandwidthRows))
	MockDataRowsCreated.WithLabelValues("system_metrics").Add(float64(systemRows))
}
