// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

// Package metrics exposes Prometheus instrumentation for the HTTP API,
// the recommendation engine and the response cache. All collectors are
// registered on the default registry via promauto; the API package serves
// them on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics.

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campusgraph_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campusgraph_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "campusgraph_api_active_requests",
			Help: "Number of API requests currently in flight",
		},
	)

	// Recommendation engine metrics.

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campusgraph_recommendations_total",
			Help: "Total recommendation computations by operation and outcome",
		},
		[]string{"operation", "outcome"}, // outcome: "ok", "empty", "error"
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campusgraph_recommendation_duration_seconds",
			Help:    "Recommendation computation duration in seconds",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"operation"},
	)

	RecommendationPoolSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campusgraph_recommendation_pool_size",
			Help:    "Candidate pool size per recommendation computation",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"operation"},
	)

	// Cache metrics.

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campusgraph_cache_hits_total",
			Help: "Response cache hits by operation",
		},
		[]string{"operation"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campusgraph_cache_misses_total",
			Help: "Response cache misses by operation",
		},
		[]string{"operation"},
	)

	// Data provider metrics.

	ProviderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campusgraph_provider_errors_total",
			Help: "Data provider call failures by call",
		},
		[]string{"call"},
	)

	ProviderBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "campusgraph_provider_breaker_state",
			Help: "Provider circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)
)

// RecordAPIRequest records one finished HTTP request.
func RecordAPIRequest(method, endpoint, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRecommendation records one engine computation.
func RecordRecommendation(operation string, results, poolSize int, duration time.Duration, err error) {
	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
	case results == 0:
		outcome = "empty"
	}
	RecommendationsTotal.WithLabelValues(operation, outcome).Inc()
	RecommendationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	RecommendationPoolSize.WithLabelValues(operation).Observe(float64(poolSize))
}

// RecordCacheLookup records one cache probe.
func RecordCacheLookup(operation string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(operation).Inc()
		return
	}
	CacheMisses.WithLabelValues(operation).Inc()
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
		return
	}
	APIActiveRequests.Dec()
}
