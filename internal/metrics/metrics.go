// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache status label values for PlannerOperationsTotal.
const (
	CacheHit    = "hit"
	CacheMiss   = "miss"
	CacheBypass = "bypass"
)

var (
	// Planner Metrics
	PlannerOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planner_operation_duration_seconds",
			Help:    "Duration of planner operations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1}, // catalogs are small; most calls are sub-millisecond
		},
		[]string{"operation"},
	)

	PlannerOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_operations_total",
			Help: "Total number of planner operations by cache outcome",
		},
		[]string{"operation", "cache"}, // cache: "hit", "miss", "bypass"
	)

	PlannerResultSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planner_result_size",
			Help:    "Number of items returned by planner operations",
			Buckets: []float64{0, 1, 2, 3, 4, 6, 10, 20, 50},
		},
		[]string{"operation"},
	)

	PlannerCatalogSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "planner_catalog_size",
			Help:    "Number of camps in catalogs submitted to the planner",
			Buckets: []float64{1, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	PlannerCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "planner_cache_entries",
			Help: "Current number of memoized planner results",
		},
	)

	PlannerCacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "planner_cache_evictions_total",
			Help: "Total number of planner cache evictions",
		},
	)

	PlannerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_errors_total",
			Help: "Total number of failed planner operations",
		},
		[]string{"operation", "reason"},
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
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	APIValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_validation_failures_total",
			Help: "Total number of requests rejected by input validation",
		},
		[]string{"endpoint"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordPlannerOperation records one planner call: its latency, result
// count and whether the result came from the cache.
func RecordPlannerOperation(operation string, duration time.Duration, results int, cacheStatus string) {
	PlannerOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	PlannerOperationsTotal.WithLabelValues(operation, cacheStatus).Inc()
	if results >= 0 {
		PlannerResultSize.WithLabelValues(operation).Observe(float64(results))
	}
}

// RecordPlannerError counts a failed planner operation.
func RecordPlannerError(operation, reason string) {
	PlannerErrors.WithLabelValues(operation, reason).Inc()
}

// RecordCatalogSize observes the size of a submitted catalog.
func RecordCatalogSize(n int) {
	PlannerCatalogSize.Observe(float64(n))
}

// UpdateCacheGauges publishes the planner cache size and any evictions
// since the previous call.
func UpdateCacheGauges(entries int, newEvictions int64) {
	PlannerCacheEntries.Set(float64(entries))
	if newEvictions > 0 {
		PlannerCacheEvictions.Add(float64(newEvictions))
	}
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
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

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordValidationFailure counts a request rejected by validation.
func RecordValidationFailure(endpoint string) {
	APIValidationFailures.WithLabelValues(endpoint).Inc()
}

// SetAppInfo publishes the build version.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

// UpdateUptime sets the uptime gauge relative to start.
func UpdateUptime(start time.Time) {
	AppUptime.Set(time.Since(start).Seconds())
}
