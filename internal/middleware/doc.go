// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

/*
Package middleware provides HTTP middleware for the planning API.

Key Components:

  - RequestID: UUID request IDs (X-Request-ID) and the optional X-Family-ID
    header, both copied into the logging context
  - PrometheusMetrics: request counts, latencies and in-flight gauge,
    labelled by chi route pattern
  - PerformanceMonitor: sliding window of recent latencies with percentile
    summaries and slow-request logging

RequestID and PrometheusMetrics are http.HandlerFunc decorators; the api
package adapts them to chi's r.Use. PerformanceMonitor.Middleware is a chi
middleware already.

Usage Example:

	perf := middleware.NewPerformanceMonitor(1000, time.Second)

	r := chi.NewRouter()
	r.Use(adapt(middleware.RequestID))
	r.Use(perf.Middleware)
	r.Use(adapt(middleware.PrometheusMetrics))

	stats := perf.GetStats() // p50/p95/p99 per endpoint

Route patterns rather than raw paths are used as labels so a path
parameter cannot blow up metric cardinality.

Thread Safety:

All middleware is safe for concurrent use. PerformanceMonitor guards its
window with a sync.RWMutex.
*/
package middleware
