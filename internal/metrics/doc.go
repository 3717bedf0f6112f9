// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

/*
Package metrics exposes the Prometheus instrumentation for Campwise.

All collectors are registered on the default registry through promauto and
served by the API at /metrics.

# Metric Families

Planner:
  - planner_operation_duration_seconds{operation}
  - planner_operations_total{operation,cache}
  - planner_result_size{operation}
  - planner_catalog_size
  - planner_cache_entries, planner_cache_evictions_total
  - planner_errors_total{operation,reason}

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}
  - api_validation_failures_total{endpoint}

System:
  - app_info{version,go_version}
  - app_uptime_seconds

# Usage

	start := time.Now()
	recs := recommend.Recommend(catalog, rc, limit)
	metrics.RecordPlannerOperation("recommend", time.Since(start), len(recs), metrics.CacheMiss)

Endpoint labels use the chi route pattern, never the raw path, so camp IDs
in URLs cannot blow up label cardinality.
*/
package metrics
