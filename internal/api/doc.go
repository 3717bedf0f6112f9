// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

/*
Package api exposes the planning engine over HTTP using the chi router.

The API is stateless: every request carries the catalog and family
snapshot it needs, and nothing is stored between requests. Handlers
canonicalize the snapshot (catalog normalization, category labels,
entry statuses) before validating it with go-playground/validator, then
delegate to planner.Engine.

# Endpoints

	POST /api/v1/normalize/{price,age,category,activities,catalog}
	GET  /api/v1/calendar/weeks?start=YYYY-MM-DD&end=YYYY-MM-DD
	POST /api/v1/calendar/gaps
	POST /api/v1/affinity
	POST /api/v1/recommendations
	POST /api/v1/recommendations/{score,similar,gaps,popular}
	POST /api/v1/schedule/{analytics,conflicts}
	POST /api/v1/homepage
	GET  /api/v1/weights
	GET  /api/v1/stats
	GET  /api/v1/health/{live,ready}
	GET  /metrics

# Response Format

Every JSON response uses the same envelope:

	{
	  "success": true,
	  "data": {...},
	  "error": {"code": "VALIDATION_FAILED", "message": "...", "details": {...}, "request_id": "..."},
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3, "count": 10}
	}

Error codes: BAD_REQUEST, VALIDATION_FAILED, NOT_FOUND, METHOD_NOT_ALLOWED,
REQUEST_TOO_LARGE, TOO_MANY_REQUESTS, SERVICE_UNAVAILABLE, INTERNAL_ERROR.

# Middleware Stack

Global: request ID, real IP, panic recovery, CORS (go-chi/cors), request
logging. Planning routes add rate limiting (go-chi/httprate), security
headers, Prometheus instrumentation, the latency monitor and gzip.

# Usage

	handler := api.NewHandler(engine, perfMon, api.WithVersion(version))
	chiMW := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security))
	srv := &http.Server{Handler: api.NewRouter(handler, chiMW, perfMon).SetupChi()}
*/
package api
