// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/campwise/internal/middleware"
)

// Router wires the Handler into a chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	perfMon       *middleware.PerformanceMonitor
}

// NewRouter creates a Router. A nil chiMW uses DefaultChiMiddlewareConfig;
// perfMon may be nil.
func NewRouter(handler *Handler, chiMW *ChiMiddleware, perfMon *middleware.PerformanceMonitor) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMW,
		perfMon:       perfMon,
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(chiMiddleware(middleware.RequestID)) // X-Request-ID and logging context
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight
	r.Use(RequestLogging())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).MethodNotAllowed()
	})

	// ========================
	// Health and Metrics
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})
	r.With(router.chiMiddleware.RateLimitHealth()).Handle("/metrics", promhttp.Handler())

	// ========================
	// Planning API
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		if router.perfMon != nil {
			r.Use(router.perfMon.Middleware)
		}
		r.Use(chimiddleware.Compress(5, "application/json"))

		r.Get("/weights", router.handler.Weights)
		r.Get("/stats", router.handler.Stats)

		r.Route("/normalize", func(r chi.Router) {
			r.Post("/price", router.handler.NormalizePrice)
			r.Post("/age", router.handler.NormalizeAge)
			r.Post("/category", router.handler.NormalizeCategory)
			r.Post("/activities", router.handler.NormalizeActivities)
			r.Post("/catalog", router.handler.NormalizeCatalog)
		})

		r.Route("/calendar", func(r chi.Router) {
			r.Get("/weeks", router.handler.CalendarWeeks)
			r.Post("/gaps", router.handler.CalendarGaps)
		})

		r.Post("/affinity", router.handler.Affinity)

		r.Route("/recommendations", func(r chi.Router) {
			r.Post("/", router.handler.Recommendations)
			r.Post("/score", router.handler.ScoreCamp)
			r.Post("/similar", router.handler.SimilarCamps)
			r.Post("/gaps", router.handler.GapSuggestions)
			r.Post("/popular", router.handler.PopularCamps)
		})

		r.Route("/schedule", func(r chi.Router) {
			r.Post("/analytics", router.handler.ScheduleAnalytics)
			r.Post("/conflicts", router.handler.ScheduleConflicts)
		})

		r.Post("/homepage", router.handler.Homepage)
	})

	return r
}
