// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package api

import (
	"net/http"
	"runtime"
	"time"

	"github.com/tomtom215/campwise/internal/metrics"
	"github.com/tomtom215/campwise/internal/middleware"
	"github.com/tomtom215/campwise/internal/planner"
)

// HealthStatus is the payload of the liveness probe.
type HealthStatus struct {
	Alive     bool    `json:"alive"`
	Version   string  `json:"version"`
	GoVersion string  `json:"go_version"`
	Uptime    float64 `json:"uptime_seconds"`
}

// ReadinessStatus is the payload of the readiness probe.
type ReadinessStatus struct {
	Ready       bool    `json:"ready_to_serve"`
	SeasonWeeks int     `json:"season_weeks"`
	Uptime      float64 `json:"uptime_seconds"`
}

// ServiceStats is the payload of the stats endpoint.
type ServiceStats struct {
	Planner   planner.Stats              `json:"planner"`
	Endpoints []middleware.EndpointStats `json:"endpoints"`
	Uptime    float64                    `json:"uptime_seconds"`
}

// HealthLive handles GET /api/v1/health/live
// Returns 200 whenever the process is serving HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	metrics.UpdateUptime(h.startTime)
	NewResponseWriter(w, r).Success(HealthStatus{
		Alive:     true,
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles GET /api/v1/health/ready
// Returns 503 while the service is draining or has no season configured.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	weeks := len(h.engine.SeasonWeeks())
	status := ReadinessStatus{
		Ready:       h.ready.Load() && weeks > 0,
		SeasonWeeks: weeks,
		Uptime:      time.Since(h.startTime).Seconds(),
	}

	statusCode := http.StatusOK
	if !status.Ready {
		statusCode = http.StatusServiceUnavailable
	}
	NewResponseWriter(w, r).SuccessWithStatus(statusCode, status, nil)
}

// Stats handles GET /api/v1/stats
// Returns planner cache counters and per-endpoint latency percentiles.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats := ServiceStats{
		Planner:   h.engine.Stats(),
		Endpoints: []middleware.EndpointStats{},
		Uptime:    time.Since(h.startTime).Seconds(),
	}
	if h.perfMon != nil {
		stats.Endpoints = h.perfMon.GetStats()
	}
	NewResponseWriter(w, r).Success(stats)
}
