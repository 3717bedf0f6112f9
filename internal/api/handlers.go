// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package api

import (
	"sync/atomic"
	"time"

	"github.com/tomtom215/campwise/internal/middleware"
	"github.com/tomtom215/campwise/internal/planner"
)

// DefaultMaxBodyBytes bounds request bodies. Snapshots carry a whole
// catalog, so the limit is generous.
const DefaultMaxBodyBytes int64 = 8 << 20

// DefaultRequestTimeout bounds the time a handler waits on the engine.
const DefaultRequestTimeout = 10 * time.Second

// Handler serves the planning endpoints. It holds no per-family state:
// every request carries its own catalog and family snapshot.
type Handler struct {
	engine         *planner.Engine
	perfMon        *middleware.PerformanceMonitor
	startTime      time.Time
	version        string
	maxBodyBytes   int64
	requestTimeout time.Duration
	ready          atomic.Bool
}

// HandlerOption customizes a Handler.
type HandlerOption func(*Handler)

// WithVersion sets the version reported by the health endpoints.
func WithVersion(v string) HandlerOption {
	return func(h *Handler) { h.version = v }
}

// WithMaxBodyBytes overrides DefaultMaxBodyBytes.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// WithRequestTimeout overrides DefaultRequestTimeout.
func WithRequestTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) {
		if d > 0 {
			h.requestTimeout = d
		}
	}
}

// NewHandler creates a Handler over engine. perfMon may be nil, in which
// case the stats endpoint reports no endpoint latencies.
// The handler starts ready; SetReady(false) drains it during shutdown.
func NewHandler(engine *planner.Engine, perfMon *middleware.PerformanceMonitor, opts ...HandlerOption) *Handler {
	h := &Handler{
		engine:         engine,
		perfMon:        perfMon,
		startTime:      time.Now(),
		version:        "dev",
		maxBodyBytes:   DefaultMaxBodyBytes,
		requestTimeout: DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.ready.Store(true)
	return h
}

// SetReady flips the readiness probe.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}
