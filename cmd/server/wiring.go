// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/campwise/internal/api"
	"github.com/tomtom215/campwise/internal/config"
	"github.com/tomtom215/campwise/internal/logging"
	"github.com/tomtom215/campwise/internal/middleware"
	"github.com/tomtom215/campwise/internal/planner"
	"github.com/tomtom215/campwise/internal/supervisor"
	"github.com/tomtom215/campwise/internal/supervisor/services"
)

// perfWindow is the number of recent requests the performance monitor keeps.
const perfWindow = 1000

// app holds the wired components of a running server.
type app struct {
	engine  *planner.Engine
	handler *api.Handler
	server  *http.Server
	tree    *supervisor.SupervisorTree
}

// plannerConfig maps the planner and season sections onto the engine
// configuration.
func plannerConfig(cfg *config.Config) *planner.Config {
	pc := planner.DefaultConfig()
	pc.DefaultLimit = cfg.Planner.DefaultLimit
	pc.MaxLimit = cfg.Planner.MaxLimit
	pc.Cache.Enabled = cfg.Planner.CacheEnabled
	pc.Cache.Capacity = cfg.Planner.CacheCapacity
	pc.Cache.TTL = cfg.Planner.CacheTTL
	pc.SeasonWeeks = cfg.SeasonWeeks()
	return pc
}

// janitorInterval sweeps a few times per TTL so expired results never
// linger for long.
func janitorInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return services.DefaultJanitorInterval
	}
	interval := ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	return interval
}

// buildApp wires the engine, the HTTP API and the supervisor tree.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func buildApp(cfg *config.Config, version string, logger zerolog.Logger) (*app, error) {
	engine, err := planner.NewEngine(plannerConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create planner engine: %w", err)
	}

	perfMon := middleware.NewPerformanceMonitor(perfWindow, middleware.DefaultSlowRequestThreshold)
	handler := api.NewHandler(engine, perfMon,
		api.WithVersion(version),
		api.WithRequestTimeout(cfg.Server.Timeout),
	)
	chiMW := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security))
	router := api.NewRouter(handler, chiMW, perfMon)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout + 5*time.Second
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), treeCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create supervisor tree: %w", err)
	}

	if cfg.Planner.CacheEnabled {
		tree.AddMaintenanceService(services.NewCacheJanitorService(engine, services.CacheJanitorConfig{
			Interval: janitorInterval(cfg.Planner.CacheTTL),
		}, logger))
	}

	httpSvc := services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout)
	httpSvc.OnShutdown(func() { handler.SetReady(false) })
	tree.AddAPIService(httpSvc)

	return &app{
		engine:  engine,
		handler: handler,
		server:  server,
		tree:    tree,
	}, nil
}
