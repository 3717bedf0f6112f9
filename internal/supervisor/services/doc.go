// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

/*
Package services provides suture.Service wrappers for Campwise components.

Each wrapper implements the suture v4 Service interface and returns when
its context is canceled:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Runs an optional drain hook before Shutdown, used to fail readiness
  - Listener errors are returned so the supervisor restarts the server

Cache Janitor (CacheJanitorService):
  - Calls planner.Engine.CleanupCache on a fixed interval
  - Optional sweep on startup
  - Logs the number of expired results removed at debug level

# Usage

	janitor := services.NewCacheJanitorService(engine, services.CacheJanitorConfig{
	    Interval: time.Minute,
	}, logging.WithComponent("janitor"))
	tree.AddMaintenanceService(janitor)

	httpSvc := services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout)
	httpSvc.OnShutdown(func() { handler.SetReady(false) })
	tree.AddAPIService(httpSvc)
*/
package services
