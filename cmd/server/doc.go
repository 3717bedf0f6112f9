// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

/*
Package main is the entry point for the Campwise planning server.

Campwise turns scraped day-camp listings and a family's planning snapshot
into ranked recommendations, coverage gaps, conflict reports and schedule
analytics. The server keeps no per-family state: every request carries the
catalog and the family it is about.

# Application Architecture

	RootSupervisor ("campwise")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── Cache Janitor (expired planner results)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router, /api/v1)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment
 2. Logging: zerolog with JSON/console output modes
 3. Planner: engine with the configured season and result cache
 4. HTTP: handlers, chi middleware stack, Prometheus on /metrics
 5. Supervisor Tree: suture v4 with sutureslog events

# Configuration

Priority: Environment variables > Config file > Defaults

	# Server
	HTTP_PORT=8080
	HTTP_HOST=0.0.0.0
	HTTP_TIMEOUT=30s             # per-request planning budget
	HTTP_SHUTDOWN_TIMEOUT=10s
	ENVIRONMENT=development

	# Logging
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Season used when a family snapshot carries no weeks
	SEASON_START=2026-06-08
	SEASON_END=2026-08-14

	# Planner
	PLANNER_DEFAULT_LIMIT=10
	PLANNER_MAX_LIMIT=100
	PLANNER_CACHE_ENABLED=true
	PLANNER_CACHE_TTL=5m

	# Security
	CORS_ORIGINS=https://plan.example.org
	RATE_LIMIT_REQUESTS=100
	RATE_LIMIT_WINDOW=1m

The config file is found through CONFIG_PATH or ./config.yaml. Changes to
logging.level in that file are applied while running.

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP service first fails
the readiness probe, then drains in-flight requests for up to
HTTP_SHUTDOWN_TIMEOUT.
*/
package main
