// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

/*
Package config loads and validates Campwise configuration with koanf v2.

# Configuration Sources

Sources are layered, later layers overriding earlier ones:
  - Built-in defaults (structs provider)
  - An optional YAML file: $CONFIG_PATH, then config.yaml, config.yml,
    /etc/campwise/config.yaml, /etc/campwise/config.yml
  - Environment variables (flat names, see below)

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
  - ENVIRONMENT: development, staging or production (default: development)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include caller file:line (default: false)

Season:
  - SEASON_START: first day of the default season (default: 2026-06-08)
  - SEASON_END: last day of the default season (default: 2026-08-14)

Planner:
  - PLANNER_DEFAULT_LIMIT: results when a request omits limit (default: 10)
  - PLANNER_MAX_LIMIT: upper bound on any requested limit (default: 100)
  - PLANNER_CACHE_ENABLED: memoize planner results (default: true)
  - PLANNER_CACHE_CAPACITY: cached results kept (default: 1024)
  - PLANNER_CACHE_TTL: lifetime of a cached result (default: 5m)

Security:
  - CORS_ORIGINS: comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: requests per window per client (default: 100)
  - RATE_LIMIT_WINDOW: rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: turn rate limiting off (default: false)

# Example YAML

	server:
	  port: 8080
	  environment: production
	season:
	  start: "2026-06-15"
	  end: "2026-08-21"
	planner:
	  cache_ttl: 10m
	security:
	  cors_origins:
	    - https://plan.example.org

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Invalid configuration")
	}
	weeks := cfg.SeasonWeeks()
*/
package config
