// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/campwise/internal/calendar"
	"github.com/tomtom215/campwise/internal/models"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Logging  LoggingConfig  `koanf:"logging"`
	Season   SeasonConfig   `koanf:"season"`
	Planner  PlannerConfig  `koanf:"planner"`
	Security SecurityConfig `koanf:"security"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production" (default: "development")
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// SeasonConfig is the default summer used when a request carries no weeks.
// Dates are YYYY-MM-DD strings; quote them in YAML.
type SeasonConfig struct {
	Start string `koanf:"start"`
	End   string `koanf:"end"`
}

// Dates parses the season bounds.
func (s SeasonConfig) Dates() (start, end models.Date, err error) {
	if start, err = models.ParseDate(s.Start); err != nil {
		return models.Date{}, models.Date{}, fmt.Errorf("season start: %w", err)
	}
	if end, err = models.ParseDate(s.End); err != nil {
		return models.Date{}, models.Date{}, fmt.Errorf("season end: %w", err)
	}
	return start, end, nil
}

// PlannerConfig tunes the planner façade.
type PlannerConfig struct {
	DefaultLimit  int           `koanf:"default_limit"` // used when a request omits limit
	MaxLimit      int           `koanf:"max_limit"`
	CacheEnabled  bool          `koanf:"cache_enabled"`
	CacheCapacity int           `koanf:"cache_capacity"`
	CacheTTL      time.Duration `koanf:"cache_ttl"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// SeasonWeeks builds the configured season's weeks. The built-in 2026
// season is returned when the configured dates do not parse.
func (c *Config) SeasonWeeks() []models.Week {
	start, end, err := c.Season.Dates()
	if err != nil || start.IsZero() || end.IsZero() {
		return calendar.DefaultSeason()
	}
	return calendar.BuildWeeks(start, end)
}
