// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package planner

import (
	"fmt"
	"time"

	"github.com/tomtom215/campwise/internal/calendar"
	"github.com/tomtom215/campwise/internal/models"
)

// Config tunes the Engine.
type Config struct {
	// DefaultLimit replaces a zero limit on ranked operations.
	// Default: 10.
	DefaultLimit int `json:"default_limit"`

	// MaxLimit caps any requested limit.
	// Default: 100.
	MaxLimit int `json:"max_limit"`

	// Cache configures result memoization.
	Cache CacheConfig `json:"cache"`

	// SeasonWeeks are used whenever a family snapshot carries no weeks.
	// Default: the 2026 season.
	SeasonWeeks []models.Week `json:"season_weeks"`
}

// CacheConfig configures the result cache.
type CacheConfig struct {
	// Enabled turns memoization on.
	// Default: true.
	Enabled bool `json:"enabled"`

	// Capacity is the maximum number of cached results.
	// Default: 1024.
	Capacity int `json:"capacity"`

	// TTL is the lifetime of a cached result.
	// Default: 5m.
	TTL time.Duration `json:"ttl"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultLimit: 10,
		MaxLimit:     100,
		Cache: CacheConfig{
			Enabled:  true,
			Capacity: 1024,
			TTL:      5 * time.Minute,
		},
		SeasonWeeks: calendar.DefaultSeason(),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MaxLimit < 1 {
		return fmt.Errorf("max_limit must be positive, got %d", c.MaxLimit)
	}
	if c.DefaultLimit < 1 || c.DefaultLimit > c.MaxLimit {
		return fmt.Errorf("default_limit must be in [1, %d], got %d", c.MaxLimit, c.DefaultLimit)
	}
	if c.Cache.Enabled {
		if c.Cache.Capacity < 1 {
			return fmt.Errorf("cache.capacity must be positive, got %d", c.Cache.Capacity)
		}
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
	}
	return nil
}

// limit resolves a requested limit: zero takes the default, anything above
// MaxLimit is capped, and negatives pass through (they yield empty results).
func (c *Config) limit(requested int) int {
	switch {
	case requested == 0:
		return c.DefaultLimit
	case requested > c.MaxLimit:
		return c.MaxLimit
	default:
		return requested
	}
}
