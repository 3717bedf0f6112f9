// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultJanitorInterval is used when CacheJanitorConfig.Interval is unset.
const DefaultJanitorInterval = time.Minute

// CacheMaintainer is the part of the planner engine the janitor drives.
type CacheMaintainer interface {
	// CleanupCache drops expired results and returns how many were removed.
	CleanupCache() int
}

// CacheJanitorConfig holds configuration for the cache janitor.
type CacheJanitorConfig struct {
	// Interval between sweeps.
	Interval time.Duration

	// SweepOnStartup runs one sweep before the first tick.
	SweepOnStartup bool
}

// CacheJanitorService periodically reclaims expired planner results so
// memory held by stale recommendations is returned between requests.
type CacheJanitorService struct {
	cache  CacheMaintainer
	config CacheJanitorConfig
	logger zerolog.Logger
	name   string
}

// NewCacheJanitorService creates a new cache janitor.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheJanitorService(cache CacheMaintainer, cfg CacheJanitorConfig, logger zerolog.Logger) *CacheJanitorService {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultJanitorInterval
	}
	return &CacheJanitorService{
		cache:  cache,
		config: cfg,
		logger: logger.With().Str("service", "cache-janitor").Logger(),
		name:   "cache-janitor",
	}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.config.Interval).
		Msg("cache janitor starting")

	if s.config.SweepOnStartup {
		s.sweep()
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("cache janitor shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *CacheJanitorService) sweep() {
	start := time.Now()
	removed := s.cache.CleanupCache()
	if removed == 0 {
		return
	}
	s.logger.Debug().
		Int("removed", removed).
		Dur("duration", time.Since(start)).
		Msg("expired planner results removed")
}

// String returns the service name for logging.
func (s *CacheJanitorService) String() string {
	return s.name
}
