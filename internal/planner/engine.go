// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package planner

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/campwise/internal/analytics"
	"github.com/tomtom215/campwise/internal/cache"
	"github.com/tomtom215/campwise/internal/calendar"
	"github.com/tomtom215/campwise/internal/logging"
	"github.com/tomtom215/campwise/internal/metrics"
	"github.com/tomtom215/campwise/internal/models"
	"github.com/tomtom215/campwise/internal/normalize"
	"github.com/tomtom215/campwise/internal/recommend"
)

// ErrUnknownCamp is returned when a camp ID is not in the supplied catalog.
var ErrUnknownCamp = errors.New("unknown camp")

// Operation names used in logs, metrics and cache keys.
const (
	OpNormalize    = "normalize_catalog"
	OpWeeks        = "weeks"
	OpCoverageGaps = "coverage_gaps"
	OpAffinity     = "affinity"
	OpScore        = "score"
	OpRecommend    = "recommend"
	OpSimilar      = "similar"
	OpGaps         = "gap_suggestions"
	OpPopular      = "popular"
	OpAnalytics    = "schedule_analytics"
	OpConflicts    = "conflicts"
	OpHomepage     = "homepage"
)

// Engine exposes the planning operations with logging, Prometheus timings
// and result memoization. The computation itself is delegated to the pure
// recommend, analytics, calendar and normalize packages.
// It is safe for concurrent use.
//
// Results served from the cache are shared between callers and must be
// treated as read-only.
type Engine struct {
	cfg    *Config
	logger zerolog.Logger

	cache         *cache.LRU[any]
	lastEvictions atomic.Int64

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	errorCount   atomic.Int64
}

// Stats is a snapshot of Engine activity.
type Stats struct {
	Requests    int64        `json:"requests"`
	CacheHits   int64        `json:"cache_hits"`
	CacheMisses int64        `json:"cache_misses"`
	Errors      int64        `json:"errors"`
	Cache       *cache.Stats `json:"cache,omitempty"`
}

// NewEngine creates an Engine. A nil cfg uses DefaultConfig. The engine
// keeps its own copy of cfg.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	own := *cfg
	own.SeasonWeeks = append([]models.Week(nil), cfg.SeasonWeeks...)
	if len(own.SeasonWeeks) == 0 {
		own.SeasonWeeks = calendar.DefaultSeason()
	}

	e := &Engine{
		cfg:    &own,
		logger: logger.With().Str("component", "planner").Logger(),
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRU[any](cfg.Cache.Capacity, cfg.Cache.TTL)
	}
	return e, nil
}

// SeasonWeeks returns the configured default season.
func (e *Engine) SeasonWeeks() []models.Week {
	return append([]models.Week(nil), e.cfg.SeasonWeeks...)
}

// Weights returns the published scoring weights.
func (e *Engine) Weights() recommend.Weights {
	return recommend.WeightTable()
}

// NormalizeCatalog canonicalizes raw camp records.
func (e *Engine) NormalizeCatalog(ctx context.Context, raw []models.Camp) ([]models.Camp, error) {
	metrics.RecordCatalogSize(len(raw))
	return run(ctx, e, OpNormalize, nil, lenOf[models.Camp], func() []models.Camp {
		return normalize.Catalog(raw)
	})
}

// Weeks builds the Mon-Fri weeks between start and end. When both are zero
// the configured season is returned.
func (e *Engine) Weeks(ctx context.Context, start, end models.Date) ([]models.Week, error) {
	return run(ctx, e, OpWeeks, nil, lenOf[models.Week], func() []models.Week {
		if start.IsZero() && end.IsZero() {
			return e.SeasonWeeks()
		}
		return calendar.BuildWeeks(start, end)
	})
}

// CoverageGaps returns each child's uncovered weeks.
func (e *Engine) CoverageGaps(ctx context.Context, family models.Family) (map[string][]models.Week, error) { //nolint:gocritic // snapshot passed by value
	e.withSeason(&family)
	return run(ctx, e, OpCoverageGaps, family, lenOf2[string, []models.Week], func() map[string][]models.Week {
		out := make(map[string][]models.Week, len(family.Children))
		for _, child := range family.Children {
			out[child.ID] = calendar.CoverageGaps(child.ID, family.Schedule, family.Weeks)
		}
		return out
	})
}

// Affinity returns the family's category affinity counts.
func (e *Engine) Affinity(ctx context.Context, family models.Family, catalog []models.Camp) (map[models.Category]int, error) { //nolint:gocritic // snapshot passed by value
	input := struct {
		Favorites []models.Favorite       `json:"favorites"`
		Schedule  []models.ScheduledEntry `json:"schedule"`
		Catalog   []models.Camp           `json:"catalog"`
	}{family.Favorites, family.Schedule, catalog}

	return run(ctx, e, OpAffinity, input, lenOf2[models.Category, int], func() map[models.Category]int {
		return recommend.CategoryAffinity(family.Favorites, family.Schedule, catalog)
	})
}

// ScoreCamp scores a single camp against the request context.
func (e *Engine) ScoreCamp(ctx context.Context, camp models.Camp, rc recommend.RequestContext) (recommend.ScoredCamp, error) { //nolint:gocritic // values passed by value throughout
	e.withSeason(&rc.Family)
	return run(ctx, e, OpScore, nil, func(recommend.ScoredCamp) int { return 1 }, func() recommend.ScoredCamp {
		return recommend.ScoreCamp(&camp, rc)
	})
}

// Recommend ranks rc.Catalog for the family. A zero rc.Limit takes the
// configured default.
func (e *Engine) Recommend(ctx context.Context, rc recommend.RequestContext) ([]recommend.ScoredCamp, error) { //nolint:gocritic // RequestContext is passed by value throughout
	e.withSeason(&rc.Family)
	rc.Limit = e.cfg.limit(rc.Limit)
	metrics.RecordCatalogSize(len(rc.Catalog))

	return run(ctx, e, OpRecommend, rc, lenOf[recommend.ScoredCamp], func() []recommend.ScoredCamp {
		return recommend.Recommend(rc.Catalog, rc, rc.Limit)
	})
}

// Similar ranks catalog camps by likeness to the camp with targetID.
// It returns ErrUnknownCamp when targetID is not in catalog.
func (e *Engine) Similar(ctx context.Context, targetID string, catalog []models.Camp, limit int) ([]recommend.SimilarCamp, error) {
	var target *models.Camp
	for i := range catalog {
		if catalog[i].ID == targetID {
			target = &catalog[i]
			break
		}
	}
	if target == nil {
		e.errorCount.Add(1)
		metrics.RecordPlannerError(OpSimilar, "unknown_camp")
		return nil, fmt.Errorf("similar to %q: %w", targetID, ErrUnknownCamp)
	}

	limit = e.cfg.limit(limit)
	input := struct {
		Target  string        `json:"target"`
		Catalog []models.Camp `json:"catalog"`
		Limit   int           `json:"limit"`
	}{targetID, catalog, limit}

	return run(ctx, e, OpSimilar, input, lenOf[recommend.SimilarCamp], func() []recommend.SimilarCamp {
		return recommend.Similar(target, catalog, limit)
	})
}

// GapSuggestions ranks camps for every uncovered week of every child.
func (e *Engine) GapSuggestions(ctx context.Context, rc recommend.RequestContext) (map[string][]recommend.WeekRecommendations, error) { //nolint:gocritic // RequestContext is passed by value throughout
	e.withSeason(&rc.Family)
	return run(ctx, e, OpGaps, rc, countWeekRecs, func() map[string][]recommend.WeekRecommendations {
		return recommend.GapSuggestions(rc.Catalog, rc)
	})
}

// PopularCamps ranks camps by community counts or listing quality.
// A zero limit takes the homepage section size.
func (e *Engine) PopularCamps(ctx context.Context, catalog []models.Camp, popularity map[string]int, limit int) ([]recommend.PopularCamp, error) {
	if limit == 0 {
		limit = recommend.PopularLimit
	}
	limit = e.cfg.limit(limit)
	input := struct {
		Catalog    []models.Camp  `json:"catalog"`
		Popularity map[string]int `json:"popularity"`
		Limit      int            `json:"limit"`
	}{catalog, popularity, limit}

	return run(ctx, e, OpPopular, input, lenOf[recommend.PopularCamp], func() []recommend.PopularCamp {
		return recommend.PopularCamps(catalog, popularity, limit)
	})
}

// ScheduleAnalytics computes coverage, cost and conflicts for the family.
// The budget comes from the family profile.
func (e *Engine) ScheduleAnalytics(ctx context.Context, family models.Family, catalog []models.Camp) (analytics.Analytics, error) { //nolint:gocritic // snapshot passed by value
	e.withSeason(&family)
	input := struct {
		Family  models.Family `json:"family"`
		Catalog []models.Camp `json:"catalog"`
	}{family, catalog}

	return run(ctx, e, OpAnalytics, input, func(a analytics.Analytics) int { return len(a.Conflicts) }, func() analytics.Analytics {
		return analytics.ScheduleAnalytics(family.Schedule, family.Children, catalog, family.Weeks, family.Profile.Budget())
	})
}

// DetectConflicts reports overlapping active entries per child.
func (e *Engine) DetectConflicts(ctx context.Context, schedule []models.ScheduledEntry, children []models.Child) ([]analytics.Conflict, error) {
	input := struct {
		Schedule []models.ScheduledEntry `json:"schedule"`
		Children []models.Child          `json:"children"`
	}{schedule, children}

	return run(ctx, e, OpConflicts, input, lenOf[analytics.Conflict], func() []analytics.Conflict {
		return analytics.DetectConflicts(schedule, children)
	})
}

// ComposeHomepage builds the state-dependent homepage sections.
func (e *Engine) ComposeHomepage(ctx context.Context, rc recommend.RequestContext) (recommend.Homepage, error) { //nolint:gocritic // RequestContext is passed by value throughout
	e.withSeason(&rc.Family)
	return run(ctx, e, OpHomepage, rc, func(h recommend.Homepage) int { return len(h.Sections) }, func() recommend.Homepage {
		return recommend.ComposeHomepage(rc.Catalog, rc)
	})
}

// Stats returns a snapshot of engine counters.
func (e *Engine) Stats() Stats {
	s := Stats{
		Requests:    e.requestCount.Load(),
		CacheHits:   e.cacheHits.Load(),
		CacheMisses: e.cacheMisses.Load(),
		Errors:      e.errorCount.Load(),
	}
	if e.cache != nil {
		cs := e.cache.Stats()
		s.Cache = &cs
	}
	return s
}

// CleanupCache drops expired results and returns how many were removed.
func (e *Engine) CleanupCache() int {
	if e.cache == nil {
		return 0
	}
	removed := e.cache.CleanupExpired()
	e.publishCacheStats()
	if removed > 0 {
		e.logger.Debug().Int("removed", removed).Msg("expired cache entries removed")
	}
	return removed
}

// ClearCache drops every cached result.
func (e *Engine) ClearCache() {
	if e.cache == nil {
		return
	}
	e.cache.Clear()
	e.publishCacheStats()
	e.logger.Debug().Msg("cache cleared")
}

func (e *Engine) withSeason(family *models.Family) {
	if len(family.Weeks) == 0 {
		family.Weeks = e.cfg.SeasonWeeks
	}
}

func (e *Engine) requestLogger(ctx context.Context, op string) zerolog.Logger {
	lc := e.logger.With().Str("operation", op)
	if id := logging.RequestIDFromContext(ctx); id != "" {
		lc = lc.Str("request_id", id)
	}
	if id := logging.FamilyIDFromContext(ctx); id != "" {
		lc = lc.Str("family_id", id)
	}
	return lc.Logger()
}

func (e *Engine) publishCacheStats() {
	s := e.cache.Stats()
	prev := e.lastEvictions.Swap(s.Evictions)
	metrics.UpdateCacheGauges(s.Size, s.Evictions-prev)
}

// run executes compute for op with cancellation, caching, metrics and
// logging. A nil input bypasses the cache.
func run[T any](ctx context.Context, e *Engine, op string, input any, size func(T) int, compute func() T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		e.errorCount.Add(1)
		metrics.RecordPlannerError(op, "canceled")
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	start := time.Now()
	e.requestCount.Add(1)
	logger := e.requestLogger(ctx, op)

	status := metrics.CacheBypass
	var key uint64
	cacheable := e.cache != nil && input != nil
	if cacheable {
		k, err := cache.Fingerprint(op, input)
		if err != nil {
			logger.Warn().Err(err).Msg("fingerprint failed, computing without cache")
			cacheable = false
		} else {
			key = k
			if v, ok := e.cache.Get(key); ok {
				if result, ok := v.(T); ok {
					e.cacheHits.Add(1)
					latency := time.Since(start)
					metrics.RecordPlannerOperation(op, latency, size(result), metrics.CacheHit)
					logger.Debug().Bool("cache_hit", true).Dur("latency", latency).Msg("planner operation served from cache")
					return result, nil
				}
			}
			e.cacheMisses.Add(1)
			status = metrics.CacheMiss
		}
	}

	result := compute()
	if cacheable {
		e.cache.Put(key, result)
		e.publishCacheStats()
	}

	latency := time.Since(start)
	n := size(result)
	metrics.RecordPlannerOperation(op, latency, n, status)
	logger.Debug().
		Str("cache", status).
		Int("returned", n).
		Dur("latency", latency).
		Msg("planner operation complete")
	return result, nil
}

func lenOf[T any](s []T) int { return len(s) }

func lenOf2[K comparable, V any](m map[K]V) int { return len(m) }

func countWeekRecs(m map[string][]recommend.WeekRecommendations) int {
	n := 0
	for _, weeks := range m {
		n += len(weeks)
	}
	return n
}
