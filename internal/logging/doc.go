// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

// Package logging provides the zerolog-based structured logger shared by
// every Campwise component.
//
// # Overview
//
//   - JSON output for production, console output for development
//   - A global logger configured once from main via Init
//   - Request-scoped loggers carrying request_id and family_id
//   - An slog.Handler adapter for libraries that only speak slog
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
//
//	logging.Info().Int("weeks", len(weeks)).Msg("Season calendar built")
//	logging.Ctx(ctx).Warn().Str("camp_id", id).Msg("Unknown camp")
//
// # Configuration
//
// The config package maps LOG_LEVEL, LOG_FORMAT and LOG_CALLER onto Config.
//
// # Best Practices
//
// Always terminate event chains with Msg or Send; an unterminated event is
// never written. Prefer typed fields over Msgf.
//
// # Thread Safety
//
// The global logger is guarded by a RWMutex. zerolog.Logger values are
// immutable and safe to share between goroutines.
package logging
