// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package api

import "errors"

// Common API errors
var (
	// ErrEmptyBody indicates a POST endpoint received no JSON document
	ErrEmptyBody = errors.New("request body is empty")

	// ErrUnknownChild indicates target_child_id names no child in the family
	ErrUnknownChild = errors.New("unknown child")

	// ErrUnknownWeek indicates week_number names no week in the season
	ErrUnknownWeek = errors.New("unknown week")
)
