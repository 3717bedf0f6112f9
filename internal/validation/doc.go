// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

// Package validation validates API request bodies with go-playground/validator v10.
//
// # Overview
//
// The package provides:
//   - A thread-safe singleton validator with cached struct info
//   - Custom tags for planner vocabulary (see below)
//   - A struct-level rule rejecting scheduled entries that end before they start
//   - Error translation to the VALIDATION_FAILED API error body
//
// Field names in errors are JSON names with the nested path, e.g.
// "family.children[1].age_as_of_summer".
//
// # Custom Tags
//
//	category   one of the fifteen camp categories, matched exactly
//	status     planned, registered, confirmed, waitlisted or cancelled
//	timeofday  24-hour HH:MM
//	isodate    YYYY-MM-DD
//
// The api package canonicalizes categories and statuses before validating,
// so free-form input only fails these tags when canonicalization is skipped.
//
// # Quick Start
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// # Thread Safety
//
// GetValidator and ValidateStruct are safe for concurrent use.
package validation
