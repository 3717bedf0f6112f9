// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

// Package recommend implements the camp scoring and ranking rules.
//
// # Architecture
//
// Every function in this package is a pure function of its arguments:
//
//   - CategoryAffinity: favorites and schedule to per-category weight
//   - ScoreCamp: one camp against a RequestContext, with labelled reasons
//   - Recommend: filter, score, stable sort, cap
//   - Similar: camps most like a target camp
//   - PopularCamps: community counts or a listing-quality proxy
//   - GapSuggestions: per-child, per-open-week recommendations
//   - ComposeHomepage: state-dependent section list
//
// # Design Principles
//
//   - Deterministic: identical inputs produce identical, deep-equal outputs
//   - Stable: equal scores keep catalog order
//   - Total: malformed or missing fields lower a score, they never fail a call
//   - Explainable: every point added is paired with a human-readable label,
//     except the data-quality weights which only nudge ordering
//
// # Weights
//
// The weight table is exported as constants (AgeMatch, CategoryInterest, ...)
// and as a record via WeightTable. Scores are clamped at zero; a camp already
// on the target child's schedule always scores zero.
//
// # Usage
//
//	rc := recommend.RequestContext{
//	    Catalog: catalog,
//	    Family:  family,
//	}
//	recs := recommend.Recommend(catalog, rc, 10)
//	for _, r := range recs {
//	    fmt.Println(r.Camp.Name, r.Score, r.Explanation)
//	}
//
// # Thread Safety
//
// Functions share no state and may be called concurrently. Inputs are never
// modified; results are freshly allocated.
package recommend
