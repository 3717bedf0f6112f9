// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package recommend

import (
	"cmp"
	"slices"

	"github.com/tomtom215/campwise/internal/models"
)

// Eligible reports whether a camp may be ranked: it must be open and carry
// at least age or price information.
func Eligible(c *models.Camp) bool {
	return !c.Closed && (c.HasAgeInfo() || c.HasPriceInfo())
}

// Recommend scores every eligible camp, drops non-positive scores and
// returns at most limit results sorted by score. Ties keep catalog order.
// Duplicate camp IDs are scored once, at their first position.
func Recommend(catalog []models.Camp, rc RequestContext, limit int) []ScoredCamp { //nolint:gocritic // RequestContext is passed by value throughout
	if limit <= 0 || len(catalog) == 0 {
		return []ScoredCamp{}
	}
	if rc.Catalog == nil {
		rc.Catalog = catalog
	}

	s := newScorer(rc)
	seen := make(map[string]struct{}, len(catalog))
	results := make([]ScoredCamp, 0, len(catalog))

	for i := range catalog {
		camp := &catalog[i]
		if _, dup := seen[camp.ID]; dup {
			continue
		}
		seen[camp.ID] = struct{}{}

		if !Eligible(camp) {
			continue
		}
		if scored := s.score(camp); scored.Score > 0 {
			results = append(results, scored)
		}
	}

	slices.SortStableFunc(results, func(a, b ScoredCamp) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
