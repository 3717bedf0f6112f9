// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package recommend

import (
	"fmt"

	"github.com/tomtom215/campwise/internal/calendar"
	"github.com/tomtom215/campwise/internal/models"
)

// GapRecommendationLimit is the number of suggestions per open week.
const GapRecommendationLimit = 3

// GapSuggestions finds each child's uncovered weeks in rc.Family.Weeks and
// ranks camps to fill them. Every child appears in the result; children with
// no gaps map to an empty list.
func GapSuggestions(catalog []models.Camp, rc RequestContext) map[string][]WeekRecommendations { //nolint:gocritic // RequestContext is passed by value throughout
	out := make(map[string][]WeekRecommendations, len(rc.Family.Children))
	if rc.Catalog == nil {
		rc.Catalog = catalog
	}

	for _, child := range rc.Family.Children {
		gaps := calendar.CoverageGaps(child.ID, rc.Family.Schedule, rc.Family.Weeks)
		weeks := make([]WeekRecommendations, 0, len(gaps))

		for _, week := range gaps {
			wrc := rc
			wrc.TargetChild = &child
			wrc.WeekToFill = &week

			recs := Recommend(catalog, wrc, GapRecommendationLimit)
			suffix := fmt.Sprintf(" Fills your Week %d gap.", week.Number)
			for i := range recs {
				recs[i].Explanation += suffix
			}
			weeks = append(weeks, WeekRecommendations{Week: week, Recommendations: recs})
		}
		out[child.ID] = weeks
	}
	return out
}

// HasGaps reports whether any child has at least one uncovered week.
func HasGaps(family *models.Family) bool {
	if len(family.Weeks) == 0 {
		return false
	}
	for _, child := range family.Children {
		if len(calendar.CoverageGaps(child.ID, family.Schedule, family.Weeks)) > 0 {
			return true
		}
	}
	return false
}
