// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package recommend

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/tomtom215/campwise/internal/models"
)

// Listing-quality proxy weights, used when no community counts exist.
const (
	qualityImage        = 3
	qualityDescription  = 2
	qualityRegistration = 1

	// richDescription is the description length (in runes) the proxy rewards.
	richDescription = 200

	// PopularLimit is the size of the homepage popular section.
	PopularLimit = 6
)

// PopularCamps ranks camps by the caller's popularity counts, or by the
// listing-quality proxy when the map is empty. Only positive scores are kept.
func PopularCamps(catalog []models.Camp, popularity map[string]int, limit int) []PopularCamp {
	if limit <= 0 {
		return []PopularCamp{}
	}

	source := PopularityCommunity
	scoreOf := func(c *models.Camp) int { return popularity[c.ID] }
	if len(popularity) == 0 {
		source = PopularityListingQuality
		scoreOf = listingQuality
	}

	seen := make(map[string]struct{}, len(catalog))
	results := make([]PopularCamp, 0, len(catalog))
	for i := range catalog {
		c := &catalog[i]
		if _, dup := seen[c.ID]; dup || c.Closed {
			continue
		}
		seen[c.ID] = struct{}{}
		if score := scoreOf(c); score > 0 {
			results = append(results, PopularCamp{Camp: *c, Score: score, Source: source})
		}
	}

	slices.SortStableFunc(results, func(a, b PopularCamp) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func listingQuality(c *models.Camp) int {
	score := 0
	if strings.TrimSpace(c.ImageURL) != "" {
		score += qualityImage
	}
	if utf8.RuneCountInString(strings.TrimSpace(c.Description)) > richDescription {
		score += qualityDescription
	}
	if c.RegistrationOpen() {
		score += qualityRegistration
	}
	return score
}
