// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package recommend

import (
	"fmt"

	"github.com/tomtom215/campwise/internal/models"
)

// Homepage section sizes.
const (
	HomepageRecommendationLimit = 6
	HomepageSimilarLimit        = 4
)

// ClassifyFamily places a family in the first matching state.
func ClassifyFamily(f *models.Family) FamilyState {
	switch {
	case f.Profile == nil || (len(f.Children) == 0 && len(f.Favorites) == 0):
		return StateNew
	case len(f.Children) > 0 && !f.HasActiveSchedule():
		return StateHasChildren
	case f.HasActiveSchedule() && HasGaps(f):
		return StateHasSchedule
	case len(f.Favorites) > 0:
		return StateHasFavorites
	default:
		return StateSettled
	}
}

// ComposeHomepage builds the ordered homepage sections for a family.
// The state-specific section comes first; popular is always last.
func ComposeHomepage(catalog []models.Camp, rc RequestContext) Homepage { //nolint:gocritic // RequestContext is passed by value throughout
	if rc.Catalog == nil {
		rc.Catalog = catalog
	}

	state := ClassifyFamily(&rc.Family)
	sections := make([]Section, 0, 2)

	switch state {
	case StateNew:
		sections = append(sections, Section{
			Type:     SectionOnboarding,
			Title:    "Start planning your summer",
			Subtitle: "Add your kids and what they love to get personalized picks",
		})

	case StateHasChildren:
		first := rc.Family.Children[0]
		crc := rc
		crc.TargetChild = &first
		sections = append(sections, Section{
			Type:            SectionRecommendations,
			Title:           "Recommended camps",
			Subtitle:        picksFor(first),
			Recommendations: Recommend(catalog, crc, HomepageRecommendationLimit),
		})

	case StateHasSchedule:
		sections = append(sections, Section{
			Type:     SectionGaps,
			Title:    "Fill the gaps in your summer",
			Subtitle: "Open weeks with camps that fit",
			Gaps:     GapSuggestions(catalog, rc),
		})

	case StateHasFavorites:
		sections = append(sections, Section{
			Type:            SectionSimilar,
			Title:           "More like your favorites",
			Recommendations: Recommend(catalog, rc, HomepageSimilarLimit),
		})
	}

	sections = append(sections, Section{
		Type:    SectionPopular,
		Title:   "Popular this summer",
		Popular: PopularCamps(catalog, rc.Popularity, PopularLimit),
	})

	return Homepage{State: state, Sections: sections}
}

func picksFor(c models.Child) string { //nolint:gocritic // small value type
	if c.Name == "" {
		return "Picked for your family"
	}
	return fmt.Sprintf("Picked for %s", c.Name)
}
