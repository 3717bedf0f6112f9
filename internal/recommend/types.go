// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package recommend

import (
	"github.com/tomtom215/campwise/internal/models"
)

// RequestContext carries everything a scoring call may consult.
type RequestContext struct {
	// Catalog is the camp snapshot. Affinity resolves favorite and scheduled
	// camp IDs to categories through it.
	Catalog []models.Camp `json:"catalog"`

	// Family is the household snapshot: profile, children, favorites, schedule, weeks.
	Family models.Family `json:"family"`

	// TargetChild is the child being planned for. When nil the first child is used.
	TargetChild *models.Child `json:"target_child,omitempty"`

	// WeekToFill, when set, rewards camps that plausibly run that week.
	WeekToFill *models.Week `json:"week_to_fill,omitempty"`

	// Popularity maps camp ID to the number of families that chose it.
	Popularity map[string]int `json:"popularity,omitempty"`

	// Limit caps ranked output.
	Limit int `json:"limit,omitempty"`
}

// ResolveChild returns the target child, falling back to the first child.
//
//nolint:gocritic // value receiver keeps RequestContext a plain value
func (rc RequestContext) ResolveChild() (models.Child, bool) {
	if rc.TargetChild != nil {
		return *rc.TargetChild, true
	}
	if len(rc.Family.Children) > 0 {
		return rc.Family.Children[0], true
	}
	return models.Child{}, false
}

// ScoredCamp is a camp annotated with its score and the human-readable
// labels that produced it.
type ScoredCamp struct {
	// Camp is the scored record.
	Camp models.Camp `json:"camp"`

	// Score is the clamped total. Never negative.
	Score int `json:"score"`

	// Reasons explain positive matches (age, category, budget, interests).
	Reasons []string `json:"reasons"`

	// Boosts are secondary advantages (features, popularity, affinity).
	Boosts []string `json:"boosts"`

	// Penalties label score reductions.
	Penalties []string `json:"penalties"`

	// PrimaryReason is the first reason, else the first boost, else a fallback.
	PrimaryReason string `json:"primary_reason"`

	// Explanation is PrimaryReason plus up to two more clauses.
	Explanation string `json:"explanation"`
}

// SimilarCamp is a catalog camp ranked by likeness to a target camp.
type SimilarCamp struct {
	Camp        models.Camp `json:"camp"`
	Similarity  int         `json:"similarity"`
	Reasons     []string    `json:"reasons"`
	Explanation string      `json:"explanation"`
}

// PopularitySource records where a popularity score came from.
type PopularitySource string

const (
	// PopularityCommunity means counts supplied by the caller.
	PopularityCommunity PopularitySource = "community"
	// PopularityListingQuality means the data-quality proxy was used.
	PopularityListingQuality PopularitySource = "listing_quality"
)

// PopularCamp is a camp with its popularity score.
type PopularCamp struct {
	Camp   models.Camp      `json:"camp"`
	Score  int              `json:"score"`
	Source PopularitySource `json:"source"`
}

// WeekRecommendations pairs an open week with camps that could fill it.
type WeekRecommendations struct {
	Week            models.Week  `json:"week"`
	Recommendations []ScoredCamp `json:"recommendations"`
}

// SectionType identifies a homepage section.
type SectionType string

// Homepage section types.
const (
	SectionOnboarding      SectionType = "onboarding"
	SectionRecommendations SectionType = "recommendations"
	SectionGaps            SectionType = "gaps"
	SectionSimilar         SectionType = "similar"
	SectionPopular         SectionType = "popular"
)

// FamilyState classifies a family for homepage composition.
type FamilyState string

// Family states, in precedence order.
const (
	StateNew          FamilyState = "new"
	StateHasChildren  FamilyState = "has_children"
	StateHasSchedule  FamilyState = "has_schedule"
	StateHasFavorites FamilyState = "has_favorites"
	StateSettled      FamilyState = "settled"
)

// Section is one block of the homepage. Exactly one payload field is set,
// except for onboarding which carries none.
type Section struct {
	Type     SectionType `json:"type"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle,omitempty"`

	Recommendations []ScoredCamp                     `json:"recommendations,omitempty"`
	Gaps            map[string][]WeekRecommendations `json:"gaps,omitempty"`
	Popular         []PopularCamp                    `json:"popular,omitempty"`
}

// Homepage is the ordered section list for a family.
type Homepage struct {
	State    FamilyState `json:"state"`
	Sections []Section   `json:"sections"`
}
