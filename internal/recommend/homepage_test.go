// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package recommend

import (
	"testing"

	"github.com/tomtom215/campwise/internal/calendar"
	"github.com/tomtom215/campwise/internal/models"
)

func sectionTypes(h Homepage) []SectionType {
	out := make([]SectionType, 0, len(h.Sections))
	for _, s := range h.Sections {
		out = append(out, s.Type)
	}
	return out
}

func TestComposeHomepage(t *testing.T) {
	fullSeason := []models.ScheduledEntry{}
	for i, w := range calendar.DefaultSeason() {
		fullSeason = append(fullSeason, models.ScheduledEntry{
			ID:        "e" + string(rune('a'+i)),
			CampID:    "art",
			ChildID:   "k1",
			StartDate: w.StartDate,
			EndDate:   w.EndDate,
		})
	}

	tests := []struct {
		name   string
		family models.Family
		state  FamilyState
		types  []SectionType
	}{
		{
			name:   "no profile",
			family: models.Family{Children: []models.Child{child("k1", 8)}},
			state:  StateNew,
			types:  []SectionType{SectionOnboarding, SectionPopular},
		},
		{
			name:   "profile but nobody yet",
			family: models.Family{Profile: &models.FamilyProfile{}},
			state:  StateNew,
			types:  []SectionType{SectionOnboarding, SectionPopular},
		},
		{
			name:   "children without schedule",
			family: testFamily(),
			state:  StateHasChildren,
			types:  []SectionType{SectionRecommendations, SectionPopular},
		},
		{
			name: "schedule with gaps",
			family: func() models.Family {
				f := testFamily()
				f.Schedule = []models.ScheduledEntry{entry("e1", "surf", "k1", "2026-06-08", "2026-06-12")}
				return f
			}(),
			state: StateHasSchedule,
			types: []SectionType{SectionGaps, SectionPopular},
		},
		{
			name: "full schedule with favorites",
			family: models.Family{
				Profile:   &models.FamilyProfile{},
				Children:  []models.Child{child("k1", 8)},
				Favorites: []models.Favorite{{CampID: "clay"}},
				Schedule:  fullSeason,
				Weeks:     calendar.DefaultSeason(),
			},
			state: StateHasFavorites,
			types: []SectionType{SectionSimilar, SectionPopular},
		},
		{
			name: "full schedule without favorites",
			family: models.Family{
				Profile:  &models.FamilyProfile{},
				Children: []models.Child{child("k1", 8)},
				Schedule: fullSeason,
				Weeks:    calendar.DefaultSeason(),
			},
			state: StateSettled,
			types: []SectionType{SectionPopular},
		},
		{
			name: "favorites only",
			family: models.Family{
				Profile:   &models.FamilyProfile{},
				Favorites: []models.Favorite{{CampID: "clay"}},
			},
			state: StateHasFavorites,
			types: []SectionType{SectionSimilar, SectionPopular},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComposeHomepage(testCatalog(), RequestContext{Family: tt.family})
			if got.State != tt.state {
				t.Errorf("State = %q, want %q", got.State, tt.state)
			}
			types := sectionTypes(got)
			if len(types) != len(tt.types) {
				t.Fatalf("sections = %v, want %v", types, tt.types)
			}
			for i := range types {
				if types[i] != tt.types[i] {
					t.Fatalf("sections = %v, want %v", types, tt.types)
				}
			}
		})
	}
}

func TestComposeHomepage_Payloads(t *testing.T) {
	catalog := testCatalog()
	family := testFamily()

	h := ComposeHomepage(catalog, RequestContext{Family: family})
	recs := h.Sections[0]
	if len(recs.Recommendations) == 0 || len(recs.Recommendations) > HomepageRecommendationLimit {
		t.Errorf("recommendations section has %d camps", len(recs.Recommendations))
	}
	if recs.Subtitle != "Picked for Kid k1" {
		t.Errorf("Subtitle = %q", recs.Subtitle)
	}

	popular := h.Sections[len(h.Sections)-1]
	if len(popular.Popular) > PopularLimit {
		t.Errorf("popular section has %d camps", len(popular.Popular))
	}
}
