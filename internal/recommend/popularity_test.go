// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package recommend

import (
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/campwise/internal/models"
)

func TestPopularCamps_Community(t *testing.T) {
	catalog := testCatalog()
	popularity := map[string]int{"robots": 2, "surf": 9, "art": 2, "closed": 50}

	got := PopularCamps(catalog, popularity, 10)
	gotIDs := ids(got, func(p PopularCamp) string { return p.Camp.ID })
	// closed camps never appear; ties keep catalog order (art before robots).
	if !reflect.DeepEqual(gotIDs, []string{"surf", "art", "robots"}) {
		t.Errorf("order = %v", gotIDs)
	}
	for _, p := range got {
		if p.Source != PopularityCommunity {
			t.Errorf("%s source = %q", p.Camp.ID, p.Source)
		}
	}
}

func TestPopularCamps_ListingQualityProxy(t *testing.T) {
	catalog := []models.Camp{
		{ID: "bare", MinAge: models.Int(5)},
		{ID: "open", MinAge: models.Int(5), RegistrationStatus: "open"},
		{ID: "pictured", MinAge: models.Int(5), ImageURL: "a.jpg"},
		{ID: "full", MinAge: models.Int(5), ImageURL: "a.jpg", Description: strings.Repeat("x", 201), RegistrationStatus: "Open now"},
	}

	got := PopularCamps(catalog, nil, PopularLimit)
	gotIDs := ids(got, func(p PopularCamp) string { return p.Camp.ID })
	if !reflect.DeepEqual(gotIDs, []string{"full", "pictured", "open"}) {
		t.Errorf("order = %v", gotIDs)
	}
	if got[0].Score != 6 || got[0].Source != PopularityListingQuality {
		t.Errorf("full = %d/%s, want 6/listing_quality", got[0].Score, got[0].Source)
	}
}

func TestPopularCamps_Limit(t *testing.T) {
	catalog := make([]models.Camp, 0, 10)
	for i := 0; i < 10; i++ {
		catalog = append(catalog, models.Camp{ID: string(rune('a' + i)), ImageURL: "x.jpg"})
	}
	if got := PopularCamps(catalog, nil, PopularLimit); len(got) != PopularLimit {
		t.Errorf("len = %d, want %d", len(got), PopularLimit)
	}
}

func TestCategoryAffinity(t *testing.T) {
	catalog := testCatalog()
	favorites := []models.Favorite{{CampID: "art"}, {CampID: "clay", ChildID: "k1"}, {CampID: "missing"}}
	schedule := []models.ScheduledEntry{
		entry("e1", "surf", "k1", "2026-06-08", "2026-06-12"),
		entry("e2", "art", "k2", "2026-06-08", "2026-06-12"),
		entry("e3", "robots", "k2", "2026-06-15", "2026-06-19"),
	}
	schedule[2].Status = models.StatusCancelled

	got := CategoryAffinity(favorites, schedule, catalog)
	want := map[models.Category]int{
		models.CategoryArt:       5,
		models.CategoryBeachSurf: 1,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CategoryAffinity() = %v, want %v", got, want)
	}
}

func TestWeightTable(t *testing.T) {
	w := WeightTable()
	if w.AgeMatch != 40 || w.AlreadyScheduled != -100 || w.FillsGap != 25 {
		t.Errorf("unexpected weights: %+v", w)
	}
	m := w.ToMap()
	if len(m) != 22 {
		t.Errorf("ToMap has %d entries, want 22", len(m))
	}
	if m["category_interest"] != CategoryInterest {
		t.Errorf("category_interest = %d", m["category_interest"])
	}
}
