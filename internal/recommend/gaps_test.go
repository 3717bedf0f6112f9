// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package recommend

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/campwise/internal/calendar"
	"github.com/tomtom215/campwise/internal/models"
)

func TestGapSuggestions(t *testing.T) {
	catalog := testCatalog()
	family := testFamily()
	family.Children = family.Children[:1]
	family.Schedule = []models.ScheduledEntry{
		entry("e1", "surf", "k1", "2026-06-15", "2026-06-19"),
		entry("e2", "robots", "k1", "2026-07-06", "2026-07-10"),
	}
	rc := RequestContext{Catalog: catalog, Family: family}

	got := GapSuggestions(catalog, rc)
	weeks, ok := got["k1"]
	if !ok {
		t.Fatal("missing entry for k1")
	}

	var numbers []int
	for _, w := range weeks {
		numbers = append(numbers, w.Week.Number)
	}
	if !reflect.DeepEqual(numbers, []int{1, 3, 4, 6, 7, 8, 9, 10}) {
		t.Fatalf("gap weeks = %v", numbers)
	}

	for _, w := range weeks {
		if len(w.Recommendations) > GapRecommendationLimit {
			t.Errorf("week %d: %d recommendations", w.Week.Number, len(w.Recommendations))
		}
		suffix := fmt.Sprintf("Fills your Week %d gap.", w.Week.Number)
		for _, r := range w.Recommendations {
			if !strings.HasSuffix(r.Explanation, suffix) {
				t.Errorf("week %d: explanation %q lacks %q", w.Week.Number, r.Explanation, suffix)
			}
			if r.Camp.ID == "surf" || r.Camp.ID == "robots" {
				t.Errorf("week %d: already scheduled camp %s suggested", w.Week.Number, r.Camp.ID)
			}
		}
	}
}

func TestGapSuggestions_ChildWithoutGaps(t *testing.T) {
	weeks := calendar.BuildWeeks(models.MustParseDate("2026-06-08"), models.MustParseDate("2026-06-19"))
	family := models.Family{
		Profile:  &models.FamilyProfile{},
		Children: []models.Child{child("k1", 8), child("k2", 10)},
		Schedule: []models.ScheduledEntry{entry("e1", "art", "k1", "2026-06-08", "2026-06-19")},
		Weeks:    weeks,
	}

	got := GapSuggestions(testCatalog(), RequestContext{Family: family})
	if len(got) != 2 {
		t.Fatalf("len = %d, want an entry per child", len(got))
	}
	if got["k1"] == nil || len(got["k1"]) != 0 {
		t.Errorf("k1 = %v, want empty list", got["k1"])
	}
	if len(got["k2"]) != 2 {
		t.Errorf("k2 has %d gap weeks, want 2", len(got["k2"]))
	}
}

func TestGapSuggestions_NoWeeks(t *testing.T) {
	family := testFamily()
	family.Weeks = nil
	got := GapSuggestions(testCatalog(), RequestContext{Family: family})
	for id, weeks := range got {
		if len(weeks) != 0 {
			t.Errorf("%s: %d weeks without a season", id, len(weeks))
		}
	}
	if HasGaps(&family) {
		t.Error("HasGaps should be false without weeks")
	}
}
