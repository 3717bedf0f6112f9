// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package recommend

import (
	"strings"
	"testing"

	"github.com/tomtom215/campwise/internal/models"
)

func TestScoreCamp_AgeGate(t *testing.T) {
	c := models.Camp{ID: "c1", MinAge: models.Int(8), MaxAge: models.Int(12)}
	rc := RequestContext{Family: models.Family{Children: []models.Child{child("k1", 6)}}}

	got := ScoreCamp(&c, rc)
	if got.Score != 0 {
		t.Errorf("Score = %d, want 0 (clamped from %d)", got.Score, AgeMismatch)
	}
	if !containsString(got.Penalties, "Age range mismatch") {
		t.Errorf("Penalties = %v, want age mismatch", got.Penalties)
	}
	if got.PrimaryReason != FallbackReason {
		t.Errorf("PrimaryReason = %q, want fallback", got.PrimaryReason)
	}
}

func budgetContext() RequestContext {
	return RequestContext{
		Family: models.Family{
			Profile: &models.FamilyProfile{
				PreferredCategories: []models.Category{models.CategoryArt},
				SummerBudget:        models.Int(4000),
			},
			Children: []models.Child{child("k1", 8), child("k2", 10)},
		},
	}
}

func TestScoreCamp_PreferredCategoryAndBudget(t *testing.T) {
	c := models.Camp{
		ID:       "art",
		Category: models.CategoryArt,
		MinPrice: models.Int(180),
		MinAge:   models.Int(5),
		MaxAge:   models.Int(12),
	}

	got := ScoreCamp(&c, budgetContext())
	want := AgeMatch + CategoryInterest + BudgetFit
	if got.Score != want {
		t.Errorf("Score = %d, want %d", got.Score, want)
	}
	if len(got.Reasons) != 3 {
		t.Fatalf("Reasons = %v, want age, category and budget", got.Reasons)
	}
	if got.Reasons[0] != "Age-appropriate for 8-year-old" {
		t.Errorf("Reasons[0] = %q", got.Reasons[0])
	}
	if !strings.Contains(got.Reasons[1], "Art") {
		t.Errorf("category reason %q should name the category", got.Reasons[1])
	}
	if got.Explanation != strings.Join(got.Reasons, ". ")+"." {
		t.Errorf("Explanation = %q", got.Explanation)
	}
}

func TestScoreCamp_TooExpensive(t *testing.T) {
	c := models.Camp{ID: "pricey", MinPrice: models.Int(320), MinAge: models.Int(5), MaxAge: models.Int(12)}

	got := ScoreCamp(&c, budgetContext())
	if got.Score != AgeMatch+TooExpensive {
		t.Errorf("Score = %d, want %d", got.Score, AgeMatch+TooExpensive)
	}
	if !containsString(got.Penalties, "Exceeds budget") {
		t.Errorf("Penalties = %v, want Exceeds budget", got.Penalties)
	}
	for _, r := range got.Reasons {
		if r == reasonWithinBudget {
			t.Error("an over-budget camp must not earn the budget reason")
		}
	}

	// Between the allowance and 1.5x the allowance nothing happens.
	mid := models.Camp{ID: "mid", MinPrice: models.Int(250), MinAge: models.Int(5), MaxAge: models.Int(12)}
	if got := ScoreCamp(&mid, budgetContext()); got.Score != AgeMatch || len(got.Penalties) != 0 {
		t.Errorf("mid-priced camp: score %d penalties %v, want %d and none", got.Score, got.Penalties, AgeMatch)
	}
}

func TestScoreCamp_AlreadyScheduled(t *testing.T) {
	c := models.Camp{
		ID:                 "x",
		Category:           models.CategoryArt,
		MinPrice:           models.Int(100),
		MinAge:             models.Int(5),
		MaxAge:             models.Int(12),
		ExtendedCare:       "Yes",
		FoodIncluded:       true,
		Transportation:     true,
		RegistrationStatus: "Open",
		ImageURL:           "https://example.com/x.jpg",
		WebsiteURL:         "https://example.com",
		ContactEmail:       "hi@example.com",
		Rating:             models.Float(4.8),
	}
	rc := budgetContext()
	rc.Family.Favorites = []models.Favorite{{CampID: "x"}, {CampID: "x", ChildID: "k2"}}
	rc.Family.Schedule = []models.ScheduledEntry{entry("e1", "x", "k1", "2026-06-08", "2026-06-12")}
	rc.Catalog = []models.Camp{c}

	got := ScoreCamp(&c, rc)
	if got.Score != 0 {
		t.Errorf("Score = %d, want 0", got.Score)
	}
	if !containsString(got.Penalties, "Already scheduled") {
		t.Errorf("Penalties = %v, want Already scheduled", got.Penalties)
	}

	// Cancelled entries do not count.
	rc.Family.Schedule[0].Status = models.StatusCancelled
	if got := ScoreCamp(&c, rc); got.Score == 0 || containsString(got.Penalties, "Already scheduled") {
		t.Errorf("cancelled entry still penalized: score %d penalties %v", got.Score, got.Penalties)
	}

	// Another child's entry does not count either.
	rc.Family.Schedule[0].Status = models.StatusConfirmed
	rc.Family.Schedule[0].ChildID = "k2"
	if got := ScoreCamp(&c, rc); containsString(got.Penalties, "Already scheduled") {
		t.Error("a sibling's booking should not penalize the target child")
	}
}

func TestScoreCamp_MonotonePreferredCategory(t *testing.T) {
	base := budgetContext()
	base.Family.Profile.PreferredCategories = nil

	with := budgetContext()
	with.Family.Profile.PreferredCategories = []models.Category{models.CategorySports}

	for _, c := range testCatalog() {
		c.Category = models.CategorySports
		before := ScoreCamp(&c, base)
		after := ScoreCamp(&c, with)
		if after.Score < before.Score {
			t.Errorf("%s: score decreased from %d to %d", c.ID, before.Score, after.Score)
		}
		if before.Score > 0 && after.Score != before.Score+CategoryInterest {
			t.Errorf("%s: score %d -> %d, want +%d", c.ID, before.Score, after.Score, CategoryInterest)
		}
	}
}

func TestScoreCamp_NonNegative(t *testing.T) {
	rc := budgetContext()
	rc.Family.Children = []models.Child{child("k1", 4)}
	for _, c := range testCatalog() {
		c.MinPrice = models.Int(5000)
		if got := ScoreCamp(&c, rc); got.Score < 0 {
			t.Errorf("%s: negative score %d", c.ID, got.Score)
		}
	}
}

func TestScoreCamp_Features(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Camp, *RequestContext)
		delta  int
		boost  string
	}{
		{"extended care", func(c *models.Camp, _ *RequestContext) { c.ExtendedCare = "Until 6pm" }, HasExtendedCare, "Extended care available"},
		{"extended care no", func(c *models.Camp, _ *RequestContext) { c.ExtendedCare = "No" }, 0, ""},
		{"food", func(c *models.Camp, _ *RequestContext) { c.FoodIncluded = true }, FoodIncluded, "Lunch included"},
		{"transport", func(c *models.Camp, _ *RequestContext) { c.Transportation = true }, Transportation, "Transportation available"},
		{"registration", func(c *models.Camp, _ *RequestContext) { c.RegistrationStatus = "Now OPEN" }, RegistrationOpen, "Registration open"},
		{"rating", func(c *models.Camp, _ *RequestContext) { c.Rating = models.Float(4.5) }, GoodRating, "Highly rated"},
		{"low rating", func(c *models.Camp, _ *RequestContext) { c.Rating = models.Float(3.2) }, 0, ""},
		{"image", func(c *models.Camp, _ *RequestContext) { c.ImageURL = "img.jpg" }, HasImage, ""},
		{"short description", func(c *models.Camp, _ *RequestContext) { c.Description = "Fun!" }, 0, ""},
		{"long description", func(c *models.Camp, _ *RequestContext) { c.Description = strings.Repeat("a", 101) }, HasDescription, ""},
		{"contact", func(c *models.Camp, _ *RequestContext) { c.ContactPhone = "555-0100" }, HasContact, ""},
		{"website", func(c *models.Camp, _ *RequestContext) { c.WebsiteURL = "https://camp.example" }, HasWebsite, ""},
		{"popular", func(c *models.Camp, rc *RequestContext) { rc.Popularity = map[string]int{c.ID: 3} }, SimilarFamilies, "Popular with 3 families"},
		{"not popular enough", func(c *models.Camp, rc *RequestContext) { rc.Popularity = map[string]int{c.ID: 2} }, 0, ""},
		{"sibling discount single child", func(c *models.Camp, _ *RequestContext) { c.SiblingDiscount = "10% off" }, 0, ""},
		{"sibling discount two children", func(c *models.Camp, rc *RequestContext) {
			c.SiblingDiscount = "10% off"
			rc.Family.Children = append(rc.Family.Children, child("k2", 12))
		}, SiblingDiscount, "Sibling discount"},
		{"work schedule", func(c *models.Camp, rc *RequestContext) {
			c.DropOff, c.PickUp = "8:00", "17:30"
			rc.Family.Profile = &models.FamilyProfile{WorkHoursStart: "09:00", WorkHoursEnd: "17:00"}
		}, WorkScheduleFit, "Fits your work schedule"},
		{"work schedule without profile hours", func(c *models.Camp, _ *RequestContext) {
			c.DropOff, c.PickUp = "8:00", "17:30"
		}, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := models.Camp{ID: "c", MinAge: models.Int(5), MaxAge: models.Int(12)}
			rc := RequestContext{Family: models.Family{Children: []models.Child{child("k1", 8)}}}
			tt.mutate(&c, &rc)

			got := ScoreCamp(&c, rc)
			if got.Score != AgeMatch+tt.delta {
				t.Errorf("Score = %d, want %d", got.Score, AgeMatch+tt.delta)
			}
			if tt.boost != "" && !containsString(got.Boosts, tt.boost) {
				t.Errorf("Boosts = %v, want %q", got.Boosts, tt.boost)
			}
			if tt.boost == "" && len(got.Boosts) != 0 {
				t.Errorf("Boosts = %v, want none", got.Boosts)
			}
		})
	}
}

func TestScoreCamp_Affinity(t *testing.T) {
	catalog := []models.Camp{
		camp("fav1", models.CategoryArt, 5, 12, 100),
		camp("sched1", models.CategoryArt, 5, 12, 100),
		camp("target", models.CategoryArt, 5, 12, 100),
	}
	rc := RequestContext{
		Catalog: catalog,
		Family: models.Family{
			Children:  []models.Child{child("k1", 8)},
			Favorites: []models.Favorite{{CampID: "fav1"}},
		},
	}

	// One favorite: affinity 2, contribution 10, boost earned.
	got := ScoreCamp(&catalog[2], rc)
	if got.Score != AgeMatch+10 || !containsString(got.Boosts, boostSavedSimilar) {
		t.Errorf("one favorite: score %d boosts %v", got.Score, got.Boosts)
	}

	// Schedule only: affinity 1, contribution 5, no boost label.
	rc.Family.Favorites = nil
	rc.Family.Schedule = []models.ScheduledEntry{entry("e1", "sched1", "k1", "2026-06-08", "2026-06-12")}
	got = ScoreCamp(&catalog[2], rc)
	if got.Score != AgeMatch+5 || containsString(got.Boosts, boostSavedSimilar) {
		t.Errorf("one scheduled: score %d boosts %v", got.Score, got.Boosts)
	}

	// Plenty of signal: capped at FavoritedCategory.
	rc.Family.Favorites = []models.Favorite{{CampID: "fav1"}, {CampID: "sched1"}, {CampID: "fav1", ChildID: "k1"}}
	got = ScoreCamp(&catalog[2], rc)
	if got.Score != AgeMatch+FavoritedCategory {
		t.Errorf("capped affinity: score %d, want %d", got.Score, AgeMatch+FavoritedCategory)
	}
}

func TestScoreCamp_Interests(t *testing.T) {
	c := models.Camp{
		ID:          "surf",
		MinAge:      models.Int(5),
		MaxAge:      models.Int(14),
		Description: "Surfing lessons, beach games and ocean safety.",
	}
	rc := RequestContext{Family: models.Family{
		Children: []models.Child{child("k1", 9, "Beach/Surf", "Music", "Surfing")},
	}}

	got := ScoreCamp(&c, rc)
	// Beach/Surf and Surfing match; Music does not.
	if got.Score != AgeMatch+2*InterestMatch {
		t.Errorf("Score = %d, want %d (reasons %v)", got.Score, AgeMatch+2*InterestMatch, got.Reasons)
	}
}

func TestScoreCamp_TargetChild(t *testing.T) {
	c := models.Camp{ID: "teen", MinAge: models.Int(12), MaxAge: models.Int(16)}
	older := child("k2", 13)
	rc := RequestContext{
		Family:      models.Family{Children: []models.Child{child("k1", 6), older}},
		TargetChild: &older,
	}
	if got := ScoreCamp(&c, rc); got.Score != AgeMatch {
		t.Errorf("Score = %d, want %d for the explicit target child", got.Score, AgeMatch)
	}
}

func TestScoreCamp_WeekToFill(t *testing.T) {
	week := models.Week{Number: 3}
	rc := RequestContext{
		Family:     models.Family{Children: []models.Child{child("k1", 8)}},
		WeekToFill: &week,
	}

	runs := models.Camp{ID: "runs", MinAge: models.Int(5), MaxAge: models.Int(12), WeeksAvailable: []int{3}}
	got := ScoreCamp(&runs, rc)
	if got.Score != AgeMatch+FillsGap {
		t.Errorf("Score = %d, want %d", got.Score, AgeMatch+FillsGap)
	}
	if !containsString(got.Reasons, "Available for Week 3") {
		t.Errorf("Reasons = %v, want week reference", got.Reasons)
	}

	unknown := models.Camp{ID: "unknown", MinAge: models.Int(5), MaxAge: models.Int(12)}
	if got := ScoreCamp(&unknown, rc); got.Score != AgeMatch {
		t.Errorf("camp without run data: Score = %d, want %d", got.Score, AgeMatch)
	}
}

func TestExplain(t *testing.T) {
	tests := []struct {
		name        string
		reasons     []string
		boosts      []string
		primary     string
		explanation string
	}{
		{"fallback", nil, nil, FallbackReason, FallbackReason + "."},
		{"boost only", nil, []string{"Lunch included"}, "Lunch included", "Lunch included."},
		{"capped", []string{"A", "B"}, []string{"C", "D"}, "A", "A. B. C."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary, explanation := explain(tt.reasons, tt.boosts)
			if primary != tt.primary || explanation != tt.explanation {
				t.Errorf("explain() = (%q, %q), want (%q, %q)", primary, explanation, tt.primary, tt.explanation)
			}
		})
	}
}
