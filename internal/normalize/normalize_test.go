// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package normalize

import (
	"reflect"
	"testing"

	"github.com/tomtom215/campwise/internal/models"
)

func intOrNil(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func TestParseWeeklyPrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin any
		wantMax any
		display string
		free    bool
		closed  bool
	}{
		{"single", "$350", 350, 350, "$350", false, false},
		{"range", "$200-400", 200, 400, "$200-$400", false, false},
		{"range both signs", "$200 - $400/week", 200, 400, "$200-$400", false, false},
		{"commas", "$1,250", 1250, 1250, "$1250", false, false},
		{"decimal rounds", "$299.50", 300, 300, "$300", false, false},
		{"free", "FREE for residents", nil, nil, "Free", true, false},
		{"tbd", "TBD", nil, nil, "TBD", false, false},
		{"na", "N/A", nil, nil, "TBD", false, false},
		{"empty", "", nil, nil, "TBD", false, false},
		{"closed", "PERMANENTLY CLOSED", nil, nil, "TBD", false, true},
		{"closed is case-sensitive", "closed mondays $300", 300, 300, "$300", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseWeeklyPrice(tt.input)
			if intOrNil(got.MinPrice) != tt.wantMin || intOrNil(got.MaxPrice) != tt.wantMax {
				t.Errorf("prices = %v-%v, want %v-%v", intOrNil(got.MinPrice), intOrNil(got.MaxPrice), tt.wantMin, tt.wantMax)
			}
			if got.Display != tt.display {
				t.Errorf("Display = %q, want %q", got.Display, tt.display)
			}
			if got.Free != tt.free {
				t.Errorf("Free = %v, want %v", got.Free, tt.free)
			}
			if got.Closed != tt.closed {
				t.Errorf("Closed = %v, want %v", got.Closed, tt.closed)
			}
		})
	}
}

func TestParseWeeklyPriceOrdering(t *testing.T) {
	inputs := []string{"$400-$200", "$5 - $5000", "weekly 120, daily 30", "$0"}
	for _, in := range inputs {
		got := ParseWeeklyPrice(in)
		if got.MinPrice == nil || got.MaxPrice == nil {
			t.Fatalf("ParseWeeklyPrice(%q) lost its numbers", in)
		}
		if *got.MinPrice > *got.MaxPrice {
			t.Errorf("ParseWeeklyPrice(%q): min %d > max %d", in, *got.MinPrice, *got.MaxPrice)
		}
	}
}

func TestParseAgeRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin any
		wantMax any
	}{
		{"range", "Ages 5-12", 5, 12},
		{"single", "Age 7", 7, 7},
		{"open ended plus", "8+", 8, nil},
		{"open ended words", "Ages 10 and up", 10, nil},
		{"grades", "Grades 1-6", 6, 11},
		{"kindergarten", "K-5", 5, 10},
		{"transitional kindergarten", "TK-2", 5, 7},
		{"grades from kindergarten", "Grades K-5", 5, 10},
		{"grades from transitional kindergarten", "grades TK to 2nd", 5, 7},
		{"ordinal grades", "Grades 1st - 6th", 6, 11},
		{"single grade", "Grade 3", 8, 8},
		{"open ended grade", "Grades 3+", 8, nil},
		{"ages win over entering grades", "Ages 6-12 (entering grades 1-7)", 6, 12},
		{"ages win over kindergarten grades", "Ages 5-12, grades K-6", 5, 12},
		{"implausible discarded", "Ages 6-12 (since 1998)", 6, 12},
		{"nothing", "All ages welcome", nil, nil},
		{"empty", "", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAgeRange(tt.input)
			if intOrNil(got.MinAge) != tt.wantMin || intOrNil(got.MaxAge) != tt.wantMax {
				t.Errorf("ParseAgeRange(%q) = %v-%v, want %v-%v",
					tt.input, intOrNil(got.MinAge), intOrNil(got.MaxAge), tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name        string
		campName    string
		description string
		want        models.Category
	}{
		{"surf", "Junior Surf Week", "", models.CategoryBeachSurf},
		{"beach beats art", "Beach Art Camp", "", models.CategoryBeachSurf},
		{"art", "Young Painters", "Painting and drawing all week", models.CategoryArt},
		{"stem", "Robot Lab", "Intro to robotics and coding", models.CategorySTEM},
		{"performing arts", "Summer Stage", "Kids put on a drama production", models.CategoryTheater},
		{"dance", "Ballet Basics", "", models.CategoryDance},
		{"sports", "Soccer Stars", "", models.CategorySports},
		{"nature", "Trail Blazers", "Hiking every day", models.CategoryNature},
		{"cooking", "Little Chefs", "Baking and culinary skills", models.CategoryCooking},
		{"music", "Rock Band Camp", "", models.CategoryMusic},
		{"martial arts is a sport", "Martial Arts Camp", "", models.CategorySports},
		{"performing arts phrase", "Performing Arts Camp", "", models.CategoryTheater},
		{"rock climbing is a sport", "Vertical Kids", "Indoor rock climbing", models.CategorySports},
		{"animals", "Zoo Crew", "", models.CategoryAnimals},
		{"fallback", "Camp Wonder", "Fun for everyone", models.CategoryGeneral},
		{"whole words only", "Startup Camp", "Smart kids", models.CategoryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferCategory(tt.campName, tt.description); got != tt.want {
				t.Errorf("InferCategory(%q, %q) = %q, want %q", tt.campName, tt.description, got, tt.want)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := map[string]models.Category{
		"Beach/Surf":      models.CategoryBeachSurf,
		"beach / surf":    models.CategoryBeachSurf,
		"Arts & Crafts":   models.CategoryArt,
		"STEM":            models.CategorySTEM,
		"Performing Arts": models.CategoryTheater,
		"Théâtre":         models.CategoryTheater,
		"Nature/Outdoor":  models.CategoryNature,
		"sleepaway":       models.CategoryOvernight,
		"":                models.CategoryGeneral,
		"Underwater Chess": models.CategoryGeneral,
	}
	for input, want := range tests {
		if got := ParseCategory(input); got != want {
			t.Errorf("ParseCategory(%q) = %q, want %q", input, got, want)
		}
	}

	if _, ok := LookupCategory("Underwater Chess"); ok {
		t.Error("LookupCategory should report unknown labels")
	}
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Arts & Crafts":   "arts-crafts",
		"Science/STEM":    "science-stem",
		"  Multi-Activity": "multi-activity",
		"Théâtre":         "theatre",
	}
	for input, want := range tests {
		if got := Slugify(input); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestExtractActivities(t *testing.T) {
	camp := models.Camp{
		Activities:  []string{"Surfing", "  Boogie   Boarding "},
		Description: "Surfing, swimming and beach games. Artistic kids welcome.",
	}
	got := ExtractActivities(&camp)
	want := []string{"beach", "boogie boarding", "surfing", "swimming"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractActivities() = %v, want %v", got, want)
	}
}

func TestCampNormalization(t *testing.T) {
	raw := models.Camp{
		ID:        " c1 ",
		Name:      "Ocean Explorers",
		PriceText: "$200-400",
		AgesText:  "Ages 6-11",
	}
	got := Camp(raw)

	if got.ID != "c1" {
		t.Errorf("ID = %q, want trimmed", got.ID)
	}
	if intOrNil(got.MinPrice) != 200 || intOrNil(got.MaxPrice) != 400 {
		t.Errorf("price = %v-%v, want 200-400", intOrNil(got.MinPrice), intOrNil(got.MaxPrice))
	}
	if intOrNil(got.MinAge) != 6 || intOrNil(got.MaxAge) != 11 {
		t.Errorf("ages = %v-%v, want 6-11", intOrNil(got.MinAge), intOrNil(got.MaxAge))
	}
	if got.Category != models.CategoryBeachSurf {
		t.Errorf("Category = %q, want inferred Beach/Surf", got.Category)
	}
	if raw.MinPrice != nil {
		t.Error("input must not be modified")
	}

	again := Camp(got)
	if !reflect.DeepEqual(again, got) {
		t.Errorf("normalizing a canonical record changed it:\n got %+v\nwant %+v", again, got)
	}

	closed := Camp(models.Camp{ID: "c2", PriceText: "PERMANENTLY CLOSED"})
	if !closed.Closed {
		t.Error("closed sentinel should mark the camp closed")
	}
}

func TestPriceDisplay(t *testing.T) {
	tests := []struct {
		camp models.Camp
		want string
	}{
		{models.Camp{Free: true}, "Free"},
		{models.Camp{MinPrice: models.Int(300), MaxPrice: models.Int(300)}, "$300"},
		{models.Camp{MinPrice: models.Int(200), MaxPrice: models.Int(400)}, "$200-$400"},
		{models.Camp{}, "TBD"},
	}
	for _, tt := range tests {
		if got := PriceDisplay(&tt.camp); got != tt.want {
			t.Errorf("PriceDisplay() = %q, want %q", got, tt.want)
		}
	}
}
