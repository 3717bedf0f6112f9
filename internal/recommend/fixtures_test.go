// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package recommend

import (
	"slices"

	"github.com/tomtom215/campwise/internal/calendar"
	"github.com/tomtom215/campwise/internal/models"
)

func child(id string, age int, interests ...string) models.Child {
	return models.Child{ID: id, Name: "Kid " + id, AgeAsOfSummer: models.Int(age), Interests: interests}
}

func camp(id string, cat models.Category, minAge, maxAge, price int) models.Camp {
	return models.Camp{
		ID:       id,
		Name:     "Camp " + id,
		Category: cat,
		MinAge:   models.Int(minAge),
		MaxAge:   models.Int(maxAge),
		MinPrice: models.Int(price),
		MaxPrice: models.Int(price),
	}
}

func entry(id, campID, childID, start, end string) models.ScheduledEntry {
	return models.ScheduledEntry{
		ID:        id,
		CampID:    campID,
		ChildID:   childID,
		StartDate: models.MustParseDate(start),
		EndDate:   models.MustParseDate(end),
		Status:    models.StatusPlanned,
	}
}

// testCatalog is a small, varied catalog used across ranking tests.
func testCatalog() []models.Camp {
	surf := camp("surf", models.CategoryBeachSurf, 7, 14, 350)
	surf.Activities = []string{"surfing", "swimming"}
	surf.ExtendedCare = "Yes"
	surf.Setting = "Outdoor"
	surf.WeeksAvailable = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	art := camp("art", models.CategoryArt, 5, 12, 180)
	art.Description = "Painting, pottery and crafts in a sunny studio."
	art.Setting = "Indoor"
	art.RegistrationStatus = "Open"
	art.WeeksAvailable = []int{1, 3, 5, 7}

	robots := camp("robots", models.CategorySTEM, 8, 13, 420)
	robots.Activities = []string{"robotics", "coding"}
	robots.Setting = "Indoor"

	clay := camp("clay", models.CategoryArt, 6, 12, 260)
	clay.Activities = []string{"pottery", "art"}
	clay.Setting = "Indoor"

	closed := camp("closed", models.CategoryArt, 5, 12, 150)
	closed.Closed = true

	noInfo := models.Camp{ID: "noinfo", Name: "Mystery Camp", Category: models.CategoryGeneral}

	return []models.Camp{surf, art, robots, clay, closed, noInfo}
}

func testFamily() models.Family {
	return models.Family{
		Profile: &models.FamilyProfile{
			PreferredCategories: []models.Category{models.CategoryArt},
			SummerBudget:        models.Int(4000),
		},
		Children: []models.Child{child("k1", 8, "Art"), child("k2", 11, "Beach/Surf")},
		Weeks:    calendar.DefaultSeason(),
	}
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func scoredIDs(recs []ScoredCamp) []string {
	return ids(recs, func(r ScoredCamp) string { return r.Camp.ID })
}

func containsString(list []string, s string) bool { return slices.Contains(list, s) }
