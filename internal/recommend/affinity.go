// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package recommend

import "github.com/tomtom215/campwise/internal/models"

const (
	favoriteAffinity  = 2
	scheduledAffinity = 1
)

// CategoryAffinity counts how strongly a family leans toward each category.
// Favorites count twice, active schedule entries once. Camp IDs not in the
// catalog are ignored. Categories with no signal have no entry.
func CategoryAffinity(favorites []models.Favorite, schedule []models.ScheduledEntry, catalog []models.Camp) map[models.Category]int {
	categoryOf := make(map[string]models.Category, len(catalog))
	for i := range catalog {
		categoryOf[catalog[i].ID] = catalog[i].Category
	}

	affinity := make(map[models.Category]int)
	for _, f := range favorites {
		if cat, ok := categoryOf[f.CampID]; ok && cat != "" {
			affinity[cat] += favoriteAffinity
		}
	}
	for i := range schedule {
		if !schedule[i].Active() {
			continue
		}
		if cat, ok := categoryOf[schedule[i].CampID]; ok && cat != "" {
			affinity[cat] += scheduledAffinity
		}
	}
	return affinity
}
