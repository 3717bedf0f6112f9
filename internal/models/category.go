// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package models

// Category is one of the canonical camp categories. Comparisons are
// case-exact; free-form labels are canonicalized by the normalize package.
type Category string

// Canonical categories, in enumeration order.
const (
	CategoryBeachSurf     Category = "Beach/Surf"
	CategoryArt           Category = "Art"
	CategorySports        Category = "Sports"
	CategorySTEM          Category = "Science/STEM"
	CategoryMusic         Category = "Music"
	CategoryTheater       Category = "Theater"
	CategoryDance         Category = "Dance"
	CategoryNature        Category = "Nature/Outdoor"
	CategoryCooking       Category = "Cooking"
	CategoryAnimals       Category = "Animals"
	CategoryFaithBased    Category = "Faith-Based"
	CategoryMultiActivity Category = "Multi-Activity"
	CategoryOvernight     Category = "Overnight"
	CategoryEducation     Category = "Education"
	CategoryGeneral       Category = "General"
)

// Categories lists every canonical category in enumeration order.
var Categories = []Category{
	CategoryBeachSurf,
	CategoryArt,
	CategorySports,
	CategorySTEM,
	CategoryMusic,
	CategoryTheater,
	CategoryDance,
	CategoryNature,
	CategoryCooking,
	CategoryAnimals,
	CategoryFaithBased,
	CategoryMultiActivity,
	CategoryOvernight,
	CategoryEducation,
	CategoryGeneral,
}

// Valid reports whether c is exactly one of the canonical categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }
