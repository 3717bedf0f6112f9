// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package normalize

import (
	"regexp"
	"strings"

	"github.com/tomtom215/campwise/internal/models"
)

type categoryRule struct {
	category models.Category
	pattern  *regexp.Regexp
}

func wordPattern(words ...string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// inferenceRules are checked in order; the first match wins. Phrases that
// contain "arts" sit ahead of the Art rule.
var inferenceRules = []categoryRule{
	{models.CategoryBeachSurf, wordPattern("surf", "surfing", "beach", "ocean", "lifeguard", "junior lifeguards", "boogie board", "marine")},
	{models.CategorySports, wordPattern("martial arts")},
	{models.CategoryTheater, wordPattern("performing arts", "theater arts", "theatre arts", "dramatic arts")},
	{models.CategoryArt, wordPattern("art", "arts", "craft", "crafts", "painting", "drawing", "pottery", "ceramics", "sculpture")},
	{models.CategorySTEM, wordPattern("science", "stem", "steam", "coding", "code", "robotics", "engineering", "technology", "lego", "math", "minecraft")},
	{models.CategoryTheater, wordPattern("theater", "theatre", "drama", "acting", "musical theater", "performing arts", "improv")},
	{models.CategoryDance, wordPattern("dance", "dancing", "ballet", "hip hop", "hip-hop", "jazz dance")},
	{models.CategorySports, wordPattern("sport", "sports", "soccer", "basketball", "tennis", "baseball", "volleyball", "skateboarding", "gymnastics", "swim", "swimming", "golf", "martial arts", "karate", "climbing", "rock climbing", "athletic", "athletics")},
	{models.CategoryNature, wordPattern("nature", "outdoor", "outdoors", "hiking", "garden", "gardening", "farm", "wilderness", "camping", "ecology")},
	{models.CategoryCooking, wordPattern("cooking", "culinary", "baking", "chef", "kitchen")},
	{models.CategoryMusic, wordPattern("music", "guitar", "piano", "band", "choir", "singing")},
	{models.CategoryAnimals, wordPattern("animal", "animals", "zoo", "horse", "horses", "equestrian", "pets", "wildlife")},
}

// InferCategory guesses a category from a camp's name and description.
// It is only consulted when a listing did not supply one.
func InferCategory(name, description string) models.Category {
	text := strings.ToLower(name + " " + description)
	for _, rule := range inferenceRules {
		if rule.pattern.MatchString(text) {
			return rule.category
		}
	}
	return models.CategoryGeneral
}

// categoryAliases maps label slugs to canonical categories.
var categoryAliases = map[string]models.Category{
	"beach-surf":      models.CategoryBeachSurf,
	"beach":           models.CategoryBeachSurf,
	"surf":            models.CategoryBeachSurf,
	"surfing":         models.CategoryBeachSurf,
	"ocean":           models.CategoryBeachSurf,
	"water-sports":    models.CategoryBeachSurf,
	"art":             models.CategoryArt,
	"arts":            models.CategoryArt,
	"arts-crafts":     models.CategoryArt,
	"art-craft":       models.CategoryArt,
	"visual-arts":     models.CategoryArt,
	"sports":          models.CategorySports,
	"sport":           models.CategorySports,
	"athletics":       models.CategorySports,
	"science-stem":    models.CategorySTEM,
	"stem":            models.CategorySTEM,
	"steam":           models.CategorySTEM,
	"science":         models.CategorySTEM,
	"technology":      models.CategorySTEM,
	"coding":          models.CategorySTEM,
	"music":           models.CategoryMusic,
	"theater":         models.CategoryTheater,
	"theatre":         models.CategoryTheater,
	"drama":           models.CategoryTheater,
	"performing-arts": models.CategoryTheater,
	"dance":           models.CategoryDance,
	"nature-outdoor":  models.CategoryNature,
	"nature-outdoors": models.CategoryNature,
	"nature":          models.CategoryNature,
	"outdoor":         models.CategoryNature,
	"outdoors":        models.CategoryNature,
	"cooking":         models.CategoryCooking,
	"culinary":        models.CategoryCooking,
	"animals":         models.CategoryAnimals,
	"animal":          models.CategoryAnimals,
	"faith-based":     models.CategoryFaithBased,
	"faith":           models.CategoryFaithBased,
	"religious":       models.CategoryFaithBased,
	"church":          models.CategoryFaithBased,
	"vbs":             models.CategoryFaithBased,
	"multi-activity":  models.CategoryMultiActivity,
	"multi-sport":     models.CategoryMultiActivity,
	"variety":         models.CategoryMultiActivity,
	"overnight":       models.CategoryOvernight,
	"sleepaway":       models.CategoryOvernight,
	"residential":     models.CategoryOvernight,
	"education":       models.CategoryEducation,
	"academic":        models.CategoryEducation,
	"academics":       models.CategoryEducation,
	"tutoring":        models.CategoryEducation,
	"general":         models.CategoryGeneral,
	"day-camp":        models.CategoryGeneral,
}

// ParseCategory canonicalizes a free-form category label.
// Unrecognized or empty labels map to General.
func ParseCategory(label string) models.Category {
	if c := models.Category(strings.TrimSpace(label)); c.Valid() {
		return c
	}
	if c, ok := categoryAliases[Slugify(label)]; ok {
		return c
	}
	return models.CategoryGeneral
}

// LookupCategory is ParseCategory without the General fallback.
func LookupCategory(label string) (models.Category, bool) {
	if c := models.Category(strings.TrimSpace(label)); c.Valid() {
		return c, true
	}
	c, ok := categoryAliases[Slugify(label)]
	return c, ok
}
