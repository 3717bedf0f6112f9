// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package normalize

import (
	"slices"
	"strings"

	"github.com/tomtom215/campwise/internal/models"
)

// ActivityKeywords is the closed vocabulary matched against descriptions.
var ActivityKeywords = []string{
	"surfing", "swimming", "art", "crafts", "science", "coding", "music",
	"dance", "theater", "sports", "soccer", "basketball", "tennis", "hiking",
	"nature", "animals", "cooking", "pottery", "photography", "robotics",
	"engineering", "marine", "ocean", "beach", "skateboarding",
}

var activityPattern = wordPattern(ActivityKeywords...)

// ExtractActivities returns the sorted, de-duplicated activity tokens for a
// camp: its explicit activities plus keyword matches in its description.
func ExtractActivities(camp *models.Camp) []string {
	return ActivityTokens(camp.Activities, camp.Description)
}

// ActivityTokens is ExtractActivities over raw fields.
func ActivityTokens(explicit []string, description string) []string {
	seen := make(map[string]struct{}, len(explicit))
	tokens := make([]string, 0, len(explicit))
	add := func(tok string) {
		tok = Fold(tok)
		if tok == "" {
			return
		}
		if _, dup := seen[tok]; dup {
			return
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}

	for _, a := range explicit {
		add(a)
	}
	for _, m := range activityPattern.FindAllString(strings.ToLower(description), -1) {
		add(m)
	}

	slices.Sort(tokens)
	return tokens
}
