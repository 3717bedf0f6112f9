// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package recommend

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/tomtom215/campwise/internal/models"
	"github.com/tomtom215/campwise/internal/normalize"
)

// Similarity weights.
const (
	SimilarCategory       = 40
	SimilarAgeCap         = 20
	SimilarAgePerYear     = 3
	SimilarPrice          = 15
	SimilarActivity       = 8
	SimilarSetting        = 10
	SimilarExtendedCare   = 5
	SimilarTransportation = 5

	// SimilarityThreshold is the score a candidate must exceed to be returned.
	SimilarityThreshold = 20

	// priceTolerance is the relative distance within which prices count as similar.
	priceTolerance = 0.2
	// maxListedActivities caps the activities named in the shared-activity reason.
	maxListedActivities = 2
	// maxSimilarityClauses caps the reasons joined into an explanation.
	maxSimilarityClauses = 3
)

// Similarity scores how alike candidate is to target and returns the reasons.
func Similarity(target, candidate *models.Camp, activityCap int) (int, []string) {
	score := 0
	reasons := []string{}

	if target.Category != "" && target.Category == candidate.Category {
		score += SimilarCategory
		reasons = append(reasons, fmt.Sprintf("Same category: %s", candidate.Category))
	}

	if target.HasAgeInfo() && candidate.HasAgeInfo() {
		tLo, tHi := target.AgeBounds()
		cLo, cHi := candidate.AgeBounds()
		if overlap := min(tHi, cHi) - max(tLo, cLo); overlap > 0 {
			score += min(SimilarAgeCap, overlap*SimilarAgePerYear)
		}
		if tLo == cLo && tHi == cHi {
			reasons = append(reasons, "Same age range")
		}
	}

	if target.MinPrice != nil && candidate.MinPrice != nil {
		t, c := float64(*target.MinPrice), float64(*candidate.MinPrice)
		if math.Abs(c-t) <= priceTolerance*t {
			score += SimilarPrice
			reasons = append(reasons, "Similar pricing")
		}
	}

	if shared := sharedActivities(normalize.ExtractActivities(target), normalize.ExtractActivities(candidate)); len(shared) > 0 {
		n := len(shared)
		if activityCap > 0 {
			n = min(n, activityCap)
		}
		score += n * SimilarActivity
		listed := shared[:min(len(shared), maxListedActivities)]
		reasons = append(reasons, "Both offer "+strings.Join(listed, " and "))
	}

	if ts := target.PrimarySetting(); ts != "" && ts == candidate.PrimarySetting() {
		score += SimilarSetting
	}
	if target.HasExtendedCare() && candidate.HasExtendedCare() {
		score += SimilarExtendedCare
	}
	if target.Transportation && candidate.Transportation {
		score += SimilarTransportation
	}

	return score, reasons
}

// sharedActivities returns the target activities that match a candidate
// activity by substring in either direction.
func sharedActivities(target, candidate []string) []string {
	var shared []string
	for _, a := range target {
		if slices.ContainsFunc(candidate, func(b string) bool {
			return strings.Contains(a, b) || strings.Contains(b, a)
		}) {
			shared = append(shared, a)
		}
	}
	return shared
}

// Similar ranks catalog camps by likeness to target. The target itself and
// ineligible camps are excluded; only candidates above the threshold remain.
func Similar(target *models.Camp, catalog []models.Camp, limit int) []SimilarCamp {
	if limit <= 0 {
		return []SimilarCamp{}
	}

	results := make([]SimilarCamp, 0, len(catalog))
	for i := range catalog {
		c := &catalog[i]
		if c.ID == target.ID || !Eligible(c) {
			continue
		}
		score, reasons := Similarity(target, c, len(catalog))
		if score <= SimilarityThreshold {
			continue
		}
		results = append(results, SimilarCamp{
			Camp:        *c,
			Similarity:  score,
			Reasons:     reasons,
			Explanation: similarityExplanation(reasons),
		})
	}

	slices.SortStableFunc(results, func(a, b SimilarCamp) int {
		return cmp.Compare(b.Similarity, a.Similarity)
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func similarityExplanation(reasons []string) string {
	if len(reasons) == 0 {
		return "Similar camp."
	}
	return strings.Join(reasons[:min(len(reasons), maxSimilarityClauses)], ". ") + "."
}
