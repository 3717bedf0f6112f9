// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package recommend

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tomtom215/campwise/internal/models"
	"github.com/tomtom215/campwise/internal/normalize"
)

// FallbackReason is the primary reason when nothing specific applies.
const FallbackReason = "Summer camp option"

// maxExtraClauses is how many clauses follow the primary reason in an explanation.
const maxExtraClauses = 2

// Reason, boost and penalty labels.
const (
	reasonWithinBudget  = "Within your weekly budget"
	boostSavedSimilar   = "Similar to camps you've saved"
	boostExtendedCare   = "Extended care available"
	boostWorkSchedule   = "Fits your work schedule"
	boostFoodIncluded   = "Lunch included"
	boostSibling        = "Sibling discount"
	boostTransportation = "Transportation available"
	boostRegistration   = "Registration open"
	boostRating         = "Highly rated"
	penaltyAge          = "Age range mismatch"
	penaltyBudget       = "Exceeds budget"
	penaltyScheduled    = "Already scheduled"
)

// scorer holds the per-request inputs derived once from a RequestContext
// and reused across every camp in the catalog.
type scorer struct {
	child      models.Child
	hasChild   bool
	interests  [][]string
	preferred  map[models.Category]struct{}
	weekBudget float64
	hasBudget  bool
	affinity   map[models.Category]int
	multiChild bool
	workHours  bool
	scheduled  map[string]struct{}
	popularity map[string]int
	weekToFill *models.Week
}

func newScorer(rc RequestContext) *scorer { //nolint:gocritic // RequestContext is passed by value throughout
	s := &scorer{
		preferred:  make(map[models.Category]struct{}),
		scheduled:  make(map[string]struct{}),
		popularity: rc.Popularity,
		weekToFill: rc.WeekToFill,
		multiChild: len(rc.Family.Children) > 1,
		affinity:   CategoryAffinity(rc.Family.Favorites, rc.Family.Schedule, rc.Catalog),
	}

	s.child, s.hasChild = rc.ResolveChild()
	if s.hasChild {
		for _, interest := range s.child.Interests {
			if toks := interestTokens(interest); len(toks) > 0 {
				s.interests = append(s.interests, toks)
			}
		}
		for i := range rc.Family.Schedule {
			e := &rc.Family.Schedule[i]
			if e.ChildID == s.child.ID && e.Active() {
				s.scheduled[e.CampID] = struct{}{}
			}
		}
	}

	if p := rc.Family.Profile; p != nil {
		for _, c := range p.PreferredCategories {
			s.preferred[c] = struct{}{}
		}
		if budget := p.Budget(); budget > 0 {
			s.hasBudget = true
			s.weekBudget = float64(budget) / float64(max(1, len(rc.Family.Children))) / plannableWeeks
		}
		s.workHours = p.HasWorkHours()
	}
	return s
}

// interestTokens splits an interest label like "Beach/Surf" into the
// lowercase words matched against activities.
func interestTokens(interest string) []string {
	return strings.FieldsFunc(normalize.Fold(interest), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// ScoreCamp scores a single camp against the request context.
func ScoreCamp(camp *models.Camp, rc RequestContext) ScoredCamp { //nolint:gocritic // RequestContext is passed by value throughout
	return newScorer(rc).score(camp)
}

//nolint:gocyclo // evaluation order is a flat sequence of independent rules
func (s *scorer) score(camp *models.Camp) ScoredCamp {
	var (
		total     int
		reasons   = []string{}
		boosts    = []string{}
		penalties = []string{}
	)

	// Age.
	if s.hasChild && s.child.AgeAsOfSummer != nil {
		age := *s.child.AgeAsOfSummer
		if camp.AcceptsAge(age) {
			total += AgeMatch
			reasons = append(reasons, fmt.Sprintf("Age-appropriate for %d-year-old", age))
		} else {
			total += AgeMismatch
			penalties = append(penalties, penaltyAge)
		}
	}

	// Category interest.
	if _, ok := s.preferred[camp.Category]; ok && camp.Category != "" {
		total += CategoryInterest
		reasons = append(reasons, fmt.Sprintf("Matches your interest in %s", camp.Category))
	}

	// Budget.
	if s.hasBudget && camp.MinPrice != nil {
		price := float64(*camp.MinPrice)
		switch {
		case price <= s.weekBudget:
			total += BudgetFit
			reasons = append(reasons, reasonWithinBudget)
		case price > expensiveFactor*s.weekBudget:
			total += TooExpensive
			penalties = append(penalties, penaltyBudget)
		}
	}

	// Category affinity.
	if n := s.affinity[camp.Category]; n > 0 {
		add := min(n*affinityUnit, FavoritedCategory)
		total += add
		if add >= affinityBoostThreshold {
			boosts = append(boosts, boostSavedSimilar)
		}
	}

	// Child interests vs activities.
	if len(s.interests) > 0 {
		activities := normalize.ExtractActivities(camp)
		for _, toks := range s.interests {
			if match, ok := matchInterest(toks, activities); ok {
				total += InterestMatch
				reasons = append(reasons, fmt.Sprintf("Includes %s", match))
			}
		}
	}

	// Popularity.
	if n := s.popularity[camp.ID]; n >= popularityThreshold {
		total += SimilarFamilies
		boosts = append(boosts, fmt.Sprintf("Popular with %d families", n))
	}

	// Features.
	if camp.HasExtendedCare() {
		total += HasExtendedCare
		boosts = append(boosts, boostExtendedCare)
	}
	if camp.FoodIncluded {
		total += FoodIncluded
		boosts = append(boosts, boostFoodIncluded)
	}
	if s.multiChild && camp.HasSiblingDiscount() {
		total += SiblingDiscount
		boosts = append(boosts, boostSibling)
	}
	if camp.Transportation {
		total += Transportation
		boosts = append(boosts, boostTransportation)
	}
	if camp.Rating != nil && *camp.Rating >= goodRatingThreshold {
		total += GoodRating
		boosts = append(boosts, boostRating)
	}

	// Work schedule. Any listed drop-off and pick-up counts as a fit.
	if s.workHours && strings.TrimSpace(camp.DropOff) != "" && strings.TrimSpace(camp.PickUp) != "" {
		total += WorkScheduleFit
		boosts = append(boosts, boostWorkSchedule)
	}

	// Data quality. Silent: these only nudge ordering.
	if strings.TrimSpace(camp.ImageURL) != "" {
		total += HasImage
	}
	if utf8.RuneCountInString(strings.TrimSpace(camp.Description)) > meaningfulDescription {
		total += HasDescription
	}
	if camp.HasContact() {
		total += HasContact
	}
	if strings.TrimSpace(camp.WebsiteURL) != "" {
		total += HasWebsite
	}

	// Registration.
	if camp.RegistrationOpen() {
		total += RegistrationOpen
		boosts = append(boosts, boostRegistration)
	}

	// Already scheduled. Overrides every positive signal.
	_, alreadyScheduled := s.scheduled[camp.ID]
	if alreadyScheduled {
		total += AlreadyScheduled
		penalties = append(penalties, penaltyScheduled)
	}

	// Gap.
	if s.weekToFill != nil && camp.HasRunData() {
		total += FillsGap
		reasons = append(reasons, fmt.Sprintf("Available for Week %d", s.weekToFill.Number))
	}

	if total < 0 || alreadyScheduled {
		total = 0
	}

	primary, explanation := explain(reasons, boosts)
	return ScoredCamp{
		Camp:          *camp,
		Score:         total,
		Reasons:       reasons,
		Boosts:        boosts,
		Penalties:     penalties,
		PrimaryReason: primary,
		Explanation:   explanation,
	}
}

// matchInterest reports the first interest token found inside an activity.
func matchInterest(tokens, activities []string) (string, bool) {
	for _, tok := range tokens {
		if slices.ContainsFunc(activities, func(a string) bool { return strings.Contains(a, tok) }) {
			return tok, true
		}
	}
	return "", false
}

// explain picks the primary reason and builds the explanation sentence.
func explain(reasons, boosts []string) (primary, explanation string) {
	clauses := make([]string, 0, len(reasons)+len(boosts))
	clauses = append(clauses, reasons...)
	clauses = append(clauses, boosts...)

	if len(clauses) == 0 {
		return FallbackReason, FallbackReason + "."
	}
	primary = clauses[0]
	clauses = clauses[:min(len(clauses), 1+maxExtraClauses)]
	return primary, strings.Join(clauses, ". ") + "."
}
