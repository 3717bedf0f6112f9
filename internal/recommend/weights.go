// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package recommend

// Scoring weights. These values are part of the engine's public contract:
// tests and API consumers reference them by name.
const (
	// Primary signals.
	AgeMatch         = 40
	CategoryInterest = 35
	BudgetFit        = 30

	// Secondary signals.
	FavoritedCategory = 20 // cap on the affinity contribution
	ScheduledCategory = 15 // published for reference; affinity already covers scheduled categories
	SimilarFamilies   = 15

	// Features.
	HasExtendedCare  = 10
	WorkScheduleFit  = 12
	FoodIncluded     = 8
	SiblingDiscount  = 8
	Transportation   = 6
	RegistrationOpen = 8
	GoodRating       = 10

	// Data quality, a proxy for actively maintained listings.
	HasImage       = 5
	HasDescription = 5
	HasContact     = 4
	HasWebsite     = 4

	// Gap filling.
	FillsGap = 25

	// Penalties.
	AlreadyScheduled = -100
	TooExpensive     = -20
	AgeMismatch      = -50
)

// Scoring thresholds and per-unit contributions.
const (
	// InterestMatch is added once per child interest found among a camp's activities.
	InterestMatch = 10
	// affinityUnit is multiplied by the category affinity before capping.
	affinityUnit = 5
	// affinityBoostThreshold is the affinity contribution that earns a boost label.
	affinityBoostThreshold = 10
	// popularityThreshold is the minimum family count for SimilarFamilies.
	popularityThreshold = 3
	// plannableWeeks divides the summer budget into a weekly allowance.
	plannableWeeks = 10
	// expensiveFactor is how far over the weekly allowance a camp must be to be penalized.
	expensiveFactor = 1.5
	// goodRatingThreshold is the minimum rating for GoodRating.
	goodRatingThreshold = 4.0
	// meaningfulDescription is the description length (in runes) that earns HasDescription.
	meaningfulDescription = 100
)

// Weights is the weight table as a record, for introspection endpoints.
type Weights struct {
	AgeMatch          int `json:"age_match"`
	CategoryInterest  int `json:"category_interest"`
	BudgetFit         int `json:"budget_fit"`
	FavoritedCategory int `json:"favorited_category"`
	ScheduledCategory int `json:"scheduled_category"`
	SimilarFamilies   int `json:"similar_families"`
	HasExtendedCare   int `json:"has_extended_care"`
	WorkScheduleFit   int `json:"work_schedule_fit"`
	FoodIncluded      int `json:"food_included"`
	SiblingDiscount   int `json:"sibling_discount"`
	Transportation    int `json:"transportation"`
	RegistrationOpen  int `json:"registration_open"`
	GoodRating        int `json:"good_rating"`
	HasImage          int `json:"has_image"`
	HasDescription    int `json:"has_description"`
	HasContact        int `json:"has_contact"`
	HasWebsite        int `json:"has_website"`
	FillsGap          int `json:"fills_gap"`
	InterestMatch     int `json:"interest_match"`
	AlreadyScheduled  int `json:"already_scheduled"`
	TooExpensive      int `json:"too_expensive"`
	AgeMismatch       int `json:"age_mismatch"`
}

// WeightTable returns the scoring weights as a record.
func WeightTable() Weights {
	return Weights{
		AgeMatch:          AgeMatch,
		CategoryInterest:  CategoryInterest,
		BudgetFit:         BudgetFit,
		FavoritedCategory: FavoritedCategory,
		ScheduledCategory: ScheduledCategory,
		SimilarFamilies:   SimilarFamilies,
		HasExtendedCare:   HasExtendedCare,
		WorkScheduleFit:   WorkScheduleFit,
		FoodIncluded:      FoodIncluded,
		SiblingDiscount:   SiblingDiscount,
		Transportation:    Transportation,
		RegistrationOpen:  RegistrationOpen,
		GoodRating:        GoodRating,
		HasImage:          HasImage,
		HasDescription:    HasDescription,
		HasContact:        HasContact,
		HasWebsite:        HasWebsite,
		FillsGap:          FillsGap,
		InterestMatch:     InterestMatch,
		AlreadyScheduled:  AlreadyScheduled,
		TooExpensive:      TooExpensive,
		AgeMismatch:       AgeMismatch,
	}
}

// ToMap returns the weights keyed by their wire names.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) ToMap() map[string]int {
	return map[string]int{
		"age_match":          w.AgeMatch,
		"category_interest":  w.CategoryInterest,
		"budget_fit":         w.BudgetFit,
		"favorited_category": w.FavoritedCategory,
		"scheduled_category": w.ScheduledCategory,
		"similar_families":   w.SimilarFamilies,
		"has_extended_care":  w.HasExtendedCare,
		"work_schedule_fit":  w.WorkScheduleFit,
		"food_included":      w.FoodIncluded,
		"sibling_discount":   w.SiblingDiscount,
		"transportation":     w.Transportation,
		"registration_open":  w.RegistrationOpen,
		"good_rating":        w.GoodRating,
		"has_image":          w.HasImage,
		"has_description":    w.HasDescription,
		"has_contact":        w.HasContact,
		"has_website":        w.HasWebsite,
		"fills_gap":          w.FillsGap,
		"interest_match":     w.InterestMatch,
		"already_scheduled":  w.AlreadyScheduled,
		"too_expensive":      w.TooExpensive,
		"age_mismatch":       w.AgeMismatch,
	}
}
