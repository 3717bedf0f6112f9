// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package api

import (
	"github.com/tomtom215/campwise/internal/models"
)

// TextRequest carries a single free-text field for the price and age parsers.
type TextRequest struct {
	Text string `json:"text" validate:"max=1024"`
}

// CategoryRequest is resolved as an explicit label when Label is set,
// otherwise inferred from Name and Description.
type CategoryRequest struct {
	Label       string `json:"label,omitempty" validate:"max=256"`
	Name        string `json:"name,omitempty" validate:"max=256"`
	Description string `json:"description,omitempty" validate:"max=16384"`
}

// ActivitiesRequest carries the fields the activity extractor reads.
type ActivitiesRequest struct {
	Activities  []string `json:"activities,omitempty" validate:"max=200,dive,max=128"`
	Description string   `json:"description,omitempty" validate:"max=16384"`
}

// CatalogRequest carries raw listings to canonicalize.
type CatalogRequest struct {
	Camps []models.Camp `json:"camps" validate:"required,max=5000,dive"`
}

// WeeksRequest holds the query parameters of the weeks endpoint. Both
// bounds are required together; neither returns the configured season.
type WeeksRequest struct {
	Start string `json:"start" validate:"required_with=End,omitempty,isodate"`
	End   string `json:"end" validate:"required_with=Start,omitempty,isodate"`
}

// FamilyRequest carries only a family snapshot.
type FamilyRequest struct {
	Family models.Family `json:"family"`
}

// AffinityRequest carries the inputs of the affinity counter.
type AffinityRequest struct {
	Catalog []models.Camp `json:"catalog" validate:"max=5000,dive"`
	Family  models.Family `json:"family"`
}

// PlanningRequest is the common body of the ranking endpoints.
type PlanningRequest struct {
	Catalog []models.Camp `json:"catalog" validate:"max=5000,dive"`
	Family  models.Family `json:"family"`

	// TargetChildID selects the child to plan for; the first child otherwise.
	TargetChildID string `json:"target_child_id,omitempty" validate:"max=128"`

	// WeekNumber selects a week to fill from family.weeks, or from the
	// configured season when the family carries none. Zero means none.
	WeekNumber int `json:"week_number,omitempty" validate:"gte=0,lte=53"`

	Popularity map[string]int `json:"popularity,omitempty" validate:"omitempty,dive,gte=0"`
	Limit      int            `json:"limit,omitempty" validate:"gte=0,lte=1000"`
}

// ScoreRequest scores one camp against a planning context.
type ScoreRequest struct {
	Camp models.Camp `json:"camp"`

	Catalog       []models.Camp  `json:"catalog" validate:"max=5000,dive"`
	Family        models.Family  `json:"family"`
	TargetChildID string         `json:"target_child_id,omitempty" validate:"max=128"`
	WeekNumber    int            `json:"week_number,omitempty" validate:"gte=0,lte=53"`
	Popularity    map[string]int `json:"popularity,omitempty" validate:"omitempty,dive,gte=0"`
}

// SimilarRequest ranks catalog camps by likeness to CampID.
type SimilarRequest struct {
	CampID  string        `json:"camp_id" validate:"required,max=128"`
	Catalog []models.Camp `json:"catalog" validate:"required,max=5000,dive"`
	Limit   int           `json:"limit,omitempty" validate:"gte=0,lte=1000"`
}

// PopularRequest ranks catalog camps by community counts or listing quality.
type PopularRequest struct {
	Catalog    []models.Camp  `json:"catalog" validate:"max=5000,dive"`
	Popularity map[string]int `json:"popularity,omitempty" validate:"omitempty,dive,gte=0"`
	Limit      int            `json:"limit,omitempty" validate:"gte=0,lte=1000"`
}

// AnalyticsRequest carries the inputs of the schedule report. The budget is
// read from family.profile.summer_budget.
type AnalyticsRequest struct {
	Catalog []models.Camp `json:"catalog" validate:"max=5000,dive"`
	Family  models.Family `json:"family"`
}

// ConflictsRequest carries the inputs of the conflict detector.
type ConflictsRequest struct {
	Schedule []models.ScheduledEntry `json:"schedule" validate:"dive"`
	Children []models.Child          `json:"children" validate:"dive"`
}
