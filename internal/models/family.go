// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package models

// Child is a member of the family being planned for.
type Child struct {
	ID            string   `json:"id" validate:"required,max=128"`
	Name          string   `json:"name" validate:"max=128"`
	Color         string   `json:"color,omitempty"`
	Avatar        string   `json:"avatar,omitempty"`
	AgeAsOfSummer *int     `json:"age_as_of_summer,omitempty" validate:"omitempty,gte=3,lte=18"`
	Interests     []string `json:"interests,omitempty"`
	BirthDate     *Date    `json:"birth_date,omitempty"`
}

// FamilyProfile holds household-level preferences.
type FamilyProfile struct {
	PreferredCategories []Category `json:"preferred_categories,omitempty" validate:"dive,category"`
	// SummerBudget is the whole-summer budget in dollars across all children.
	SummerBudget        *int   `json:"summer_budget,omitempty" validate:"omitempty,gte=0"`
	WorkHoursStart      string `json:"work_hours_start,omitempty" validate:"omitempty,timeofday"`
	WorkHoursEnd        string `json:"work_hours_end,omitempty" validate:"omitempty,timeofday"`
	OnboardingCompleted bool   `json:"onboarding_completed"`
}

// HasWorkHours reports whether both ends of the work day are set.
func (p *FamilyProfile) HasWorkHours() bool {
	return p != nil && p.WorkHoursStart != "" && p.WorkHoursEnd != ""
}

// Budget returns the summer budget, or zero if unset.
func (p *FamilyProfile) Budget() int {
	if p == nil || p.SummerBudget == nil {
		return 0
	}
	return *p.SummerBudget
}

// Favorite is a saved camp. An empty ChildID means "for anyone".
type Favorite struct {
	CampID  string `json:"camp_id" validate:"required"`
	ChildID string `json:"child_id,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// Week is a Monday-to-Friday planning week.
type Week struct {
	Number    int    `json:"week_number"`
	StartDate Date   `json:"start_date"`
	EndDate   Date   `json:"end_date"`
	Label     string `json:"label"`
}

// Family is the snapshot of user data the engine reasons over.
type Family struct {
	Profile   *FamilyProfile   `json:"profile,omitempty"`
	Children  []Child          `json:"children,omitempty" validate:"dive"`
	Favorites []Favorite       `json:"favorites,omitempty" validate:"dive"`
	Schedule  []ScheduledEntry `json:"schedule,omitempty" validate:"dive"`
	Weeks     []Week           `json:"weeks,omitempty"`
}

// ChildByID looks up a child by identifier.
func (f *Family) ChildByID(id string) (Child, bool) {
	for _, c := range f.Children {
		if c.ID == id {
			return c, true
		}
	}
	return Child{}, false
}

// HasActiveSchedule reports whether any non-cancelled entry exists.
func (f *Family) HasActiveSchedule() bool {
	for i := range f.Schedule {
		if f.Schedule[i].Active() {
			return true
		}
	}
	return false
}
