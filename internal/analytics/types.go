// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package analytics

import "github.com/tomtom215/campwise/internal/models"

// ChildCoverage is one child's week coverage.
type ChildCoverage struct {
	ChildID         string        `json:"child_id"`
	ChildName       string        `json:"child_name"`
	CoveredWeeks    int           `json:"covered_weeks"`
	TotalWeeks      int           `json:"total_weeks"`
	CoveragePercent int           `json:"coverage_percent"`
	GapWeeks        []models.Week `json:"gap_weeks"`
}

// Coverage summarizes week coverage for the family.
type Coverage struct {
	Children []ChildCoverage `json:"children"`

	// FamilyPercent is the mean of the per-child percentages, rounded.
	FamilyPercent int `json:"family_percent"`
}

// ChildCost is spending attributed to one child.
type ChildCost struct {
	ChildID    string  `json:"child_id"`
	ChildName  string  `json:"child_name,omitempty"`
	Total      int     `json:"total"`
	Weeks      int     `json:"weeks"`
	AvgPerWeek float64 `json:"avg_per_week"`
}

// WeekCost is spending bucketed by entry start date.
type WeekCost struct {
	StartDate models.Date `json:"start_date"`
	Total     int         `json:"total"`
	Entries   int         `json:"entries"`
}

// StatusBucket counts entries and spending for one status.
type StatusBucket struct {
	Count int `json:"count"`
	Cost  int `json:"cost"`
}

// StatusCost breaks spending down by active status. Cancelled never appears.
type StatusCost struct {
	Planned    StatusBucket `json:"planned"`
	Registered StatusBucket `json:"registered"`
	Confirmed  StatusBucket `json:"confirmed"`
	Waitlisted StatusBucket `json:"waitlisted"`
}

// Bucket returns the bucket for an active status.
func (s *StatusCost) Bucket(status models.Status) *StatusBucket {
	switch status {
	case models.StatusRegistered:
		return &s.Registered
	case models.StatusConfirmed:
		return &s.Confirmed
	case models.StatusWaitlisted:
		return &s.Waitlisted
	case models.StatusPlanned:
		return &s.Planned
	}
	return nil
}

// Sum returns the combined cost of all buckets.
func (s *StatusCost) Sum() int {
	return s.Planned.Cost + s.Registered.Cost + s.Confirmed.Cost + s.Waitlisted.Cost
}

// Budget compares spending with the family's summer budget.
type Budget struct {
	Budget      int     `json:"budget"`
	Remaining   int     `json:"remaining"`
	PercentUsed float64 `json:"percent_used"`
	OverBudget  bool    `json:"over_budget"`
}

// Cost is the family's spending breakdown.
type Cost struct {
	Total    int         `json:"total"`
	ByChild  []ChildCost `json:"by_child"`
	ByWeek   []WeekCost  `json:"by_week"`
	ByStatus StatusCost  `json:"by_status"`

	// Budget is nil when no positive summer budget is set.
	Budget *Budget `json:"budget,omitempty"`
}

// ConflictEntry identifies one side of a conflict.
type ConflictEntry struct {
	EntryID  string `json:"entry_id"`
	CampID   string `json:"camp_id"`
	CampName string `json:"camp_name,omitempty"`
}

// Conflict is a pair of overlapping active entries for the same child.
type Conflict struct {
	ChildID      string        `json:"child_id"`
	ChildName    string        `json:"child_name,omitempty"`
	CampA        ConflictEntry `json:"camp_a"`
	CampB        ConflictEntry `json:"camp_b"`
	OverlapStart models.Date   `json:"overlap_start"`
	OverlapEnd   models.Date   `json:"overlap_end"`
}

// Analytics is the combined schedule report.
type Analytics struct {
	Coverage  Coverage   `json:"coverage"`
	Cost      Cost       `json:"cost"`
	Conflicts []Conflict `json:"conflicts"`
}
