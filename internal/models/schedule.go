// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package models

import "strings"

// Status is the lifecycle state of a scheduled entry.
type Status string

// Scheduled entry statuses.
const (
	StatusPlanned    Status = "planned"
	StatusRegistered Status = "registered"
	StatusConfirmed  Status = "confirmed"
	StatusWaitlisted Status = "waitlisted"
	StatusCancelled  Status = "cancelled"
)

// ActiveStatuses are the statuses that occupy a child's week, in reporting order.
var ActiveStatuses = []Status{StatusPlanned, StatusRegistered, StatusConfirmed, StatusWaitlisted}

// ParseStatus canonicalizes a status string. Unknown or empty values
// are treated as planned.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "registered":
		return StatusRegistered
	case "confirmed":
		return StatusConfirmed
	case "waitlisted", "waitlist":
		return StatusWaitlisted
	case "cancelled", "canceled":
		return StatusCancelled
	default:
		return StatusPlanned
	}
}

// Valid reports whether s is one of the known statuses (before canonicalization).
func (s Status) Valid() bool {
	switch s {
	case StatusPlanned, StatusRegistered, StatusConfirmed, StatusWaitlisted, StatusCancelled:
		return true
	}
	return false
}

// ScheduledEntry is one child's booking of one camp over a date range.
type ScheduledEntry struct {
	ID        string `json:"id"`
	CampID    string `json:"camp_id" validate:"required"`
	ChildID   string `json:"child_id" validate:"required"`
	StartDate Date   `json:"start_date"`
	EndDate   Date   `json:"end_date"`
	Price     *int   `json:"price,omitempty" validate:"omitempty,gte=0"`
	Status    Status `json:"status,omitempty" validate:"omitempty,status"`
}

// CanonicalStatus returns the entry's status with unknown values mapped to planned.
func (e *ScheduledEntry) CanonicalStatus() Status { return ParseStatus(string(e.Status)) }

// Active reports whether the entry has not been cancelled.
func (e *ScheduledEntry) Active() bool { return e.CanonicalStatus() != StatusCancelled }

// Cost returns the entry's price, or zero when it is unknown.
func (e *ScheduledEntry) Cost() int {
	if e.Price == nil {
		return 0
	}
	return *e.Price
}

// Dated reports whether the entry has a usable, ordered date range.
func (e *ScheduledEntry) Dated() bool {
	return !e.StartDate.IsZero() && !e.EndDate.IsZero() && !e.EndDate.Before(e.StartDate)
}

// Overlap returns the intersection of two entries' date ranges.
// ok is false when either range is unusable or they do not intersect.
func (e *ScheduledEntry) Overlap(o *ScheduledEntry) (start, end Date, ok bool) {
	if !e.Dated() || !o.Dated() {
		return Date{}, Date{}, false
	}
	start = MaxDate(e.StartDate, o.StartDate)
	end = MinDate(e.EndDate, o.EndDate)
	if start.After(end) {
		return Date{}, Date{}, false
	}
	return start, end, true
}
