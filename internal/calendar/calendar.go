// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

// Package calendar builds the Monday-to-Friday planning weeks of a summer
// season and answers coverage questions against a family's schedule.
//
// All comparisons are on calendar dates with inclusive bounds.
package calendar

import (
	"fmt"
	"time"

	"github.com/tomtom215/campwise/internal/models"
)

const (
	// DefaultSeasonWeeks is the length of the default season.
	DefaultSeasonWeeks = 10
	// schoolDays is the number of days in a planning week (Mon-Fri).
	schoolDays = 5
)

// DefaultSeasonStart is the first Monday of the default 2026 season.
var DefaultSeasonStart = models.NewDate(2026, time.June, 8)

// DefaultSeasonEnd is the last Friday of the default season.
var DefaultSeasonEnd = DefaultSeasonStart.AddDays(7*(DefaultSeasonWeeks-1) + schoolDays - 1)

// DefaultSeason returns the ten weeks beginning Monday June 8, 2026.
func DefaultSeason() []models.Week {
	return BuildWeeks(DefaultSeasonStart, DefaultSeasonEnd)
}

// BuildWeeks returns the numbered weeks covering [start, end]. The first week
// begins on the Monday on or before start. An unusable range yields no weeks.
func BuildWeeks(start, end models.Date) []models.Week {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return []models.Week{}
	}

	monday := MondayOf(start)
	weeks := make([]models.Week, 0, 12)
	for n := 1; !monday.After(end); n++ {
		friday := monday.AddDays(schoolDays - 1)
		weeks = append(weeks, models.Week{
			Number:    n,
			StartDate: monday,
			EndDate:   friday,
			Label:     WeekLabel(n, monday, friday),
		})
		monday = monday.AddDays(7)
	}
	return weeks
}

// MondayOf returns the Monday of the week containing d.
func MondayOf(d models.Date) models.Date {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

// WeekLabel renders a week as "Week 1 (Jun 8 - Jun 12)".
func WeekLabel(n int, start, end models.Date) string {
	const layout = "Jan 2"
	return fmt.Sprintf("Week %d (%s - %s)", n, start.Time().Format(layout), end.Time().Format(layout))
}

// Overlaps reports whether the inclusive ranges [aStart, aEnd] and
// [bStart, bEnd] share at least one day.
func Overlaps(aStart, aEnd, bStart, bEnd models.Date) bool {
	if aStart.IsZero() || aEnd.IsZero() || bStart.IsZero() || bEnd.IsZero() {
		return false
	}
	if aEnd.Before(aStart) || bEnd.Before(bStart) {
		return false
	}
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// CoversWeek reports whether the entry's dates overlap the week.
func CoversWeek(entry *models.ScheduledEntry, week *models.Week) bool {
	return Overlaps(entry.StartDate, entry.EndDate, week.StartDate, week.EndDate)
}

// WeekForDate returns the week containing d, if any.
func WeekForDate(d models.Date, weeks []models.Week) (models.Week, bool) {
	for _, w := range weeks {
		if !d.Before(w.StartDate) && !d.After(w.EndDate) {
			return w, true
		}
	}
	return models.Week{}, false
}

// WeekByNumber returns the week with the given number, if any.
func WeekByNumber(n int, weeks []models.Week) (models.Week, bool) {
	for _, w := range weeks {
		if w.Number == n {
			return w, true
		}
	}
	return models.Week{}, false
}

// CoveredWeeks returns the weeks overlapped by at least one active entry for the child.
func CoveredWeeks(childID string, schedule []models.ScheduledEntry, weeks []models.Week) []models.Week {
	covered, _ := partition(childID, schedule, weeks)
	return covered
}

// CoverageGaps returns the weeks with no active entry for the child,
// in season order.
func CoverageGaps(childID string, schedule []models.ScheduledEntry, weeks []models.Week) []models.Week {
	_, gaps := partition(childID, schedule, weeks)
	return gaps
}

func partition(childID string, schedule []models.ScheduledEntry, weeks []models.Week) (covered, gaps []models.Week) {
	covered = make([]models.Week, 0, len(weeks))
	gaps = make([]models.Week, 0, len(weeks))
	for i := range weeks {
		if weekCovered(childID, schedule, &weeks[i]) {
			covered = append(covered, weeks[i])
		} else {
			gaps = append(gaps, weeks[i])
		}
	}
	return covered, gaps
}

func weekCovered(childID string, schedule []models.ScheduledEntry, week *models.Week) bool {
	for i := range schedule {
		e := &schedule[i]
		if e.ChildID != childID || !e.Active() {
			continue
		}
		if CoversWeek(e, week) {
			return true
		}
	}
	return false
}
