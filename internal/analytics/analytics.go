// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

// Package analytics computes coverage, cost and conflict reports over a
// family's schedule. Cancelled entries are ignored everywhere.
package analytics

import (
	"math"
	"slices"

	"github.com/tomtom215/campwise/internal/calendar"
	"github.com/tomtom215/campwise/internal/models"
)

// ScheduleAnalytics builds the full report. The catalog is only used to
// name camps in conflicts; budget <= 0 omits the budget block.
func ScheduleAnalytics(schedule []models.ScheduledEntry, children []models.Child, catalog []models.Camp, weeks []models.Week, budget int) Analytics {
	conflicts := DetectConflicts(schedule, children)
	if len(conflicts) > 0 && len(catalog) > 0 {
		names := make(map[string]string, len(catalog))
		for i := range catalog {
			names[catalog[i].ID] = catalog[i].Name
		}
		for i := range conflicts {
			conflicts[i].CampA.CampName = names[conflicts[i].CampA.CampID]
			conflicts[i].CampB.CampName = names[conflicts[i].CampB.CampID]
		}
	}

	return Analytics{
		Coverage:  ComputeCoverage(schedule, children, weeks),
		Cost:      ComputeCost(schedule, children, budget),
		Conflicts: conflicts,
	}
}

// ComputeCoverage reports how many weeks each child has covered.
func ComputeCoverage(schedule []models.ScheduledEntry, children []models.Child, weeks []models.Week) Coverage {
	out := Coverage{Children: make([]ChildCoverage, 0, len(children))}
	sum := 0

	for _, child := range children {
		covered := calendar.CoveredWeeks(child.ID, schedule, weeks)
		gaps := calendar.CoverageGaps(child.ID, schedule, weeks)
		pct := percent(len(covered), len(weeks))
		sum += pct
		out.Children = append(out.Children, ChildCoverage{
			ChildID:         child.ID,
			ChildName:       child.Name,
			CoveredWeeks:    len(covered),
			TotalWeeks:      len(weeks),
			CoveragePercent: pct,
			GapWeeks:        gaps,
		})
	}

	if len(children) > 0 {
		out.FamilyPercent = int(math.Round(float64(sum) / float64(len(children))))
	}
	return out
}

// ComputeCost totals spending by child, week and status.
func ComputeCost(schedule []models.ScheduledEntry, children []models.Child, budget int) Cost {
	active := activeEntries(schedule)
	out := Cost{
		ByChild: make([]ChildCost, 0, len(children)),
		ByWeek:  make([]WeekCost, 0),
	}

	for _, id := range childOrder(active, children) {
		cc := ChildCost{ChildID: id.id, ChildName: id.name}
		starts := make(map[models.Date]struct{})
		for i := range active {
			if active[i].ChildID != id.id {
				continue
			}
			cc.Total += active[i].Cost()
			starts[active[i].StartDate] = struct{}{}
		}
		cc.Weeks = len(starts)
		if cc.Weeks > 0 {
			cc.AvgPerWeek = round2(float64(cc.Total) / float64(cc.Weeks))
		}
		out.ByChild = append(out.ByChild, cc)
	}

	byWeek := make(map[models.Date]*WeekCost)
	for i := range active {
		e := &active[i]
		cost := e.Cost()
		out.Total += cost

		wc, ok := byWeek[e.StartDate]
		if !ok {
			wc = &WeekCost{StartDate: e.StartDate}
			byWeek[e.StartDate] = wc
		}
		wc.Total += cost
		wc.Entries++

		if b := out.ByStatus.Bucket(e.CanonicalStatus()); b != nil {
			b.Count++
			b.Cost += cost
		}
	}
	for _, wc := range byWeek {
		out.ByWeek = append(out.ByWeek, *wc)
	}
	slices.SortFunc(out.ByWeek, func(a, b WeekCost) int { return a.StartDate.Compare(b.StartDate) })

	if budget > 0 {
		used := round2(float64(out.Total) * 100 / float64(budget))
		out.Budget = &Budget{
			Budget:      budget,
			Remaining:   budget - out.Total,
			PercentUsed: used,
			OverBudget:  out.Total > budget,
		}
	}
	return out
}

// DetectConflicts reports each unordered pair of overlapping active entries
// for the same child, once.
func DetectConflicts(schedule []models.ScheduledEntry, children []models.Child) []Conflict {
	active := activeEntries(schedule)
	conflicts := make([]Conflict, 0)

	for _, id := range childOrder(active, children) {
		var mine []*models.ScheduledEntry
		for i := range active {
			if active[i].ChildID == id.id {
				mine = append(mine, &active[i])
			}
		}
		for i := 0; i < len(mine); i++ {
			for j := i + 1; j < len(mine); j++ {
				start, end, ok := mine[i].Overlap(mine[j])
				if !ok {
					continue
				}
				conflicts = append(conflicts, Conflict{
					ChildID:      id.id,
					ChildName:    id.name,
					CampA:        ConflictEntry{EntryID: mine[i].ID, CampID: mine[i].CampID},
					CampB:        ConflictEntry{EntryID: mine[j].ID, CampID: mine[j].CampID},
					OverlapStart: start,
					OverlapEnd:   end,
				})
			}
		}
	}
	return conflicts
}

type childRef struct {
	id   string
	name string
}

// childOrder lists the known children first, then any child IDs that only
// appear in the schedule, in order of first appearance.
func childOrder(active []models.ScheduledEntry, children []models.Child) []childRef {
	seen := make(map[string]struct{}, len(children))
	out := make([]childRef, 0, len(children))
	for _, c := range children {
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, childRef{id: c.ID, name: c.Name})
	}
	for i := range active {
		id := active[i].ChildID
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, childRef{id: id})
	}
	return out
}

func activeEntries(schedule []models.ScheduledEntry) []models.ScheduledEntry {
	out := make([]models.ScheduledEntry, 0, len(schedule))
	for i := range schedule {
		if schedule[i].Active() {
			out = append(out, schedule[i])
		}
	}
	return out
}

func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(whole)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
