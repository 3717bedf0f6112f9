// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package api

import (
	"net/http"
)

// ScheduleAnalytics handles POST /api/v1/schedule/analytics
// Returns coverage, cost and conflicts. Weeks default to the configured
// season; the budget is the family's summer budget.
func (h *Handler) ScheduleAnalytics(w http.ResponseWriter, r *http.Request) {
	var req AnalyticsRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	if !h.prepareSnapshot(ctx, w, r, &req.Catalog, &req.Family) || !validateRequest(w, r, &req) {
		return
	}

	report, err := h.engine.ScheduleAnalytics(ctx, req.Family, req.Catalog)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(report)
}

// ScheduleConflicts handles POST /api/v1/schedule/conflicts
func (h *Handler) ScheduleConflicts(w http.ResponseWriter, r *http.Request) {
	var req ConflictsRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	canonicalizeSchedule(req.Schedule)
	if !validateRequest(w, r, &req) {
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	conflicts, err := h.engine.DetectConflicts(ctx, req.Schedule, req.Children)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	NewResponseWriter(w, r).SuccessList(conflicts, len(conflicts))
}
