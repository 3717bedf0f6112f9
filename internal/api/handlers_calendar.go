// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package api

import (
	"net/http"

	"github.com/tomtom215/campwise/internal/models"
)

// CalendarWeeks handles GET /api/v1/calendar/weeks?start=YYYY-MM-DD&end=YYYY-MM-DD
// Without parameters the configured season is returned.
func (h *Handler) CalendarWeeks(w http.ResponseWriter, r *http.Request) {
	req := WeeksRequest{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}
	if !validateRequest(w, r, &req) {
		return
	}

	// Both already passed the isodate check.
	start, _ := models.ParseDate(req.Start)
	end, _ := models.ParseDate(req.End)
	if end.Before(start) {
		NewResponseWriter(w, r).ValidationError("end must not be before start",
			map[string]string{"start": req.Start, "end": req.End})
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	weeks, err := h.engine.Weeks(ctx, start, end)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	NewResponseWriter(w, r).SuccessList(weeks, len(weeks))
}

// CalendarGaps handles POST /api/v1/calendar/gaps
// Returns each child's uncovered weeks keyed by child ID.
func (h *Handler) CalendarGaps(w http.ResponseWriter, r *http.Request) {
	var req FamilyRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	canonicalizeFamily(&req.Family)
	if !validateRequest(w, r, &req) {
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	gaps, err := h.engine.CoverageGaps(ctx, req.Family)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(gaps)
}
