// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/campwise/internal/models"
	"github.com/tomtom215/campwise/internal/normalize"
	"github.com/tomtom215/campwise/internal/recommend"
)

// prepareSnapshot canonicalizes the catalog and family of a request in
// place. On failure it writes the error response and returns false.
func (h *Handler) prepareSnapshot(ctx context.Context, w http.ResponseWriter, r *http.Request, catalog *[]models.Camp, family *models.Family) bool {
	camps, err := h.canonicalCatalog(ctx, *catalog)
	if err != nil {
		respondEngineError(w, r, err)
		return false
	}
	*catalog = camps
	if family != nil {
		canonicalizeFamily(family)
	}
	return true
}

// planningContext decodes, canonicalizes and validates a PlanningRequest
// and resolves it into a scoring context.
func (h *Handler) planningContext(ctx context.Context, w http.ResponseWriter, r *http.Request) (recommend.RequestContext, bool) {
	var req PlanningRequest
	if !h.decodeJSON(w, r, &req) {
		return recommend.RequestContext{}, false
	}
	if !h.prepareSnapshot(ctx, w, r, &req.Catalog, &req.Family) || !validateRequest(w, r, &req) {
		return recommend.RequestContext{}, false
	}

	rc, err := h.requestContext(req.Catalog, &req.Family, req.TargetChildID, req.WeekNumber, req.Popularity, req.Limit)
	if err != nil {
		respondEngineError(w, r, err)
		return recommend.RequestContext{}, false
	}
	return rc, true
}

// Affinity handles POST /api/v1/affinity
// Returns the family's category affinity counts.
func (h *Handler) Affinity(w http.ResponseWriter, r *http.Request) {
	var req AffinityRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	if !h.prepareSnapshot(ctx, w, r, &req.Catalog, &req.Family) || !validateRequest(w, r, &req) {
		return
	}

	affinity, err := h.engine.Affinity(ctx, req.Family, req.Catalog)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(affinity)
}

// ScoreCamp handles POST /api/v1/recommendations/score
func (h *Handler) ScoreCamp(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	req.Camp = normalize.Camp(req.Camp)
	if !h.prepareSnapshot(ctx, w, r, &req.Catalog, &req.Family) || !validateRequest(w, r, &req) {
		return
	}

	rc, err := h.requestContext(req.Catalog, &req.Family, req.TargetChildID, req.WeekNumber, req.Popularity, 0)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	scored, err := h.engine.ScoreCamp(ctx, req.Camp, rc)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(scored)
}

// Recommendations handles POST /api/v1/recommendations
// Returns the top-N camps for the target child, best first.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r)
	defer cancel()

	rc, ok := h.planningContext(ctx, w, r)
	if !ok {
		return
	}

	results, err := h.engine.Recommend(ctx, rc)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	NewResponseWriter(w, r).SuccessList(results, len(results))
}

// SimilarCamps handles POST /api/v1/recommendations/similar
func (h *Handler) SimilarCamps(w http.ResponseWriter, r *http.Request) {
	var req SimilarRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	if !h.prepareSnapshot(ctx, w, r, &req.Catalog, nil) || !validateRequest(w, r, &req) {
		return
	}

	results, err := h.engine.Similar(ctx, req.CampID, req.Catalog, req.Limit)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	NewResponseWriter(w, r).SuccessList(results, len(results))
}

// GapSuggestions handles POST /api/v1/recommendations/gaps
// Returns, per child, ranked camps for every uncovered week.
func (h *Handler) GapSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r)
	defer cancel()

	rc, ok := h.planningContext(ctx, w, r)
	if !ok {
		return
	}

	suggestions, err := h.engine.GapSuggestions(ctx, rc)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(suggestions)
}

// PopularCamps handles POST /api/v1/recommendations/popular
func (h *Handler) PopularCamps(w http.ResponseWriter, r *http.Request) {
	var req PopularRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	if !h.prepareSnapshot(ctx, w, r, &req.Catalog, nil) || !validateRequest(w, r, &req) {
		return
	}

	results, err := h.engine.PopularCamps(ctx, req.Catalog, req.Popularity, req.Limit)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	NewResponseWriter(w, r).SuccessList(results, len(results))
}

// Homepage handles POST /api/v1/homepage
// Returns the sections for the family's planning state.
func (h *Handler) Homepage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r)
	defer cancel()

	rc, ok := h.planningContext(ctx, w, r)
	if !ok {
		return
	}

	home, err := h.engine.ComposeHomepage(ctx, rc)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(home)
}

// Weights handles GET /api/v1/weights
func (h *Handler) Weights(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.engine.Weights())
}
