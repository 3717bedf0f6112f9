// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package api

import (
	"net/http"
	"strings"

	"github.com/tomtom215/campwise/internal/models"
	"github.com/tomtom215/campwise/internal/normalize"
)

// CategoryResult is the response of the category endpoint.
type CategoryResult struct {
	Category models.Category `json:"category"`
	// Source is "label" when an explicit label was mapped, "inferred" otherwise.
	Source string `json:"source"`
}

// NormalizePrice handles POST /api/v1/normalize/price
func (h *Handler) NormalizePrice(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if !h.decodeJSON(w, r, &req) || !validateRequest(w, r, &req) {
		return
	}
	NewResponseWriter(w, r).Success(normalize.ParseWeeklyPrice(req.Text))
}

// NormalizeAge handles POST /api/v1/normalize/age
func (h *Handler) NormalizeAge(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if !h.decodeJSON(w, r, &req) || !validateRequest(w, r, &req) {
		return
	}
	NewResponseWriter(w, r).Success(normalize.ParseAgeRange(req.Text))
}

// NormalizeCategory handles POST /api/v1/normalize/category
func (h *Handler) NormalizeCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !h.decodeJSON(w, r, &req) || !validateRequest(w, r, &req) {
		return
	}

	result := CategoryResult{Source: "inferred"}
	if strings.TrimSpace(req.Label) != "" {
		result.Category = normalize.ParseCategory(req.Label)
		result.Source = "label"
	} else {
		result.Category = normalize.InferCategory(req.Name, req.Description)
	}
	NewResponseWriter(w, r).Success(result)
}

// NormalizeActivities handles POST /api/v1/normalize/activities
func (h *Handler) NormalizeActivities(w http.ResponseWriter, r *http.Request) {
	var req ActivitiesRequest
	if !h.decodeJSON(w, r, &req) || !validateRequest(w, r, &req) {
		return
	}
	tokens := normalize.ActivityTokens(req.Activities, req.Description)
	NewResponseWriter(w, r).SuccessList(tokens, len(tokens))
}

// NormalizeCatalog handles POST /api/v1/normalize/catalog
// Raw listings come back canonical: parsed price and age, a closed-vocabulary
// category and folded activities.
func (h *Handler) NormalizeCatalog(w http.ResponseWriter, r *http.Request) {
	var req CatalogRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	camps, err := h.canonicalCatalog(ctx, req.Camps)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	req.Camps = camps
	if !validateRequest(w, r, &req) {
		return
	}
	NewResponseWriter(w, r).SuccessList(camps, len(camps))
}
