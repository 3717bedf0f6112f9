// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/campwise/internal/calendar"
	"github.com/tomtom215/campwise/internal/logging"
	"github.com/tomtom215/campwise/internal/metrics"
	"github.com/tomtom215/campwise/internal/middleware"
	"github.com/tomtom215/campwise/internal/models"
	"github.com/tomtom215/campwise/internal/normalize"
	"github.com/tomtom215/campwise/internal/planner"
	"github.com/tomtom215/campwise/internal/recommend"
	"github.com/tomtom215/campwise/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// decodeJSON reads a size-bounded JSON body into dst. On failure it writes
// the error response and returns false.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	err := json.NewDecoder(body).Decode(dst)
	if err == nil {
		return true
	}

	metrics.RecordValidationFailure(middleware.RoutePattern(r))
	rw := NewResponseWriter(w, r)

	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		rw.RequestTooLarge(h.maxBodyBytes)
	case errors.Is(err, io.EOF):
		rw.BadRequest(ErrEmptyBody.Error())
	default:
		logging.Ctx(r.Context()).Debug().Str("error", sanitizeLogValue(err.Error())).Msg("Malformed request body")
		rw.BadRequest("Invalid JSON body")
	}
	return false
}

// validateRequest validates v with go-playground/validator. On failure it
// writes a VALIDATION_FAILED response and returns false.
func validateRequest(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	verr := validation.ValidateStruct(v)
	if verr == nil {
		return true
	}

	metrics.RecordValidationFailure(middleware.RoutePattern(r))
	apiErr := verr.ToAPIError()
	NewResponseWriter(w, r).ValidationError(apiErr.Message, apiErr.Details)
	return false
}

// respondEngineError maps planner and lookup errors onto HTTP responses.
func respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	rw := NewResponseWriter(w, r)
	logger := logging.Ctx(r.Context())

	switch {
	case errors.Is(err, planner.ErrUnknownCamp),
		errors.Is(err, ErrUnknownChild),
		errors.Is(err, ErrUnknownWeek):
		rw.NotFound(err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn().Err(err).Msg("Planning request timed out")
		rw.ServiceUnavailable("Planning request timed out")
	case errors.Is(err, context.Canceled):
		logger.Debug().Err(err).Msg("Client went away")
		rw.ServiceUnavailable("Request canceled")
	default:
		logger.Error().Err(err).Msg("Planning request failed")
		rw.InternalError("Failed to process planning request")
	}
}

// withTimeout bounds engine work by the handler's request timeout.
func (h *Handler) withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.requestTimeout)
}

// canonicalCatalog normalizes raw listings so validation sees canonical
// categories and parsed price and age fields.
func (h *Handler) canonicalCatalog(ctx context.Context, raw []models.Camp) ([]models.Camp, error) {
	if raw == nil {
		return nil, nil
	}
	return h.engine.NormalizeCatalog(ctx, raw)
}

// canonicalizeFamily maps free-form category labels and statuses onto the
// closed vocabularies in place.
func canonicalizeFamily(f *models.Family) {
	if f.Profile != nil {
		for i, c := range f.Profile.PreferredCategories {
			f.Profile.PreferredCategories[i] = normalize.ParseCategory(string(c))
		}
	}
	canonicalizeSchedule(f.Schedule)
}

func canonicalizeSchedule(schedule []models.ScheduledEntry) {
	for i := range schedule {
		schedule[i].Status = schedule[i].CanonicalStatus()
	}
}

// requestContext builds the scoring context from the request fields,
// resolving the target child and the week to fill.
func (h *Handler) requestContext(catalog []models.Camp, family *models.Family, childID string, weekNumber int, popularity map[string]int, limit int) (recommend.RequestContext, error) {
	rc := recommend.RequestContext{
		Catalog:    catalog,
		Family:     *family,
		Popularity: popularity,
		Limit:      limit,
	}

	if childID != "" {
		child, ok := family.ChildByID(childID)
		if !ok {
			return rc, fmt.Errorf("%w: %s", ErrUnknownChild, sanitizeLogValue(childID))
		}
		rc.TargetChild = &child
	}

	if weekNumber > 0 {
		weeks := family.Weeks
		if len(weeks) == 0 {
			weeks = h.engine.SeasonWeeks()
		}
		week, ok := calendar.WeekByNumber(weekNumber, weeks)
		if !ok {
			return rc, fmt.Errorf("%w: %d", ErrUnknownWeek, weekNumber)
		}
		rc.WeekToFill = &week
	}
	return rc, nil
}
