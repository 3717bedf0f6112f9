// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/tomtom215/campwise/internal/logging"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// Header names read and written by RequestID.
const (
	RequestIDHeader = "X-Request-ID"
	FamilyIDHeader  = "X-Family-ID"
)

// maxHeaderIDLen bounds client-supplied identifiers before they reach logs.
const maxHeaderIDLen = 128

// RequestID middleware generates a unique ID for each request
// and adds it to both the response header and request context.
// An optional X-Family-ID header is copied into the logging context so
// planner log lines can be grouped per household.
func RequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Keep an upstream proxy's ID when it looks sane
		requestID := cleanHeaderID(r.Header.Get(RequestIDHeader))
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		ctx = logging.ContextWithRequestID(ctx, requestID)
		if familyID := cleanHeaderID(r.Header.Get(FamilyIDHeader)); familyID != "" {
			ctx = logging.ContextWithFamilyID(ctx, familyID)
		}

		next(w, r.WithContext(ctx))
	}
}

// GetRequestID extracts the request ID from context
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// cleanHeaderID drops identifiers that are too long or carry control
// characters.
func cleanHeaderID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) > maxHeaderIDLen {
		return ""
	}
	for _, r := range id {
		if r < 0x20 || r == 0x7F {
			return ""
		}
	}
	return id
}
