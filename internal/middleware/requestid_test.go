// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/campwise/internal/logging"
)

func TestRequestID_GeneratesNewID(t *testing.T) {
	var capturedID, loggingID string
	handler := func(w http.ResponseWriter, r *http.Request) {
		capturedID = GetRequestID(r.Context())
		loggingID = logging.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	RequestID(handler)(rec, req)

	responseID := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(responseID); err != nil {
		t.Errorf("response X-Request-ID %q is not a valid UUID: %v", responseID, err)
	}
	if capturedID != responseID {
		t.Errorf("context ID %q doesn't match response header ID %q", capturedID, responseID)
	}
	if loggingID != responseID {
		t.Errorf("logging context ID %q doesn't match %q", loggingID, responseID)
	}
}

func TestRequestID_HeaderHandling(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"preserves upstream id", "existing-request-id-12345", true},
		{"trims whitespace", "  abc-123  ", true},
		{"rejects control characters", "abc\ninjected", false},
		{"rejects oversized id", strings.Repeat("x", maxHeaderIDLen+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set(RequestIDHeader, tt.incoming)
			rec := httptest.NewRecorder()

			RequestID(func(w http.ResponseWriter, r *http.Request) {})(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if tt.keep && got != strings.TrimSpace(tt.incoming) {
				t.Errorf("X-Request-ID = %q, want %q", got, strings.TrimSpace(tt.incoming))
			}
			if !tt.keep {
				if _, err := uuid.Parse(got); err != nil {
					t.Errorf("rejected id should be replaced by a UUID, got %q", got)
				}
			}
		})
	}
}

func TestRequestID_FamilyID(t *testing.T) {
	var familyID string
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		familyID = logging.FamilyIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", nil)
	req.Header.Set(FamilyIDHeader, "household-42")
	handler(httptest.NewRecorder(), req)
	if familyID != "household-42" {
		t.Errorf("family ID = %q, want household-42", familyID)
	}

	familyID = ""
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", nil))
	if familyID != "" {
		t.Errorf("family ID without header = %q, want empty", familyID)
	}
}

func TestGetRequestID_Empty(t *testing.T) {
	if id := GetRequestID(context.Background()); id != "" {
		t.Errorf("GetRequestID() = %q, want empty", id)
	}
}
