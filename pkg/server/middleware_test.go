// Copyright (c) 2026, VPack Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

func newTestServer() *Server {
	return &Server{
		config:      NewConfig(),
		rateLimiter: rate.NewLimiter(100, 200),
	}
}

func TestRequestIDMiddleware_GeneratesNewID(t *testing.T) {
	s := newTestServer()

	var capturedRequestID string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		capturedRequestID = r.Context().Value(contextKeyRequestID).(string)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	// Should generate a valid UUID
	if capturedRequestID == "" {
		t.Error("expected request ID to be generated")
	}
	if _, err := uuid.Parse(capturedRequestID); err != nil {
		t.Errorf("expected valid UUID, got: %s", capturedRequestID)
	}

	// Should set the header
	if rec.Header().Get("X-Request-Id") != capturedRequestID {
		t.Errorf("expected X-Request-Id header to be %s, got %s",
			capturedRequestID, rec.Header().Get("X-Request-Id"))
	}
}

func TestRequestIDMiddleware_UsesProvidedID(t *testing.T) {
	s := newTestServer()

	expectedID := "550e8400-e29b-41d4-a716-446655440000"
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-Id", expectedID)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if rec.Header().Get("X-Request-Id") != expectedID {
		t.Errorf("expected request ID %s, got %s", expectedID, rec.Header().Get("X-Request-Id"))
	}
}

func TestRequestIDMiddleware_RegeneratesInvalidID(t *testing.T) {
	s := newTestServer()

	invalidID := "not-a-valid-uuid"
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-Id", invalidID)
	rec := httptest.NewRecorder()

	handler(rec, req)

	requestID := rec.Header().Get("X-Request-Id")
	if requestID == invalidID {
		t.Error("expected invalid UUID to be regenerated")
	}
	if _, err := uuid.Parse(requestID); err != nil {
		t.Errorf("expected regenerated ID to be a valid UUID, got: %s", requestID)
	}
}

func TestVersionMiddleware(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name            string
		accept          string
		expectedVersion string
	}{
		{
			name:            "no accept header",
			accept:          "",
			expectedVersion: DefaultAPIVersion,
		},
		{
			name:            "plain json accept",
			accept:          "application/json",
			expectedVersion: DefaultAPIVersion,
		},
		{
			name:            "vendor mime with valid version",
			accept:          "application/vnd.vpack.v1+json",
			expectedVersion: "v1",
		},
		{
			name:            "vendor mime with unsupported version",
			accept:          "application/vnd.vpack.v9+json",
			expectedVersion: DefaultAPIVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := s.versionMiddleware(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			rec := httptest.NewRecorder()

			handler(rec, req)

			if got := rec.Header().Get("X-API-Version"); got != tt.expectedVersion {
				t.Errorf("expected X-API-Version %s, got %s", tt.expectedVersion, got)
			}
		})
	}
}

func TestRateLimitHeaders(t *testing.T) {
	s := newTestServer()

	handler := s.rateLimitMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if rec.Header().Get("X-RateLimit-Limit") == "" {
		t.Error("expected X-RateLimit-Limit header to be set")
	}
	if rec.Header().Get("X-RateLimit-Reset") == "" {
		t.Error("expected X-RateLimit-Reset header to be set")
	}
}
