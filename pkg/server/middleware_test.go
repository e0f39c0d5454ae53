// Copyright (c) 2025, The gtcalc Authors.  All rights reserved.
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

func newTestServer(limit rate.Limit, burst int) *Server {
	return &Server{
		config:      NewConfig(),
		rateLimiter: rate.NewLimiter(limit, burst),
	}
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequestIDMiddleware(t *testing.T) {
	s := newTestServer(100, 200)
	provided := uuid.New().String()

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{"generates when missing", "", false},
		{"keeps valid uuid", provided, true},
		{"replaces invalid id", "not-a-uuid", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
				got = RequestIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/search", nil)
			if tt.header != "" {
				req.Header.Set("X-Request-Id", tt.header)
			}
			rec := httptest.NewRecorder()
			h(rec, req)

			if _, err := uuid.Parse(got); err != nil {
				t.Fatalf("request ID %q is not a UUID", got)
			}
			if tt.wantSame && got != tt.header {
				t.Errorf("expected request ID %s, got %s", tt.header, got)
			}
			if !tt.wantSame && got == tt.header {
				t.Errorf("expected request ID to be regenerated")
			}
			if rec.Header().Get("X-Request-Id") != got {
				t.Errorf("X-Request-Id header %q does not match context %q", rec.Header().Get("X-Request-Id"), got)
			}
		})
	}
}

func TestVersionMiddleware(t *testing.T) {
	s := newTestServer(100, 200)

	var got string
	h := s.versionMiddleware(func(w http.ResponseWriter, r *http.Request) {
		got = APIVersionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/search", nil)
	req.Header.Set("Accept", "application/vnd.gtcalc.v1+json")
	rec := httptest.NewRecorder()
	h(rec, req)

	if got != "v1" {
		t.Errorf("expected v1 in context, got %q", got)
	}
	if rec.Header().Get("X-API-Version") != "v1" {
		t.Errorf("expected X-API-Version v1, got %q", rec.Header().Get("X-API-Version"))
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("allows and sets headers", func(t *testing.T) {
		s := newTestServer(100, 200)
		rec := httptest.NewRecorder()
		s.rateLimitMiddleware(okHandler)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		for _, h := range []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"} {
			if rec.Header().Get(h) == "" {
				t.Errorf("expected header %s", h)
			}
		}
	})

	t.Run("rejects when exhausted", func(t *testing.T) {
		s := newTestServer(0, 0)
		called := false
		rec := httptest.NewRecorder()
		s.rateLimitMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			called = true
		})(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if called {
			t.Error("handler should not run when rate limited")
		}
		if rec.Code != http.StatusTooManyRequests {
			t.Errorf("expected status 429, got %d", rec.Code)
		}
		if rec.Header().Get("Retry-After") == "" {
			t.Error("expected Retry-After header")
		}
	})
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := newTestServer(100, 200)
	rec := httptest.NewRecorder()

	s.panicRecoveryMiddleware(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}
}

func TestLoggingMiddleware_PreservesStatus(t *testing.T) {
	s := newTestServer(100, 200)

	for _, status := range []int{http.StatusOK, http.StatusBadRequest, http.StatusUnprocessableEntity} {
		rec := httptest.NewRecorder()
		s.loggingMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		})(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != status {
			t.Errorf("expected status %d, got %d", status, rec.Code)
		}
	}
}

func TestWithMiddleware_SetsAllHeaders(t *testing.T) {
	s := newTestServer(100, 200)
	rec := httptest.NewRecorder()

	s.withMiddleware(okHandler)(rec, httptest.NewRequest(http.MethodGet, "/v1/summary", nil))

	for _, h := range []string{"X-Request-Id", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "X-API-Version"} {
		if rec.Header().Get(h) == "" {
			t.Errorf("expected header %s to be set", h)
		}
	}
}
