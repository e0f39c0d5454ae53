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

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gtnh-tools/gtcalc/pkg/recipe"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "machine not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "machine not found" {
		t.Errorf("expected message 'machine not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("timeout")
	ctx := map[string]any{
		"location": "https://example.com/recipes.json.zst",
		"attempt":  2,
	}

	err := WrapWithContext(ErrCodeTimeout, "catalog fetch failed", cause, ctx)

	if err.Code != ErrCodeTimeout {
		t.Errorf("expected code %s, got %s", ErrCodeTimeout, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["attempt"] != 2 {
		t.Errorf("expected attempt to be 2")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	if !errors.Is(err.Unwrap(), cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}
}

func TestFromCore(t *testing.T) {
	existing := New(ErrCodeNotFound, "no such machine")

	tests := []struct {
		name string
		err  error
		code ErrorCode
	}{
		{"missing identity", fmt.Errorf("fluid inputs: %w", recipe.ErrMissingIdentity), ErrCodeMissingIdentity},
		{"empty recipe set", fmt.Errorf("stats: %w", recipe.ErrEmptyRecipeSet), ErrCodeEmptyRecipeSet},
		{"structured passthrough", fmt.Errorf("resolve: %w", existing), ErrCodeNotFound},
		{"unknown", errors.New("boom"), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromCore(tt.err)
			if got.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, got.Code)
			}
			if !errors.Is(got, tt.err) && !errors.Is(tt.err, got) {
				t.Errorf("expected %v to be in the error chain", tt.err)
			}
		})
	}

	if FromCore(nil) != nil {
		t.Error("expected nil for nil error")
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", New(ErrCodeInvalidRequest, "bad selector"))
	if got := CodeOf(wrapped); got != ErrCodeInvalidRequest {
		t.Errorf("expected %s, got %s", ErrCodeInvalidRequest, got)
	}
	if got := CodeOf(errors.New("plain")); got != ErrCodeInternal {
		t.Errorf("expected %s, got %s", ErrCodeInternal, got)
	}
}
