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
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	gterrors "github.com/gtnh-tools/gtcalc/pkg/errors"
	"github.com/gtnh-tools/gtcalc/pkg/serializer"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Code      string         `json:"code" yaml:"code"`
	Message   string         `json:"message" yaml:"message"`
	Details   map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	RequestID string         `json:"requestId" yaml:"requestId"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Retryable bool           `json:"retryable" yaml:"retryable"`
}

// HTTPStatusFromCode maps an error code to the HTTP status returned for it.
func HTTPStatusFromCode(code gterrors.ErrorCode) int {
	switch code {
	case gterrors.ErrCodeInvalidRequest, gterrors.ErrCodeEmptyRecipeSet:
		return http.StatusBadRequest
	case gterrors.ErrCodeMissingIdentity:
		return http.StatusUnprocessableEntity
	case gterrors.ErrCodeNotFound:
		return http.StatusNotFound
	case gterrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case gterrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case gterrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case gterrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code gterrors.ErrorCode) bool {
	switch code {
	case gterrors.ErrCodeTimeout,
		gterrors.ErrCodeUnavailable,
		gterrors.ErrCodeRateLimitExceeded,
		gterrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns the union of a and b, with b winning on conflicts.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// WriteError writes an ErrorResponse with the given status.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code gterrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr writes err as an ErrorResponse. Calculation sentinels and
// StructuredErrors keep their code; anything else is reported as INTERNAL with
// fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, extraDetails map[string]any) {

	var se *gterrors.StructuredError
	if !errors.As(err, &se) {
		se = gterrors.FromCore(err)
		if se.Code == gterrors.ErrCodeInternal {
			se.Message = fallbackMessage
		}
	}

	details := mergeDetails(se.Context, extraDetails)
	if se.Cause != nil {
		details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
	}

	WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message,
		retryableFromCode(se.Code), details)
}
