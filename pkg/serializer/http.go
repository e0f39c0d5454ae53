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

package serializer

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"gopkg.in/yaml.v3"
)

// RespondJSON writes data as a JSON response. The body is encoded before the
// status is written so encoding failures still produce a 500.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		// Connection is broken, log but can't recover
		slog.Warn("response write failed", "error", err)
	}
}

// RespondYAML writes data as a YAML response.
func RespondYAML(w http.ResponseWriter, statusCode int, data any) {
	content, err := yaml.Marshal(data)
	if err != nil {
		slog.Error("yaml encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(statusCode)
	if _, err := w.Write(content); err != nil {
		slog.Warn("response write failed", "error", err)
	}
}

// Respond negotiates between JSON and YAML using the Accept header.
func Respond(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	switch r.Header.Get("Accept") {
	case "application/yaml", "application/x-yaml", "text/yaml":
		RespondYAML(w, statusCode, data)
	default:
		RespondJSON(w, statusCode, data)
	}
}
