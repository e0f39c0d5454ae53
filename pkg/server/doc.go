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

// Package server provides the HTTP server that hosts the gtcalc API.
//
// The server itself knows nothing about recipes. Callers register handlers by
// http.ServeMux pattern and the server wraps each one in a middleware chain:
//
//   - Prometheus request metrics (gtcalc_http_*)
//   - API version negotiation via application/vnd.gtcalc.v1+json
//   - Request ID tracking (X-Request-Id, UUID)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Debug request logging
//
// # Usage
//
//	cfg := server.FromSettings(settings)
//	cfg.Handlers = api.New(catalog, settings).Routes()
//	if err := server.Run(ctx, cfg); err != nil {
//	    return err
//	}
//
// # System Endpoints
//
// These bypass the middleware chain and are never rate limited:
//
//	GET /health   - liveness probe
//	GET /ready    - readiness probe, 503 while starting or draining
//	GET /metrics  - Prometheus exposition
//	GET /         - server name, version and registered routes
//
// # Errors
//
// Failures are written as ErrorResponse JSON. WriteErrorFromErr maps error
// codes from pkg/errors to HTTP status:
//
//	INVALID_REQUEST, EMPTY_RECIPE_SET  400
//	NOT_FOUND                          404
//	MISSING_IDENTITY                   422
//	RATE_LIMIT_EXCEEDED                429
//	INTERNAL                           500
//	SERVICE_UNAVAILABLE                503
//	TIMEOUT                            504
//
// # Configuration
//
// PORT and SHUTDOWN_TIMEOUT_SECONDS override the port and drain timeout from
// the config file.
package server
