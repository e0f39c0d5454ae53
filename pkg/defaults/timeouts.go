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

package defaults

import "time"

// Catalog loading.
const (
	// CatalogFetchTimeout is the total timeout for downloading a remote catalog.
	// Recipe exports run to hundreds of megabytes.
	CatalogFetchTimeout = 2 * time.Minute

	// CatalogFetchRetries is the number of retries for a failed catalog download.
	CatalogFetchRetries = 2

	// CatalogFetchRetryWait is the initial wait between download retries.
	CatalogFetchRetryWait = 2 * time.Second

	// CatalogLoadConcurrency bounds the number of catalogs loaded in parallel.
	CatalogLoadConcurrency = 4
)

// Handler timeouts for HTTP request processing.
const (
	// SearchHandlerTimeout is the timeout for fuzzy search requests, which scan
	// the whole catalog.
	SearchHandlerTimeout = 30 * time.Second

	// CalculateHandlerTimeout is the timeout for balance, stats and filter
	// requests.
	CalculateHandlerTimeout = 10 * time.Second

	// MaxRequestBodyBytes bounds POST bodies.
	MaxRequestBodyBytes = 1 << 20
)

// Search result caching.
const (
	// SearchCacheSize is the number of keywords kept in the result cache.
	SearchCacheSize = 256

	// SearchCacheTTL is how long cached search results stay valid.
	SearchCacheTTL = 10 * time.Minute
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 60 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Server rate limiting.
const (
	// ServerRateLimit is the sustained number of requests per second.
	ServerRateLimit = 100

	// ServerRateLimitBurst is the maximum burst size.
	ServerRateLimitBurst = 200
)

// CLI timeouts for command-line operations.
const (
	// CLICommandTimeout bounds a single CLI command including catalog loading.
	CLICommandTimeout = 10 * time.Minute
)
