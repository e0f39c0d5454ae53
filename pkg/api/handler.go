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

package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/gtnh-tools/gtcalc/pkg/calculator"
	"github.com/gtnh-tools/gtcalc/pkg/catalog"
	"github.com/gtnh-tools/gtcalc/pkg/defaults"
	gterrors "github.com/gtnh-tools/gtcalc/pkg/errors"
	"github.com/gtnh-tools/gtcalc/pkg/recipe"
	"github.com/gtnh-tools/gtcalc/pkg/search"
	"github.com/gtnh-tools/gtcalc/pkg/serializer"
	"github.com/gtnh-tools/gtcalc/pkg/server"
	"github.com/gtnh-tools/gtcalc/pkg/validate"
)

// Handler serves the recipe API over one read-only catalog.
type Handler struct {
	catalog *recipe.Catalog
	summary *catalog.Summary
	cache   *expirable.LRU[string, search.Results]
}

// Option configures a Handler.
type Option func(*Handler)

// WithSearchCache caches keyword search results. A size of zero disables the
// cache.
func WithSearchCache(size int, ttl time.Duration) Option {
	return func(h *Handler) {
		if size <= 0 {
			h.cache = nil
			return
		}
		h.cache = expirable.NewLRU[string, search.Results](size, nil, ttl)
	}
}

// New returns a Handler for c. The search cache is enabled with the default
// size and TTL unless overridden.
func New(c *recipe.Catalog, opts ...Option) *Handler {
	if c == nil {
		c = &recipe.Catalog{}
	}
	h := &Handler{
		catalog: c,
		summary: catalog.Summarize(c),
	}
	WithSearchCache(defaults.SearchCacheSize, defaults.SearchCacheTTL)(h)
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the API handlers keyed by mux pattern.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"GET /v1/search":   h.HandleSearch,
		"GET /v1/recipes":  h.HandleRecipes,
		"GET /v1/machines": h.HandleMachines,
		"GET /v1/summary":  h.HandleSummary,
		"POST /v1/balance": h.HandleBalance,
		"POST /v1/stats":   h.HandleStats,
	}
}

// HandleSearch handles GET /v1/search?q=KEYWORD.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.SearchHandlerTimeout)
	defer cancel()

	keyword := strings.TrimSpace(r.URL.Query().Get("q"))
	if keyword == "" {
		server.WriteError(w, r, http.StatusBadRequest, gterrors.ErrCodeInvalidRequest,
			"Query parameter q is required", false, nil)
		return
	}

	if h.cache != nil {
		if results, ok := h.cache.Get(keyword); ok {
			searchCacheRequests.WithLabelValues("hit").Inc()
			w.Header().Set("X-Cache", "HIT")
			serializer.Respond(w, r, http.StatusOK, results)
			return
		}
		searchCacheRequests.WithLabelValues("miss").Inc()
		w.Header().Set("X-Cache", "MISS")
	}

	results, err := withTimeout(ctx, func() (search.Results, error) {
		return search.Catalog(h.catalog, keyword), nil
	})
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Search failed", map[string]any{"q": keyword})
		return
	}

	if results == nil {
		results = search.Results{}
	}
	slog.Debug("search", "q", keyword, "results", len(results))

	if h.cache != nil {
		h.cache.Add(keyword, results)
	}
	serializer.Respond(w, r, http.StatusOK, results)
}

// FilterResponse is the body returned by GET /v1/recipes.
type FilterResponse struct {
	Machine string                 `json:"machine" yaml:"machine"`
	Query   search.IngredientQuery `json:"query" yaml:"query"`
	Count   int                    `json:"count" yaml:"count"`
	Recipes []recipe.Recipe        `json:"recipes" yaml:"recipes"`
}

// HandleRecipes handles GET /v1/recipes, an exact ingredient filter over one
// machine's recipes.
func (h *Handler) HandleRecipes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := search.IngredientQuery{
		Kind:    recipe.Kind(strings.ToLower(q.Get("kind"))),
		Channel: recipe.Channel(strings.ToLower(q.Get("channel"))),
		Name:    q.Get("name"),
	}
	if raw := q.Get("amount"); raw != "" {
		amount, err := strconv.Atoi(raw)
		if err != nil {
			server.WriteError(w, r, http.StatusBadRequest, gterrors.ErrCodeInvalidRequest,
				"Query parameter amount must be an integer", false, map[string]any{"amount": raw})
			return
		}
		query.Amount = search.Int(amount)
	}

	machineName := q.Get("machine")
	if machineName == "" {
		server.WriteError(w, r, http.StatusBadRequest, gterrors.ErrCodeInvalidRequest,
			"Query parameter machine is required", false, nil)
		return
	}
	if err := validate.Struct(query); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, gterrors.ErrCodeInvalidRequest,
			"Invalid ingredient query", false, map[string]any{"fields": validate.FormatError(err)})
		return
	}

	m, err := search.FindMachine(h.catalog, machineName)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Machine lookup failed", nil)
		return
	}

	matched, err := search.FilterByIngredient(m.Recipes, query)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Filter failed", map[string]any{"machine": m.Name})
		return
	}
	if matched == nil {
		matched = []recipe.Recipe{}
	}

	serializer.Respond(w, r, http.StatusOK, FilterResponse{
		Machine: m.Name,
		Query:   query,
		Count:   len(matched),
		Recipes: matched,
	})
}

// HandleMachines handles GET /v1/machines.
func (h *Handler) HandleMachines(w http.ResponseWriter, r *http.Request) {
	names := h.catalog.MachineNames()
	if names == nil {
		names = []string{}
	}
	serializer.Respond(w, r, http.StatusOK, names)
}

// HandleSummary handles GET /v1/summary.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	serializer.Respond(w, r, http.StatusOK, h.summary)
}

// BalanceResponse is the body returned by POST /v1/balance.
type BalanceResponse struct {
	Upstream   recipe.Recipe       `json:"upstream" yaml:"upstream"`
	Downstream recipe.Recipe       `json:"downstream" yaml:"downstream"`
	Balance    *calculator.Balance `json:"balance" yaml:"balance"`
}

// HandleBalance handles POST /v1/balance.
func (h *Handler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.CalculateHandlerTimeout)
	defer cancel()

	var req BalanceRequest
	if err := decodeBody(w, r, &req); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid balance request", nil)
		return
	}

	resp, err := withTimeout(ctx, func() (*BalanceResponse, error) {
		recipes, err := resolveRefs(h.catalog, []RecipeRef{req.Upstream, req.Downstream})
		if err != nil {
			return nil, err
		}
		b, err := calculator.BalanceOf(recipes)
		if err != nil {
			return nil, err
		}
		return &BalanceResponse{Upstream: recipes[0], Downstream: recipes[1], Balance: b}, nil
	})
	observeCalculation("balance", err)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Balance calculation failed", nil)
		return
	}

	serializer.Respond(w, r, http.StatusOK, resp)
}

// HandleStats handles POST /v1/stats.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.CalculateHandlerTimeout)
	defer cancel()

	var req StatsRequest
	if err := decodeBody(w, r, &req); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid stats request", nil)
		return
	}

	stats, err := withTimeout(ctx, func() (*calculator.Stats, error) {
		recipes, err := resolveRefs(h.catalog, req.Recipes)
		if err != nil {
			return nil, err
		}
		return calculator.ComputeStats(recipes...)
	})
	observeCalculation("stats", err)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Stats calculation failed", nil)
		return
	}

	serializer.Respond(w, r, http.StatusOK, stats)
}

// withTimeout runs fn and abandons it once ctx is done.
func withTimeout[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		v   T
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn()
		done <- result{v, err}
	}()

	select {
	case res := <-done:
		return res.v, res.err
	case <-ctx.Done():
		var zero T
		return zero, gterrors.Wrap(gterrors.ErrCodeTimeout, "request timed out", ctx.Err())
	}
}
