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

package search

import (
	"fmt"
	"strconv"

	gterrors "github.com/gtnh-tools/gtcalc/pkg/errors"
	"github.com/gtnh-tools/gtcalc/pkg/recipe"
)

// IngredientQuery is an exact-match predicate over one ingredient list of a
// recipe. Name is compared against the localized name, case-sensitively.
type IngredientQuery struct {
	Kind    recipe.Kind    `json:"kind" yaml:"kind" validate:"required,oneof=input output"`
	Channel recipe.Channel `json:"channel" yaml:"channel" validate:"required,oneof=item fluid"`
	Name    string         `json:"name" yaml:"name" validate:"required"`
	Amount  *int           `json:"amount,omitempty" yaml:"amount,omitempty" validate:"omitempty,gte=0"`
}

// String renders the query in selector predicate form.
func (q IngredientQuery) String() string {
	kind := "in"
	if q.Kind == recipe.KindOutput {
		kind = "out"
	}
	s := kind + "." + string(q.Channel) + "=" + q.Name
	if q.Amount != nil {
		s += "@" + strconv.Itoa(*q.Amount)
	}
	return s
}

// Check rejects a query whose kind or channel is not one of the defined
// values. Short forms such as "in" must be parsed with recipe.ParseKind
// first.
func (q IngredientQuery) Check() error {
	if q.Kind != recipe.KindInput && q.Kind != recipe.KindOutput {
		return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown ingredient kind %q", q.Kind), map[string]any{"query": q.String()})
	}
	if q.Channel != recipe.ChannelItem && q.Channel != recipe.ChannelFluid {
		return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown ingredient channel %q", q.Channel), map[string]any{"query": q.String()})
	}
	return nil
}

// Matches reports whether any ingredient in the selected list of r has the
// query's localized name and, when set, the query's amount.
func (q IngredientQuery) Matches(r recipe.Recipe) (bool, error) {
	if err := q.Check(); err != nil {
		return false, err
	}

	matched := false
	for i, ing := range r.Ingredients(q.Kind, q.Channel) {
		if _, err := ing.Identity(); err != nil {
			return false, fmt.Errorf("%s %s %d: %w", q.Channel, q.Kind, i, err)
		}
		if ing.LocalizedName != q.Name {
			continue
		}
		if q.Amount != nil && ing.Amount != *q.Amount {
			continue
		}
		matched = true
	}
	return matched, nil
}

// FilterByIngredient returns the recipes matching q, preserving order.
// Filtering a filtered result with the same query returns it unchanged.
func FilterByIngredient(recipes []recipe.Recipe, q IngredientQuery) ([]recipe.Recipe, error) {
	if err := q.Check(); err != nil {
		return nil, err
	}

	var out []recipe.Recipe
	for i, r := range recipes {
		ok, err := q.Matches(r)
		if err != nil {
			return nil, fmt.Errorf("recipe %d: %w", i, err)
		}
		if ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// FilterAll applies every query in turn.
func FilterAll(recipes []recipe.Recipe, queries ...IngredientQuery) ([]recipe.Recipe, error) {
	out := recipes
	for _, q := range queries {
		var err error
		if out, err = FilterByIngredient(out, q); err != nil {
			return nil, fmt.Errorf("filter %s: %w", q, err)
		}
	}
	return out, nil
}

// Int returns a pointer to v, for building queries with an amount.
func Int(v int) *int {
	return &v
}
