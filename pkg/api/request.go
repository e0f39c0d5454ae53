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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gtnh-tools/gtcalc/pkg/defaults"
	gterrors "github.com/gtnh-tools/gtcalc/pkg/errors"
	"github.com/gtnh-tools/gtcalc/pkg/recipe"
	"github.com/gtnh-tools/gtcalc/pkg/search"
	"github.com/gtnh-tools/gtcalc/pkg/validate"
)

// RecipeRef names a recipe either by selector or inline. A JSON string or an
// object with a "machine" key is a selector; any other object is a recipe in
// catalog form.
type RecipeRef struct {
	Selector *search.Selector
	Recipe   *recipe.Recipe
}

// UnmarshalJSON implements json.Unmarshaler.
func (ref *RecipeRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s search.Selector
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		ref.Selector = &s
		return nil
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	if _, ok := keys["machine"]; ok {
		var s search.Selector
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		ref.Selector = &s
		return nil
	}

	var r recipe.Recipe
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	ref.Recipe = &r
	return nil
}

// MarshalJSON writes whichever form is set.
func (ref RecipeRef) MarshalJSON() ([]byte, error) {
	if ref.Selector != nil {
		return json.Marshal(ref.Selector.String())
	}
	return json.Marshal(ref.Recipe)
}

func (ref RecipeRef) resolve(c *recipe.Catalog) (recipe.Recipe, error) {
	switch {
	case ref.Recipe != nil:
		return *ref.Recipe, nil
	case ref.Selector != nil:
		return search.Resolve(c, *ref.Selector)
	default:
		return recipe.Recipe{}, gterrors.New(gterrors.ErrCodeInvalidRequest, "empty recipe reference")
	}
}

// BalanceRequest is the body of POST /v1/balance.
type BalanceRequest struct {
	Upstream   RecipeRef `json:"upstream" validate:"required"`
	Downstream RecipeRef `json:"downstream" validate:"required"`
}

// StatsRequest is the body of POST /v1/stats.
type StatsRequest struct {
	Recipes []RecipeRef `json:"recipes" validate:"max=64,dive"`
}

// decodeBody reads a bounded JSON body into v and validates it.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)
	defer body.Close()

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest, "request body too large",
				map[string]any{"limit": tooLarge.Limit})
		}
		if errors.Is(err, io.EOF) {
			return gterrors.New(gterrors.ErrCodeInvalidRequest, "request body is empty")
		}
		return gterrors.Wrap(gterrors.ErrCodeInvalidRequest, "invalid request body", err)
	}

	if err := validate.Struct(v); err != nil {
		return gterrors.WrapWithContext(gterrors.ErrCodeInvalidRequest, "request validation failed", err,
			map[string]any{"fields": validate.FormatError(err)})
	}
	return nil
}

func resolveRefs(c *recipe.Catalog, refs []RecipeRef) ([]recipe.Recipe, error) {
	out := make([]recipe.Recipe, 0, len(refs))
	for i, ref := range refs {
		r, err := ref.resolve(c)
		if err != nil {
			return nil, fmt.Errorf("recipe %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}
