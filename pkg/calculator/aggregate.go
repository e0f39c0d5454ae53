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

package calculator

import (
	"fmt"

	"github.com/gtnh-tools/gtcalc/pkg/recipe"
)

// Aggregate sums amounts by identity across all lists. The result holds one
// entry per identity in order of first appearance; its UnlocalizedName is the
// identity key and its LocalizedName is the first localized name seen for
// that identity. The result is never nil.
func Aggregate(lists ...[]recipe.Ingredient) ([]recipe.Ingredient, error) {
	index := make(map[string]int)
	out := make([]recipe.Ingredient, 0)

	for li, list := range lists {
		for ii, ing := range list {
			id, err := ing.Identity()
			if err != nil {
				return nil, fmt.Errorf("list %d, ingredient %d: %w", li, ii, err)
			}

			pos, ok := index[id]
			if !ok {
				index[id] = len(out)
				out = append(out, recipe.Ingredient{
					Amount:          ing.Amount,
					UnlocalizedName: id,
					LocalizedName:   ing.LocalizedName,
				})
				continue
			}

			out[pos].Amount += ing.Amount
			if out[pos].LocalizedName == "" {
				out[pos].LocalizedName = ing.LocalizedName
			}
		}
	}

	return out, nil
}
