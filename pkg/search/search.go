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
	"github.com/xrash/smetrics"

	"github.com/gtnh-tools/gtcalc/pkg/recipe"
)

// Threshold is the Jaro-Winkler similarity a name must exceed to match.
const Threshold = 0.7

const (
	boostThreshold = 0.7
	prefixSize     = 4
)

// Result is a recipe matched by Search together with its machine name.
type Result struct {
	Machine string        `json:"machine" yaml:"machine"`
	Recipe  recipe.Recipe `json:"recipe" yaml:"recipe"`
}

// Similarity returns the Jaro-Winkler similarity of a and b in [0, 1].
func Similarity(a, b string) float64 {
	return smetrics.JaroWinkler(a, b, boostThreshold, prefixSize)
}

// Search returns every recipe with at least one ingredient, in any of its four
// lists, whose localized or unlocalized name is similar to keyword. Results
// follow machine order, then recipe order, and each recipe appears once.
func Search(machines []recipe.Machine, keyword string) []Result {
	var out []Result
	for _, m := range machines {
		for _, r := range m.Recipes {
			if matchesKeyword(r, keyword) {
				out = append(out, Result{Machine: m.Name, Recipe: r})
			}
		}
	}
	return out
}

// Catalog searches every machine of c.
func Catalog(c *recipe.Catalog, keyword string) []Result {
	return Search(c.Machines(), keyword)
}

func matchesKeyword(r recipe.Recipe, keyword string) bool {
	lists := [][]recipe.Ingredient{r.ItemInputs, r.ItemOutputs, r.FluidInputs, r.FluidOutputs}
	for _, list := range lists {
		for _, ing := range list {
			for _, name := range []string{ing.UnlocalizedName, ing.LocalizedName} {
				if name != "" && Similarity(keyword, name) > Threshold {
					return true
				}
			}
		}
	}
	return false
}
