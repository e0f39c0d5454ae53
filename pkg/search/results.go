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
	"strconv"

	"github.com/gtnh-tools/gtcalc/pkg/recipe"
)

// Results is a list of matches that renders as a table.
type Results []Result

// FromRecipes pairs every recipe with its machine name.
func FromRecipes(machine string, recipes []recipe.Recipe) Results {
	out := make(Results, len(recipes))
	for i, r := range recipes {
		out[i] = Result{Machine: machine, Recipe: r}
	}
	return out
}

// TableHeader implements serializer.TableRenderer.
func (rs Results) TableHeader() []string {
	return []string{"MACHINE", "EU/T", "TICKS", "RECIPE"}
}

// TableRows implements serializer.TableRenderer.
func (rs Results) TableRows() [][]string {
	rows := make([][]string, len(rs))
	for i, r := range rs {
		rows[i] = []string{
			r.Machine,
			strconv.Itoa(r.Recipe.EUt),
			strconv.Itoa(r.Recipe.Duration),
			r.Recipe.String(),
		}
	}
	return rows
}
