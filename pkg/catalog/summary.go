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

package catalog

import (
	"strconv"

	"github.com/gtnh-tools/gtcalc/pkg/recipe"
)

// Summary describes the size and shape of a catalog.
type Summary struct {
	TotalRecipes int              `json:"totalRecipes" yaml:"totalRecipes"`
	Sources      []SourceSummary  `json:"sources" yaml:"sources"`
	Machines     []MachineSummary `json:"machines" yaml:"machines"`
}

// SourceSummary counts the content of one source.
type SourceSummary struct {
	Type     string `json:"type" yaml:"type"`
	Records  int    `json:"records" yaml:"records"`
	Machines int    `json:"machines" yaml:"machines"`
}

// MachineSummary reports the recipe count of a machine and the largest
// number of entries seen in each ingredient list across its recipes.
type MachineSummary struct {
	Name            string `json:"name" yaml:"name"`
	Recipes         int    `json:"recipes" yaml:"recipes"`
	MaxItemInputs   int    `json:"maxItemInputs" yaml:"maxItemInputs"`
	MaxItemOutputs  int    `json:"maxItemOutputs" yaml:"maxItemOutputs"`
	MaxFluidInputs  int    `json:"maxFluidInputs" yaml:"maxFluidInputs"`
	MaxFluidOutputs int    `json:"maxFluidOutputs" yaml:"maxFluidOutputs"`
}

// Summarize computes the Summary of c.
func Summarize(c *recipe.Catalog) *Summary {
	s := &Summary{TotalRecipes: c.RecipeCount()}
	if c == nil {
		return s
	}

	for _, src := range c.Sources {
		s.Sources = append(s.Sources, SourceSummary{
			Type:     src.Type,
			Records:  len(src.Recipes),
			Machines: len(src.Machines),
		})
		for _, m := range src.Machines {
			ms := MachineSummary{Name: m.Name, Recipes: len(m.Recipes)}
			for _, r := range m.Recipes {
				ms.MaxItemInputs = max(ms.MaxItemInputs, len(r.ItemInputs))
				ms.MaxItemOutputs = max(ms.MaxItemOutputs, len(r.ItemOutputs))
				ms.MaxFluidInputs = max(ms.MaxFluidInputs, len(r.FluidInputs))
				ms.MaxFluidOutputs = max(ms.MaxFluidOutputs, len(r.FluidOutputs))
			}
			s.Machines = append(s.Machines, ms)
		}
	}
	return s
}

// TableHeader implements serializer.TableRenderer.
func (s *Summary) TableHeader() []string {
	return []string{"MACHINE", "RECIPES", "ITEMS IN", "ITEMS OUT", "FLUIDS IN", "FLUIDS OUT"}
}

// TableRows implements serializer.TableRenderer.
func (s *Summary) TableRows() [][]string {
	rows := make([][]string, 0, len(s.Machines)+1)
	for _, m := range s.Machines {
		rows = append(rows, []string{
			m.Name,
			strconv.Itoa(m.Recipes),
			strconv.Itoa(m.MaxItemInputs),
			strconv.Itoa(m.MaxItemOutputs),
			strconv.Itoa(m.MaxFluidInputs),
			strconv.Itoa(m.MaxFluidOutputs),
		})
	}
	rows = append(rows, []string{"TOTAL", strconv.Itoa(s.TotalRecipes), "", "", "", ""})
	return rows
}
