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

package recipe

import "strings"

// Recipe is one machine process: consumed ingredients, produced ingredients,
// and processing metadata. Recipes are treated as immutable values.
type Recipe struct {
	Enabled      bool         `json:"en" yaml:"en"`
	Duration     int          `json:"dur" yaml:"dur"`
	EUt          int          `json:"eut" yaml:"eut"`
	ItemInputs   []Ingredient `json:"iI" yaml:"iI"`
	ItemOutputs  []Ingredient `json:"iO" yaml:"iO"`
	FluidInputs  []Ingredient `json:"fI" yaml:"fI"`
	FluidOutputs []Ingredient `json:"fO" yaml:"fO"`
}

// Inputs returns the input list of the given channel.
func (r Recipe) Inputs(ch Channel) []Ingredient {
	if ch == ChannelFluid {
		return r.FluidInputs
	}
	return r.ItemInputs
}

// Outputs returns the output list of the given channel.
func (r Recipe) Outputs(ch Channel) []Ingredient {
	if ch == ChannelFluid {
		return r.FluidOutputs
	}
	return r.ItemOutputs
}

// Ingredients returns the list selected by kind and channel.
func (r Recipe) Ingredients(kind Kind, ch Channel) []Ingredient {
	if kind == KindOutput {
		return r.Outputs(ch)
	}
	return r.Inputs(ch)
}

// String renders the recipe as "inputs -> outputs", for example
// "1x Empty Cell, 1000l Water -> 1x Water Cell".
func (r Recipe) String() string {
	return side(r.ItemInputs, r.FluidInputs) + " -> " + side(r.ItemOutputs, r.FluidOutputs)
}

func side(items, fluids []Ingredient) string {
	parts := make([]string, 0, 2)
	if len(items) > 0 {
		parts = append(parts, join(items, ChannelItem))
	}
	if len(fluids) > 0 {
		parts = append(parts, join(fluids, ChannelFluid))
	}
	return strings.Join(parts, ", ")
}

func join(list []Ingredient, ch Channel) string {
	out := make([]string, len(list))
	for i, ing := range list {
		out[i] = ing.Format(ch)
	}
	return strings.Join(out, " + ")
}
