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

// Balance is the net external flow of a two-recipe chain.
type Balance struct {
	Totals `yaml:",inline"`

	// CancelledItems and CancelledFluids hold the intermediate flow that was
	// removed from both sides, keyed like aggregated ingredients.
	CancelledItems  []recipe.Ingredient `json:"cancelledItems,omitempty" yaml:"cancelledItems,omitempty"`
	CancelledFluids []recipe.Ingredient `json:"cancelledFluids,omitempty" yaml:"cancelledFluids,omitempty"`
}

// BalanceOf computes the balance of exactly two recipes, the first being the
// upstream producer.
func BalanceOf(recipes []recipe.Recipe) (*Balance, error) {
	if len(recipes) != 2 {
		return nil, fmt.Errorf("balance needs exactly 2 recipes, got %d: %w", len(recipes), recipe.ErrEmptyRecipeSet)
	}
	return ComputeBalance(recipes[0], recipes[1])
}

// ComputeBalance computes the net inputs and outputs of the chain
// upstream -> downstream. For every identity the upstream produces and the
// downstream consumes, the intermediate quantity is the sum of pairwise
// minimums of the matching entries; it is subtracted from both the combined
// inputs and the combined outputs, dropping entries that fall to zero or
// below.
func ComputeBalance(upstream, downstream recipe.Recipe) (*Balance, error) {
	b := &Balance{}

	for _, ch := range recipe.Channels() {
		inputs, err := Aggregate(upstream.Inputs(ch), downstream.Inputs(ch))
		if err != nil {
			return nil, fmt.Errorf("%s inputs: %w", ch, err)
		}
		outputs, err := Aggregate(upstream.Outputs(ch), downstream.Outputs(ch))
		if err != nil {
			return nil, fmt.Errorf("%s outputs: %w", ch, err)
		}

		cancelled, err := intermediates(upstream.Outputs(ch), downstream.Inputs(ch))
		if err != nil {
			return nil, fmt.Errorf("%s intermediates: %w", ch, err)
		}

		k := make(map[string]int, len(cancelled))
		for _, c := range cancelled {
			k[c.UnlocalizedName] = c.Amount
		}

		b.set(ch, subtract(inputs, k), subtract(outputs, k))
		if ch == recipe.ChannelFluid {
			b.CancelledFluids = cancelled
		} else {
			b.CancelledItems = cancelled
		}
	}

	return b, nil
}

// Intermediates returns the per-identity quantity flowing from upstream
// outputs into downstream inputs, for items and fluids.
func Intermediates(upstream, downstream recipe.Recipe) (items, fluids map[string]int, err error) {
	itemList, err := intermediates(upstream.ItemOutputs, downstream.ItemInputs)
	if err != nil {
		return nil, nil, fmt.Errorf("item intermediates: %w", err)
	}
	fluidList, err := intermediates(upstream.FluidOutputs, downstream.FluidInputs)
	if err != nil {
		return nil, nil, fmt.Errorf("fluid intermediates: %w", err)
	}
	return toMap(itemList), toMap(fluidList), nil
}

// intermediates sums min(o.Amount, i.Amount) over every pair of an upstream
// output o and a downstream input i sharing an identity. The result is
// ordered by first appearance in outputs.
func intermediates(outputs, inputs []recipe.Ingredient) ([]recipe.Ingredient, error) {
	inputIDs := make([]string, len(inputs))
	for j, in := range inputs {
		id, err := in.Identity()
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", j, err)
		}
		inputIDs[j] = id
	}

	index := make(map[string]int)
	var out []recipe.Ingredient
	for oi, o := range outputs {
		id, err := o.Identity()
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", oi, err)
		}
		for j, in := range inputs {
			if inputIDs[j] != id {
				continue
			}
			pos, ok := index[id]
			if !ok {
				pos = len(out)
				index[id] = pos
				out = append(out, recipe.Ingredient{UnlocalizedName: id, LocalizedName: o.LocalizedName})
			}
			out[pos].Amount += min(o.Amount, in.Amount)
			if out[pos].LocalizedName == "" {
				out[pos].LocalizedName = in.LocalizedName
			}
		}
	}
	return out, nil
}

// subtract removes k[id] from each aggregated entry. Entries whose amount
// does not exceed k[id] are dropped.
func subtract(list []recipe.Ingredient, k map[string]int) []recipe.Ingredient {
	out := make([]recipe.Ingredient, 0, len(list))
	for _, ing := range list {
		q, ok := k[ing.UnlocalizedName]
		if !ok {
			out = append(out, ing)
			continue
		}
		if ing.Amount > q {
			ing.Amount -= q
			out = append(out, ing)
		}
	}
	return out
}

func toMap(list []recipe.Ingredient) map[string]int {
	m := make(map[string]int, len(list))
	for _, ing := range list {
		m[ing.UnlocalizedName] = ing.Amount
	}
	return m
}
