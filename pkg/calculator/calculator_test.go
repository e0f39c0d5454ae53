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
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtnh-tools/gtcalc/pkg/recipe"
)

func ing(amount int, un, ln string) recipe.Ingredient {
	return recipe.Ingredient{Amount: amount, UnlocalizedName: un, LocalizedName: ln}
}

func byID(list []recipe.Ingredient) map[string]int {
	m := make(map[string]int, len(list))
	for _, i := range list {
		m[i.UnlocalizedName] += i.Amount
	}
	return m
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name  string
		lists [][]recipe.Ingredient
		want  []recipe.Ingredient
	}{
		{
			name: "empty",
			want: []recipe.Ingredient{},
		},
		{
			name: "sums by identity in first-seen order",
			lists: [][]recipe.Ingredient{
				{ing(1, "water", "Water"), ing(2, "oxygen", "Oxygen")},
				{ing(3, "water", "Water")},
			},
			want: []recipe.Ingredient{ing(4, "water", "Water"), ing(2, "oxygen", "Oxygen")},
		},
		{
			name: "localized name used as identity",
			lists: [][]recipe.Ingredient{
				{ing(1, "", "Copper Dust"), ing(1, "", "Copper Dust")},
			},
			want: []recipe.Ingredient{ing(2, "Copper Dust", "Copper Dust")},
		},
		{
			name: "first localized name kept",
			lists: [][]recipe.Ingredient{
				{ing(1, "gt.dust", "")},
				{ing(1, "gt.dust", "Dust"), ing(1, "gt.dust", "Other")},
			},
			want: []recipe.Ingredient{ing(3, "gt.dust", "Dust")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Aggregate(tt.lists...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAggregateMissingIdentity(t *testing.T) {
	_, err := Aggregate([]recipe.Ingredient{ing(1, "water", "Water")}, []recipe.Ingredient{{Amount: 0}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, recipe.ErrMissingIdentity))
}

func TestAggregateCommutativeAssociative(t *testing.T) {
	a := []recipe.Ingredient{ing(1, "water", "Water"), ing(5, "iron", "Iron Dust")}
	b := []recipe.Ingredient{ing(7, "iron", "Iron Dust"), ing(2, "gold", "Gold Dust")}
	c := []recipe.Ingredient{ing(3, "water", "Water")}

	ab, err := Aggregate(a, b)
	require.NoError(t, err)
	ba, err := Aggregate(b, a)
	require.NoError(t, err)
	assert.Equal(t, byID(ab), byID(ba))

	abc, err := Aggregate(a, b, c)
	require.NoError(t, err)
	bc, err := Aggregate(b, c)
	require.NoError(t, err)
	aThenBC, err := Aggregate(a, bc)
	require.NoError(t, err)
	assert.Equal(t, byID(abc), byID(aThenBC))

	// combine(A) merged with combine(B)
	aggA, err := Aggregate(a)
	require.NoError(t, err)
	aggB, err := Aggregate(b)
	require.NoError(t, err)
	merged, err := Aggregate(aggA, aggB)
	require.NoError(t, err)
	assert.Equal(t, byID(ab), byID(merged))
}

func nitricOxideChain() (recipe.Recipe, recipe.Recipe) {
	up := recipe.Recipe{
		FluidOutputs: []recipe.Ingredient{ing(2000, "nitricoxide", "Nitric Oxide")},
	}
	down := recipe.Recipe{
		ItemInputs:  []recipe.Ingredient{ing(1, "water", "Water")},
		FluidInputs: []recipe.Ingredient{ing(1000, "nitricoxide", "Nitric Oxide")},
	}
	return up, down
}

func TestComputeBalance(t *testing.T) {
	up, down := nitricOxideChain()

	b, err := ComputeBalance(up, down)
	require.NoError(t, err)

	assert.Equal(t, []recipe.Ingredient{ing(1, "water", "Water")}, b.InputItems)
	assert.Empty(t, b.InputFluids)
	assert.Empty(t, b.OutputItems)
	assert.Equal(t, []recipe.Ingredient{ing(1000, "nitricoxide", "Nitric Oxide")}, b.OutputFluids)
	assert.Equal(t, []recipe.Ingredient{ing(1000, "nitricoxide", "Nitric Oxide")}, b.CancelledFluids)
	assert.Empty(t, b.CancelledItems)
}

func TestComputeBalanceRepeatedInputs(t *testing.T) {
	// Both recipes consume the same inputs; the downstream input is covered
	// by half of the upstream output.
	inputs := func() ([]recipe.Ingredient, []recipe.Ingredient) {
		return []recipe.Ingredient{ing(1, "water", "Water")},
			[]recipe.Ingredient{ing(1000, "nitricoxide", "Nitric Oxide")}
	}
	up := recipe.Recipe{FluidOutputs: []recipe.Ingredient{ing(2000, "nitricoxide", "Nitric Oxide")}}
	up.ItemInputs, up.FluidInputs = inputs()
	down := recipe.Recipe{}
	down.ItemInputs, down.FluidInputs = inputs()

	b, err := ComputeBalance(up, down)
	require.NoError(t, err)

	assert.Equal(t, []recipe.Ingredient{ing(2, "water", "Water")}, b.InputItems)
	assert.Equal(t, []recipe.Ingredient{ing(1000, "nitricoxide", "Nitric Oxide")}, b.InputFluids)
	assert.Equal(t, []recipe.Ingredient{ing(1000, "nitricoxide", "Nitric Oxide")}, b.OutputFluids)
}

func TestComputeBalanceDropsFullyCancelled(t *testing.T) {
	up := recipe.Recipe{FluidOutputs: []recipe.Ingredient{ing(1000, "nitricacid", "Nitric Acid")}}
	down := recipe.Recipe{
		FluidInputs:  []recipe.Ingredient{ing(1000, "nitricacid", "Nitric Acid")},
		FluidOutputs: []recipe.Ingredient{ing(500, "hydrogen", "Hydrogen")},
	}

	b, err := ComputeBalance(up, down)
	require.NoError(t, err)
	assert.Empty(t, b.InputFluids)
	assert.Equal(t, []recipe.Ingredient{ing(500, "hydrogen", "Hydrogen")}, b.OutputFluids)

	assert.NotNil(t, b.InputFluids)
	assert.NotNil(t, b.InputItems)
	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"inputFluids":[]`)
	assert.Contains(t, string(data), `"inputItems":[]`)
	assert.NotContains(t, string(data), "null")
}

func TestComputeStatsEmptyChannels(t *testing.T) {
	s, err := ComputeStats(recipe.Recipe{ItemInputs: []recipe.Ingredient{ing(1, "cell", "Empty Cell")}})
	require.NoError(t, err)
	assert.NotNil(t, s.InputFluids)
	assert.NotNil(t, s.OutputFluids)
	assert.NotNil(t, s.OutputItems)
}

func TestComputeBalancePairwiseMinimum(t *testing.T) {
	up := recipe.Recipe{ItemOutputs: []recipe.Ingredient{ing(3, "cell", "Cell"), ing(2, "cell", "Cell")}}
	down := recipe.Recipe{ItemInputs: []recipe.Ingredient{ing(4, "cell", "Cell"), ing(1, "cell", "Cell")}}

	items, fluids, err := Intermediates(up, down)
	require.NoError(t, err)
	// min(3,4)+min(3,1)+min(2,4)+min(2,1)
	assert.Equal(t, map[string]int{"cell": 7}, items)
	assert.Empty(t, fluids)

	b, err := ComputeBalance(up, down)
	require.NoError(t, err)
	assert.Empty(t, b.InputItems)
	assert.Empty(t, b.OutputItems)
}

func TestComputeBalanceMatchesStatsWithoutOverlap(t *testing.T) {
	up := recipe.Recipe{
		ItemInputs:  []recipe.Ingredient{ing(1, "iron", "Iron Dust")},
		ItemOutputs: []recipe.Ingredient{ing(1, "ironingot", "Iron Ingot")},
	}
	down := recipe.Recipe{
		FluidInputs:  []recipe.Ingredient{ing(1000, "water", "Water")},
		FluidOutputs: []recipe.Ingredient{ing(1000, "steam", "Steam")},
	}

	b, err := ComputeBalance(up, down)
	require.NoError(t, err)
	s, err := ComputeStats(up, down)
	require.NoError(t, err)
	assert.Equal(t, s.Totals, b.Totals)
}

func TestBalanceSelfConsistency(t *testing.T) {
	up := recipe.Recipe{
		FluidInputs:  []recipe.Ingredient{ing(3000, "no2", "Nitrogen Dioxide"), ing(1000, "water", "Water")},
		FluidOutputs: []recipe.Ingredient{ing(2000, "hno3", "Nitric Acid"), ing(1000, "no", "Nitric Oxide")},
	}
	down := recipe.Recipe{
		FluidInputs:  []recipe.Ingredient{ing(1000, "no", "Nitric Oxide"), ing(500, "oxygen", "Oxygen")},
		FluidOutputs: []recipe.Ingredient{ing(1000, "no2", "Nitrogen Dioxide")},
	}

	b, err := ComputeBalance(up, down)
	require.NoError(t, err)
	s, err := ComputeStats(up, down)
	require.NoError(t, err)
	_, k, err := Intermediates(up, down)
	require.NoError(t, err)

	gross := byID(s.InputFluids)
	for id, q := range byID(s.OutputFluids) {
		gross[id] += q
	}
	net := byID(b.InputFluids)
	for id, q := range byID(b.OutputFluids) {
		net[id] += q
	}
	for id, q := range k {
		gross[id] -= 2 * q
	}
	for id, q := range gross {
		assert.Equal(t, q, net[id], id)
	}
}

func TestBalanceOf(t *testing.T) {
	up, down := nitricOxideChain()

	_, err := BalanceOf([]recipe.Recipe{up})
	assert.True(t, errors.Is(err, recipe.ErrEmptyRecipeSet))

	_, err = BalanceOf([]recipe.Recipe{up, down, up})
	assert.True(t, errors.Is(err, recipe.ErrEmptyRecipeSet))

	b, err := BalanceOf([]recipe.Recipe{up, down})
	require.NoError(t, err)
	assert.Len(t, b.OutputFluids, 1)
}

func TestComputeBalanceMissingIdentity(t *testing.T) {
	up := recipe.Recipe{FluidOutputs: []recipe.Ingredient{{Amount: 0}}}
	_, err := ComputeBalance(up, recipe.Recipe{})
	assert.True(t, errors.Is(err, recipe.ErrMissingIdentity))
}

func TestComputeStats(t *testing.T) {
	r := recipe.Recipe{
		ItemInputs:   []recipe.Ingredient{ing(1, "cell", "Empty Cell")},
		FluidInputs:  []recipe.Ingredient{ing(1000, "water", "Water")},
		ItemOutputs:  []recipe.Ingredient{ing(1, "watercell", "Water Cell")},
		FluidOutputs: nil,
	}

	tests := []struct {
		name    string
		recipes []recipe.Recipe
		check   func(t *testing.T, s *Stats)
		wantErr error
	}{
		{
			name:    "no recipes",
			wantErr: recipe.ErrEmptyRecipeSet,
		},
		{
			name:    "single recipe",
			recipes: []recipe.Recipe{r},
			check: func(t *testing.T, s *Stats) {
				assert.Equal(t, 1, s.Recipes)
				assert.Equal(t, r.ItemInputs, s.InputItems)
				assert.Empty(t, s.OutputFluids)
			},
		},
		{
			name:    "three recipes",
			recipes: []recipe.Recipe{r, r, r},
			check: func(t *testing.T, s *Stats) {
				assert.Equal(t, []recipe.Ingredient{ing(3000, "water", "Water")}, s.InputFluids)
				assert.Equal(t, []recipe.Ingredient{ing(3, "watercell", "Water Cell")}, s.OutputItems)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ComputeStats(tt.recipes...)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestTotalsLines(t *testing.T) {
	up, down := nitricOxideChain()
	b, err := ComputeBalance(up, down)
	require.NoError(t, err)
	assert.Equal(t, []string{"in  1x Water", "out 1000l Nitric Oxide"}, b.Lines())
}
