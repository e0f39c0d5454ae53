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

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientIdentity(t *testing.T) {
	tests := []struct {
		name    string
		ing     Ingredient
		want    string
		wantErr error
	}{
		{
			name: "unlocalized wins",
			ing:  Ingredient{Amount: 1, UnlocalizedName: "fluid.nitricacid", LocalizedName: "Nitric Acid"},
			want: "fluid.nitricacid",
		},
		{
			name: "localized fallback",
			ing:  Ingredient{Amount: 1, LocalizedName: "Nitric Acid"},
			want: "Nitric Acid",
		},
		{
			name:    "no name",
			ing:     Ingredient{Amount: 5},
			wantErr: ErrMissingIdentity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.ing.Identity()
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIngredientFormat(t *testing.T) {
	tests := []struct {
		name string
		ing  Ingredient
		ch   Channel
		want string
	}{
		{"item", Ingredient{Amount: 64, LocalizedName: "Copper Dust"}, ChannelItem, "64x Copper Dust"},
		{"fluid", Ingredient{Amount: 1000, LocalizedName: "Water"}, ChannelFluid, "1000l Water"},
		{"unlocalized fallback", Ingredient{Amount: 2, UnlocalizedName: "gt.metaitem.01"}, ChannelItem, "2x gt.metaitem.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ing.Format(tt.ch))
		})
	}
}

func TestRecipeString(t *testing.T) {
	r := Recipe{
		ItemInputs:   []Ingredient{{Amount: 1, LocalizedName: "Empty Cell"}},
		FluidInputs:  []Ingredient{{Amount: 1000, LocalizedName: "Water"}},
		ItemOutputs:  []Ingredient{{Amount: 1, LocalizedName: "Water Cell"}},
		FluidOutputs: nil,
	}
	assert.Equal(t, "1x Empty Cell, 1000l Water -> 1x Water Cell", r.String())

	r2 := Recipe{
		FluidInputs:  []Ingredient{{Amount: 3000, LocalizedName: "Nitrogen Dioxide"}, {Amount: 1000, LocalizedName: "Oxygen"}},
		FluidOutputs: []Ingredient{{Amount: 2000, LocalizedName: "Nitric Acid"}},
	}
	assert.Equal(t, "3000l Nitrogen Dioxide + 1000l Oxygen -> 2000l Nitric Acid", r2.String())
}

func TestRecipeIngredients(t *testing.T) {
	r := Recipe{
		ItemInputs:   []Ingredient{{Amount: 1, LocalizedName: "a"}},
		ItemOutputs:  []Ingredient{{Amount: 2, LocalizedName: "b"}},
		FluidInputs:  []Ingredient{{Amount: 3, LocalizedName: "c"}},
		FluidOutputs: []Ingredient{{Amount: 4, LocalizedName: "d"}},
	}

	assert.Equal(t, "a", r.Ingredients(KindInput, ChannelItem)[0].LocalizedName)
	assert.Equal(t, "b", r.Ingredients(KindOutput, ChannelItem)[0].LocalizedName)
	assert.Equal(t, "c", r.Ingredients(KindInput, ChannelFluid)[0].LocalizedName)
	assert.Equal(t, "d", r.Ingredients(KindOutput, ChannelFluid)[0].LocalizedName)
}

func TestParseKindAndChannel(t *testing.T) {
	k, err := ParseKind("in")
	require.NoError(t, err)
	assert.Equal(t, KindInput, k)

	k, err = ParseKind("output")
	require.NoError(t, err)
	assert.Equal(t, KindOutput, k)

	_, err = ParseKind("sideways")
	assert.Error(t, err)

	ch, err := ParseChannel("fluid")
	require.NoError(t, err)
	assert.Equal(t, ChannelFluid, ch)

	_, err = ParseChannel("gas")
	assert.Error(t, err)
}

const testCatalog = `{
  "sources": [
    {"type": "shaped", "recipes": [{"o": 1}, {"o": 2}]},
    {"type": "gregtech", "machines": [
      {"n": "Large Chemical Reactor", "recs": [
        {"en": true, "dur": 100, "eut": 480, "iI": [], "iO": [],
         "fI": [{"a": 3000, "uN": "nitrogendioxide", "lN": "Nitrogen Dioxide"}],
         "fO": [{"a": 2000, "uN": "nitricacid", "lN": "Nitric Acid"}]}
      ]},
      {"n": "Electrolyzer", "recs": [
        {"en": true, "dur": 20, "eut": 30, "iI": [{"a": 1, "lN": "Empty Cell"}], "iO": [], "fI": [], "fO": []},
        {"en": false, "dur": 20, "eut": 30, "iI": [], "iO": [], "fI": [], "fO": []}
      ]}
    ]}
  ]
}`

func TestCatalogDecode(t *testing.T) {
	var c Catalog
	require.NoError(t, json.Unmarshal([]byte(testCatalog), &c))

	assert.Equal(t, 5, c.RecipeCount())
	assert.Len(t, c.Machines(), 2)
	assert.Equal(t, []string{"Large Chemical Reactor", "Electrolyzer"}, c.MachineNames())

	m, ok := c.Machine("Large Chemical Reactor")
	require.True(t, ok)
	require.Len(t, m.Recipes, 1)
	r := m.Recipes[0]
	assert.True(t, r.Enabled)
	assert.Equal(t, 480, r.EUt)
	assert.Equal(t, "nitricacid", r.FluidOutputs[0].UnlocalizedName)

	_, ok = c.Machine("large chemical reactor")
	assert.False(t, ok)
}

func TestCatalogMerge(t *testing.T) {
	a := &Catalog{Sources: []Source{{Type: "gregtech", Machines: []Machine{{Name: "A"}}}}}
	b := &Catalog{Sources: []Source{{Type: "gregtech", Machines: []Machine{{Name: "B"}}}}}
	a.Merge(b, nil)
	assert.Equal(t, []string{"A", "B"}, a.MachineNames())

	var nilCatalog *Catalog
	assert.Equal(t, 0, nilCatalog.RecipeCount())
	assert.Nil(t, nilCatalog.Machines())
}
