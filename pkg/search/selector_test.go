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
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	gterrors "github.com/gtnh-tools/gtcalc/pkg/errors"
	"github.com/gtnh-tools/gtcalc/pkg/recipe"
)

func testCatalog() *recipe.Catalog {
	return &recipe.Catalog{Sources: []recipe.Source{
		{Type: "gregtech", Machines: []recipe.Machine{
			{Name: "Large Chemical Reactor", Recipes: []recipe.Recipe{nitricAcidSmall, nitricAcid}},
			{Name: "Canner", Recipes: []recipe.Recipe{waterCell}},
			{Name: "Chemical Reactor", Recipes: []recipe.Recipe{nitricAcidSmall}},
		}},
	}}
}

func TestParseSelector(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Selector
		wantErr bool
	}{
		{
			name: "machine only",
			text: "Canner",
			want: Selector{Machine: "Canner"},
		},
		{
			name: "index",
			text: "Canner#2",
			want: Selector{Machine: "Canner", Index: 2},
		},
		{
			name: "predicates",
			text: "Large Chemical Reactor?out.fluid=Nitric Acid@2000;in.fluid=Nitrogen Dioxide@3000",
			want: Selector{
				Machine: "Large Chemical Reactor",
				Where: []IngredientQuery{
					{Kind: recipe.KindOutput, Channel: recipe.ChannelFluid, Name: "Nitric Acid", Amount: Int(2000)},
					{Kind: recipe.KindInput, Channel: recipe.ChannelFluid, Name: "Nitrogen Dioxide", Amount: Int(3000)},
				},
			},
		},
		{
			name: "predicate without amount and index",
			text: "Canner?input.item=Empty Cell#0",
			want: Selector{
				Machine: "Canner",
				Where:   []IngredientQuery{{Kind: recipe.KindInput, Channel: recipe.ChannelItem, Name: "Empty Cell"}},
			},
		},
		{
			name: "at sign in name kept",
			text: "Canner?in.item=Cell@Home",
			want: Selector{
				Machine: "Canner",
				Where:   []IngredientQuery{{Kind: recipe.KindInput, Channel: recipe.ChannelItem, Name: "Cell@Home"}},
			},
		},
		{name: "empty", text: "", wantErr: true},
		{
			name: "hash without digits is part of the name",
			text: "Canner?in.item=Tier #A",
			want: Selector{
				Machine: "Canner",
				Where:   []IngredientQuery{{Kind: recipe.KindInput, Channel: recipe.ChannelItem, Name: "Tier #A"}},
			},
		},
		{
			name: "name ending in hash digits with explicit index",
			text: "Circuit Assembler?out.item=Circuit #2#0",
			want: Selector{
				Machine: "Circuit Assembler",
				Where:   []IngredientQuery{{Kind: recipe.KindOutput, Channel: recipe.ChannelItem, Name: "Circuit #2"}},
			},
		},
		{name: "hash in machine name", text: "Canner#x", want: Selector{Machine: "Canner#x"}},
		{name: "negative index is not an index", text: "Canner#-1", want: Selector{Machine: "Canner#-1"}},
		{name: "bad kind", text: "Canner?sideways.item=Cell", wantErr: true},
		{name: "bad channel", text: "Canner?in.gas=Cell", wantErr: true},
		{name: "missing name", text: "Canner?in.item=", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSelector(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, gterrors.ErrCodeInvalidRequest, gterrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectorStringRoundTrip(t *testing.T) {
	for _, text := range []string{
		"Large Chemical Reactor?out.fluid=Nitric Acid@2000;in.fluid=Nitrogen Dioxide#1",
		"Circuit Assembler?out.item=Circuit #2#0",
		"Canner?in.item=Tier #A",
	} {
		s, err := ParseSelector(text)
		require.NoError(t, err)
		assert.Equal(t, text, s.String())

		again, err := ParseSelector(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, again)
	}
}

func TestResolve(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name     string
		selector string
		object   *Selector
		want     recipe.Recipe
		wantCode gterrors.ErrorCode
	}{
		{
			name:     "first recipe of machine",
			selector: "Canner",
			want:     waterCell,
		},
		{
			name:     "filtered",
			selector: "Large Chemical Reactor?out.fluid=Nitric Acid@2000;in.fluid=Nitrogen Dioxide@3000",
			want:     nitricAcid,
		},
		{
			name:     "index into matches",
			selector: "Large Chemical Reactor?out.fluid=Nitric Acid#1",
			want:     nitricAcid,
		},
		{
			name:     "case insensitive machine",
			selector: "large chemical REACTOR",
			want:     nitricAcidSmall,
		},
		{
			name:     "no match",
			selector: "Canner?out.item=Lava Cell",
			wantCode: gterrors.ErrCodeNotFound,
		},
		{
			name:     "index out of range",
			selector: "Canner#3",
			wantCode: gterrors.ErrCodeNotFound,
		},
		{
			name:     "unknown machine",
			selector: "Large Chemical Reacter",
			wantCode: gterrors.ErrCodeNotFound,
		},
		{
			name:     "negative index",
			object:   &Selector{Machine: "Canner", Index: -1},
			wantCode: gterrors.ErrCodeInvalidRequest,
		},
		{
			name: "unknown kind",
			object: &Selector{Machine: "Canner", Where: []IngredientQuery{
				{Kind: "sideways", Channel: recipe.ChannelItem, Name: "Empty Cell"},
			}},
			wantCode: gterrors.ErrCodeInvalidRequest,
		},
		{
			name: "unknown channel",
			object: &Selector{Machine: "Canner", Where: []IngredientQuery{
				{Kind: recipe.KindInput, Channel: "gas", Name: "Empty Cell"},
			}},
			wantCode: gterrors.ErrCodeInvalidRequest,
		},
		{
			name: "short kind must be parsed first",
			object: &Selector{Machine: "Canner", Where: []IngredientQuery{
				{Kind: "out", Channel: recipe.ChannelItem, Name: "Water Cell"},
			}},
			wantCode: gterrors.ErrCodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Selector
			if tt.object != nil {
				s = *tt.object
			} else {
				var err error
				s, err = ParseSelector(tt.selector)
				require.NoError(t, err)
			}

			got, err := Resolve(c, s)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, gterrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindMachineSuggestions(t *testing.T) {
	_, err := FindMachine(testCatalog(), "Large Chemical Reacter")
	require.Error(t, err)

	var se *gterrors.StructuredError
	require.True(t, errors.As(err, &se))
	suggestions, ok := se.Context["suggestions"].([]string)
	require.True(t, ok)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "Large Chemical Reactor", suggestions[0])
	assert.LessOrEqual(t, len(suggestions), 3)
}

func TestSuggest(t *testing.T) {
	got := Suggest([]string{"Canner", "Centrifuge", "Macerator", "Compressor", "Assembler"}, "cnner")
	require.Len(t, got, 3)
	assert.Equal(t, "Canner", got[0])
	assert.Empty(t, Suggest(nil, "anything"))
}

func TestChainDecode(t *testing.T) {
	yamlDoc := `
upstream: "Large Chemical Reactor?out.fluid=Nitric Acid@2000"
downstream:
  machine: Canner
  where:
    - kind: input
      channel: fluid
      name: Water
`
	var ch Chain
	require.NoError(t, yaml.Unmarshal([]byte(yamlDoc), &ch))
	assert.Equal(t, "Large Chemical Reactor", ch.Upstream.Machine)
	require.Len(t, ch.Upstream.Where, 1)
	assert.Equal(t, 2000, *ch.Upstream.Where[0].Amount)
	assert.Equal(t, "Canner", ch.Downstream.Machine)

	up, down, err := ch.Resolve(testCatalog())
	require.NoError(t, err)
	assert.Equal(t, nitricAcid, up)
	assert.Equal(t, waterCell, down)

	jsonDoc := `{"upstream": "Canner", "downstream": {"machine": "Chemical Reactor", "index": 0}}`
	var jc Chain
	require.NoError(t, json.Unmarshal([]byte(jsonDoc), &jc))
	assert.Equal(t, Selector{Machine: "Canner"}, jc.Upstream)
	assert.Equal(t, Selector{Machine: "Chemical Reactor"}, jc.Downstream)

	_, _, err = Chain{Upstream: Selector{Machine: "Nope"}, Downstream: jc.Downstream}.Resolve(testCatalog())
	assert.Equal(t, gterrors.ErrCodeNotFound, gterrors.CodeOf(err))
}

func TestChainResolveRejectsInvalidObjectForm(t *testing.T) {
	docs := map[string]string{
		"negative index": `
upstream: {machine: Canner, index: -1}
downstream: Canner
`,
		"unknown kind and channel": `
upstream: Canner
downstream:
  machine: Canner
  where:
    - {kind: sideways, channel: gas, name: Empty Cell}
`,
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			var ch Chain
			require.NoError(t, yaml.Unmarshal([]byte(doc), &ch))

			require.NotPanics(t, func() {
				_, _, err := ch.Resolve(testCatalog())
				require.Error(t, err)
				assert.Equal(t, gterrors.ErrCodeInvalidRequest, gterrors.CodeOf(err))
			})
		})
	}
}
