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

import "github.com/gtnh-tools/gtcalc/pkg/recipe"

// Totals is the four-list shape shared by balance and stats results.
type Totals struct {
	InputItems   []recipe.Ingredient `json:"inputItems" yaml:"inputItems"`
	InputFluids  []recipe.Ingredient `json:"inputFluids" yaml:"inputFluids"`
	OutputItems  []recipe.Ingredient `json:"outputItems" yaml:"outputItems"`
	OutputFluids []recipe.Ingredient `json:"outputFluids" yaml:"outputFluids"`
}

// Inputs returns the input list of the given channel.
func (t *Totals) Inputs(ch recipe.Channel) []recipe.Ingredient {
	if ch == recipe.ChannelFluid {
		return t.InputFluids
	}
	return t.InputItems
}

// Outputs returns the output list of the given channel.
func (t *Totals) Outputs(ch recipe.Channel) []recipe.Ingredient {
	if ch == recipe.ChannelFluid {
		return t.OutputFluids
	}
	return t.OutputItems
}

func (t *Totals) set(ch recipe.Channel, inputs, outputs []recipe.Ingredient) {
	if ch == recipe.ChannelFluid {
		t.InputFluids, t.OutputFluids = inputs, outputs
		return
	}
	t.InputItems, t.OutputItems = inputs, outputs
}

// Lines renders every entry as a display line, inputs first.
func (t *Totals) Lines() []string {
	var lines []string
	for _, ch := range recipe.Channels() {
		for _, ing := range t.Inputs(ch) {
			lines = append(lines, "in  "+ing.Format(ch))
		}
	}
	for _, ch := range recipe.Channels() {
		for _, ing := range t.Outputs(ch) {
			lines = append(lines, "out "+ing.Format(ch))
		}
	}
	return lines
}
