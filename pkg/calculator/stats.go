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

// Stats is the gross combined flow of a set of recipes.
type Stats struct {
	Totals `yaml:",inline"`

	Recipes int `json:"recipes" yaml:"recipes"`
}

// ComputeStats aggregates the inputs and outputs of one or more recipes per
// channel without any cancellation.
func ComputeStats(recipes ...recipe.Recipe) (*Stats, error) {
	if len(recipes) == 0 {
		return nil, fmt.Errorf("stats: %w", recipe.ErrEmptyRecipeSet)
	}

	s := &Stats{Recipes: len(recipes)}
	for _, ch := range recipe.Channels() {
		ins := make([][]recipe.Ingredient, len(recipes))
		outs := make([][]recipe.Ingredient, len(recipes))
		for i, r := range recipes {
			ins[i] = r.Inputs(ch)
			outs[i] = r.Outputs(ch)
		}

		inputs, err := Aggregate(ins...)
		if err != nil {
			return nil, fmt.Errorf("%s inputs: %w", ch, err)
		}
		outputs, err := Aggregate(outs...)
		if err != nil {
			return nil, fmt.Errorf("%s outputs: %w", ch, err)
		}
		s.set(ch, inputs, outputs)
	}
	return s, nil
}
