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
	"strconv"

	"github.com/gtnh-tools/gtcalc/pkg/recipe"
)

// TableHeader implements serializer.TableRenderer.
func (t *Totals) TableHeader() []string {
	return []string{"FLOW", "CHANNEL", "AMOUNT", "NAME"}
}

// TableRows implements serializer.TableRenderer, inputs first.
func (t *Totals) TableRows() [][]string {
	var rows [][]string
	for _, ch := range recipe.Channels() {
		rows = appendRows(rows, "in", ch, t.Inputs(ch))
	}
	for _, ch := range recipe.Channels() {
		rows = appendRows(rows, "out", ch, t.Outputs(ch))
	}
	return rows
}

// TableRows adds the cancelled intermediate flow after the net totals.
func (b *Balance) TableRows() [][]string {
	rows := b.Totals.TableRows()
	rows = appendRows(rows, "cancelled", recipe.ChannelItem, b.CancelledItems)
	return appendRows(rows, "cancelled", recipe.ChannelFluid, b.CancelledFluids)
}

func appendRows(rows [][]string, flow string, ch recipe.Channel, list []recipe.Ingredient) [][]string {
	for _, ing := range list {
		rows = append(rows, []string{flow, string(ch), strconv.Itoa(ing.Amount), ing.DisplayName()})
	}
	return rows
}
