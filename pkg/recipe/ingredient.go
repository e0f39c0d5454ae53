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
	"fmt"
	"strconv"
)

// Channel identifies which list family an ingredient belongs to.
// Items and fluids share a shape but are never mixed.
type Channel string

const (
	ChannelItem  Channel = "item"
	ChannelFluid Channel = "fluid"
)

// Channels returns all supported channels in display order.
func Channels() []Channel {
	return []Channel{ChannelItem, ChannelFluid}
}

// ParseChannel converts a string into a Channel.
func ParseChannel(s string) (Channel, error) {
	switch Channel(s) {
	case ChannelItem, ChannelFluid:
		return Channel(s), nil
	default:
		return "", fmt.Errorf("unknown channel %q, expected %q or %q", s, ChannelItem, ChannelFluid)
	}
}

// Kind selects the input or output side of a recipe.
type Kind string

const (
	KindInput  Kind = "input"
	KindOutput Kind = "output"
)

// ParseKind converts a string into a Kind. The short forms "in" and "out"
// are accepted.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "input", "in":
		return KindInput, nil
	case "output", "out":
		return KindOutput, nil
	default:
		return "", fmt.Errorf("unknown kind %q, expected %q or %q", s, KindInput, KindOutput)
	}
}

// Ingredient is a quantity of a named item or fluid.
// An empty name means the name is absent.
type Ingredient struct {
	Amount          int    `json:"a" yaml:"a"`
	UnlocalizedName string `json:"uN,omitempty" yaml:"uN,omitempty"`
	LocalizedName   string `json:"lN,omitempty" yaml:"lN,omitempty"`
}

// Identity returns the key used to decide whether two ingredients are the
// same good: the unlocalized name if present, otherwise the localized name.
func (i Ingredient) Identity() (string, error) {
	if i.UnlocalizedName != "" {
		return i.UnlocalizedName, nil
	}
	if i.LocalizedName != "" {
		return i.LocalizedName, nil
	}
	return "", ErrMissingIdentity
}

// DisplayName prefers the localized name.
func (i Ingredient) DisplayName() string {
	if i.LocalizedName != "" {
		return i.LocalizedName
	}
	return i.UnlocalizedName
}

// Format renders the ingredient as "64x Copper Dust" or "1000l Water".
func (i Ingredient) Format(ch Channel) string {
	unit := "x"
	if ch == ChannelFluid {
		unit = "l"
	}
	return strconv.Itoa(i.Amount) + unit + " " + i.DisplayName()
}
