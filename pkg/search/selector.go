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
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	gterrors "github.com/gtnh-tools/gtcalc/pkg/errors"
	"github.com/gtnh-tools/gtcalc/pkg/recipe"
)

const maxSuggestions = 3

// Selector picks a single recipe out of a catalog: the Index-th recipe of
// Machine that satisfies every predicate in Where.
//
// The text form is
//
//	MACHINE[?PRED(;PRED)*][#INDEX]
//	PRED = (in|out).(item|fluid)=NAME[@AMOUNT]
//
// for example
//
//	Large Chemical Reactor?out.fluid=Nitric Acid@2000;in.fluid=Nitrogen Dioxide@3000
//
// A trailing "#" is read as the index only when digits follow it, so names
// may contain "#". A name that itself ends in "#N" needs an explicit index:
//
//	Circuit Assembler?out.item=Circuit #2#0
type Selector struct {
	Machine string            `json:"machine" yaml:"machine" validate:"required"`
	Index   int               `json:"index,omitempty" yaml:"index,omitempty" validate:"gte=0"`
	Where   []IngredientQuery `json:"where,omitempty" yaml:"where,omitempty" validate:"dive"`
}

// String renders the selector in its text form.
func (s Selector) String() string {
	var b strings.Builder
	b.WriteString(s.Machine)
	for i, q := range s.Where {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte(';')
		}
		b.WriteString(q.String())
	}
	if s.Index > 0 || hasIndexSuffix(b.String()) {
		b.WriteString("#" + strconv.Itoa(s.Index))
	}
	return b.String()
}

// parseIndex accepts a non-empty run of decimal digits, ignoring
// surrounding spaces.
func parseIndex(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	idx, err := strconv.Atoi(text)
	return idx, err == nil
}

func hasIndexSuffix(text string) bool {
	i := strings.LastIndexByte(text, '#')
	if i < 0 {
		return false
	}
	_, ok := parseIndex(text[i+1:])
	return ok
}

// selectorFields avoids recursion when decoding the object form.
type selectorFields Selector

// UnmarshalJSON accepts either the text form or the object form.
func (s *Selector) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		parsed, err := ParseSelector(text)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}
	var f selectorFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*s = Selector(f)
	return nil
}

// UnmarshalYAML accepts either the text form or the mapping form.
func (s *Selector) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		parsed, err := ParseSelector(node.Value)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}
	var f selectorFields
	if err := node.Decode(&f); err != nil {
		return err
	}
	*s = Selector(f)
	return nil
}

// ParseSelector parses the text form of a Selector.
func ParseSelector(text string) (Selector, error) {
	var s Selector
	rest := strings.TrimSpace(text)

	if i := strings.LastIndexByte(rest, '#'); i >= 0 {
		if idx, ok := parseIndex(rest[i+1:]); ok {
			s.Index = idx
			rest = rest[:i]
		}
	}

	machine, preds, hasPreds := strings.Cut(rest, "?")
	s.Machine = strings.TrimSpace(machine)
	if s.Machine == "" {
		return s, gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			"selector has no machine name", map[string]any{"selector": text})
	}

	if !hasPreds {
		return s, nil
	}
	for _, p := range strings.Split(preds, ";") {
		if strings.TrimSpace(p) == "" {
			continue
		}
		q, err := parsePredicate(p)
		if err != nil {
			return s, gterrors.WrapWithContext(gterrors.ErrCodeInvalidRequest,
				"invalid selector predicate", err, map[string]any{"selector": text, "predicate": p})
		}
		s.Where = append(s.Where, q)
	}
	return s, nil
}

func parsePredicate(p string) (IngredientQuery, error) {
	var q IngredientQuery

	key, value, ok := strings.Cut(p, "=")
	if !ok {
		return q, fmt.Errorf("expected KIND.CHANNEL=NAME, got %q", p)
	}
	kind, channel, ok := strings.Cut(strings.TrimSpace(key), ".")
	if !ok {
		return q, fmt.Errorf("expected KIND.CHANNEL, got %q", key)
	}

	var err error
	if q.Kind, err = recipe.ParseKind(kind); err != nil {
		return q, err
	}
	if q.Channel, err = recipe.ParseChannel(channel); err != nil {
		return q, err
	}

	name := strings.TrimSpace(value)
	if i := strings.LastIndexByte(name, '@'); i >= 0 {
		if amount, err := strconv.Atoi(name[i+1:]); err == nil {
			q.Amount = Int(amount)
			name = strings.TrimSpace(name[:i])
		}
	}
	if name == "" {
		return q, fmt.Errorf("empty ingredient name in %q", p)
	}
	q.Name = name
	return q, nil
}

// Resolve finds the recipe selected by s. Machine names are matched exactly
// first and then case-insensitively. Unknown machines produce a NOT_FOUND
// error whose context lists the closest machine names; a negative index is
// rejected with INVALID_REQUEST.
func Resolve(c *recipe.Catalog, s Selector) (recipe.Recipe, error) {
	if s.Index < 0 {
		return recipe.Recipe{}, gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			"selector index must not be negative", map[string]any{
				"selector": s.String(),
				"index":    s.Index,
			})
	}

	m, err := FindMachine(c, s.Machine)
	if err != nil {
		return recipe.Recipe{}, err
	}

	matched, err := FilterAll(m.Recipes, s.Where...)
	if err != nil {
		return recipe.Recipe{}, fmt.Errorf("selector %q: %w", s, err)
	}
	if s.Index >= len(matched) {
		return recipe.Recipe{}, gterrors.NewWithContext(gterrors.ErrCodeNotFound,
			"no recipe matches selector", map[string]any{
				"selector": s.String(),
				"matches":  len(matched),
			})
	}
	return matched[s.Index], nil
}

// ResolveAll resolves each selector in order.
func ResolveAll(c *recipe.Catalog, selectors ...Selector) ([]recipe.Recipe, error) {
	out := make([]recipe.Recipe, 0, len(selectors))
	for _, s := range selectors {
		r, err := Resolve(c, s)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// FindMachine looks up a machine by name, falling back to a
// case-insensitive match.
func FindMachine(c *recipe.Catalog, name string) (recipe.Machine, error) {
	if m, ok := c.Machine(name); ok {
		return m, nil
	}

	fold := cases.Fold()
	want := fold.String(name)
	for _, m := range c.Machines() {
		if fold.String(m.Name) == want {
			return m, nil
		}
	}

	return recipe.Machine{}, gterrors.NewWithContext(gterrors.ErrCodeNotFound,
		fmt.Sprintf("machine %q not found", name), map[string]any{
			"machine":     name,
			"suggestions": Suggest(c.MachineNames(), name),
		})
}

// Suggest returns up to three candidates closest to name by edit distance.
func Suggest(candidates []string, name string) []string {
	fold := cases.Fold()
	want := fold.String(name)

	type scored struct {
		name string
		dist int
	}
	ranked := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, scored{name: c, dist: levenshtein.ComputeDistance(want, fold.String(c))})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].dist < ranked[j].dist
	})

	out := make([]string, 0, maxSuggestions)
	for _, r := range ranked {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, r.name)
	}
	return out
}

// Chain is a two-step production chain described by selectors.
type Chain struct {
	Upstream   Selector `json:"upstream" yaml:"upstream"`
	Downstream Selector `json:"downstream" yaml:"downstream"`
}

// Resolve returns the upstream and downstream recipes of the chain.
func (ch Chain) Resolve(c *recipe.Catalog) (recipe.Recipe, recipe.Recipe, error) {
	up, err := Resolve(c, ch.Upstream)
	if err != nil {
		return recipe.Recipe{}, recipe.Recipe{}, fmt.Errorf("upstream: %w", err)
	}
	down, err := Resolve(c, ch.Downstream)
	if err != nil {
		return recipe.Recipe{}, recipe.Recipe{}, fmt.Errorf("downstream: %w", err)
	}
	return up, down, nil
}
