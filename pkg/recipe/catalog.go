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

import "encoding/json"

// Machine groups the recipes processed by one machine type.
type Machine struct {
	Name    string   `json:"n" yaml:"n"`
	Recipes []Recipe `json:"recs" yaml:"recs"`
}

// Source is one section of a recipe export. Flat records are kept raw and
// only counted; machine-based recipes are decoded.
type Source struct {
	Type     string            `json:"type" yaml:"type"`
	Recipes  []json.RawMessage `json:"recipes,omitempty" yaml:"-"`
	Machines []Machine         `json:"machines,omitempty" yaml:"machines,omitempty"`
}

// Catalog is the top-level recipe export document.
type Catalog struct {
	Sources []Source `json:"sources" yaml:"sources"`
}

// RecipeCount returns the number of flat records plus machine recipes.
func (c *Catalog) RecipeCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, s := range c.Sources {
		n += len(s.Recipes)
		for _, m := range s.Machines {
			n += len(m.Recipes)
		}
	}
	return n
}

// Machines returns every machine of every source, in source order.
func (c *Catalog) Machines() []Machine {
	if c == nil {
		return nil
	}
	var out []Machine
	for _, s := range c.Sources {
		out = append(out, s.Machines...)
	}
	return out
}

// Machine returns the first machine with the exact given name.
func (c *Catalog) Machine(name string) (Machine, bool) {
	for _, m := range c.Machines() {
		if m.Name == name {
			return m, true
		}
	}
	return Machine{}, false
}

// MachineNames returns the distinct machine names in source order.
func (c *Catalog) MachineNames() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, m := range c.Machines() {
		if _, ok := seen[m.Name]; ok {
			continue
		}
		seen[m.Name] = struct{}{}
		names = append(names, m.Name)
	}
	return names
}

// Merge appends the sources of other catalogs to c.
func (c *Catalog) Merge(others ...*Catalog) {
	for _, o := range others {
		if o == nil {
			continue
		}
		c.Sources = append(c.Sources, o.Sources...)
	}
}
