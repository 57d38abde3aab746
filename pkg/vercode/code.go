// Copyright (c) 2026, VPack Authors.  All rights reserved.
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

package vercode

import (
	"fmt"
	"strings"
)

// Component is one slice of an encoded version: its schema entry plus the
// value it carries. Value is always within [0, 2^Bits-1] for codes produced
// by a Factory.
type Component struct {
	Name  string `json:"name" yaml:"name"`
	Bits  int    `json:"bits" yaml:"bits"`
	Value int64  `json:"value" yaml:"value"`
}

// Code is an immutable ordered sequence of version components with a
// derived single-integer encoding. Codes are created only through a
// Factory; the zero value encodes to 0 with no components.
type Code struct {
	components []Component
	encoded    int64
}

// encode packs components most-significant-first: the fold runs from the
// last component to the first, shifting each value left by the combined
// width of all narrower components.
func encode(components []Component) int64 {
	var packed int64
	shift := 0
	for i := len(components) - 1; i >= 0; i-- {
		packed |= components[i].Value << shift
		shift += components[i].Bits
	}
	return packed
}

// EncodedValue returns the single-integer form of the code. The result is
// non-negative and fits the 31-bit schema budget, so it is safe to store in
// a 32-bit signed build-version field.
func (c Code) EncodedValue() int64 {
	return c.encoded
}

// Components returns a copy of the ordered component list.
func (c Code) Components() []Component {
	out := make([]Component, len(c.components))
	copy(out, c.components)
	return out
}

// Len returns the number of components in the code.
func (c Code) Len() int {
	return len(c.components)
}

// Get returns the value of the named component. The second return is false
// if no component with that name exists, or if the matching component has
// zero width (a guard against placeholder components). Lookup is by exact
// name; first match wins.
func (c Code) Get(name string) (int64, bool) {
	for _, comp := range c.components {
		if comp.Name == name {
			if comp.Bits == 0 {
				return 0, false
			}
			return comp.Value, true
		}
	}
	return 0, false
}

// With returns a new Code with the named component replaced by value,
// validated against that component's bit width. The receiver is unchanged.
func (c Code) With(name string, value int64) (Code, error) {
	idx := -1
	for i, comp := range c.components {
		if comp.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Code{}, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}

	if err := checkRange(c.components[idx].Name, c.components[idx].Bits, value); err != nil {
		return Code{}, err
	}

	components := make([]Component, len(c.components))
	copy(components, c.components)
	components[idx].Value = value

	return Code{components: components, encoded: encode(components)}, nil
}

// String renders the code as "<encoded> (<c1>.<c2>...)",
// e.g. "16777249 (1.1.1)".
func (c Code) String() string {
	parts := make([]string, len(c.components))
	for i, comp := range c.components {
		parts[i] = fmt.Sprintf("%d", comp.Value)
	}
	return fmt.Sprintf("%d (%s)", c.encoded, strings.Join(parts, "."))
}
