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

package schema

import (
	"errors"
	"fmt"
	"strings"
)

// MaxTotalBits is the combined bit budget for all components in a schema.
// One bit of the 32-bit build-version field is reserved for the sign,
// keeping every packed value non-negative.
const MaxTotalBits = 31

// Error types for schema validation failures
var (
	ErrEmptySchema       = errors.New("schema must not be empty")
	ErrBlankName         = errors.New("component name must not be blank")
	ErrNonPositiveWidth  = errors.New("component sizes must be positive")
	ErrDuplicateName     = errors.New("duplicate component names")
	ErrBitBudgetExceeded = errors.New("combined components exceed the schema bit budget")
)

// Component is one named, fixed-width slice of a version.
// The zero value is invalid; Bits must be positive and Name non-blank.
type Component struct {
	Name string `json:"name" yaml:"name"`
	Bits int    `json:"bits" yaml:"bits"`
}

// MaxValue returns the largest value the component can hold (2^Bits - 1).
func (c Component) MaxValue() int64 {
	return (int64(1) << c.Bits) - 1
}

// Schema is a validated, immutable, ordered list of components.
// The first component is the most significant in the packed value.
// Construct via New, NewFromWidths, or MustNew; the zero value is empty
// and fails any downstream use.
type Schema struct {
	components []Component
}

// AutoName returns the positional name assigned to width-only components.
func AutoName(i int) string {
	return fmt.Sprintf("Component %d", i)
}

// New validates the given components and returns an immutable Schema.
// It fails fast on the first violation; no partial schema is ever returned.
func New(components ...Component) (Schema, error) {
	if len(components) == 0 {
		return Schema{}, ErrEmptySchema
	}

	seen := make(map[string]struct{}, len(components))
	total := 0
	for i, c := range components {
		if strings.TrimSpace(c.Name) == "" {
			return Schema{}, fmt.Errorf("%w: component at position %d", ErrBlankName, i)
		}
		if c.Bits <= 0 {
			return Schema{}, fmt.Errorf("%w, but %s is zero or negative", ErrNonPositiveWidth, c.Name)
		}
		if _, ok := seen[c.Name]; ok {
			return Schema{}, fmt.Errorf("%w: %q", ErrDuplicateName, c.Name)
		}
		seen[c.Name] = struct{}{}
		total += c.Bits
	}

	if total > MaxTotalBits {
		return Schema{}, fmt.Errorf("%w of %d bits, but total is %d",
			ErrBitBudgetExceeded, MaxTotalBits, total)
	}

	s := Schema{components: make([]Component, len(components))}
	copy(s.components, components)
	return s, nil
}

// NewFromWidths builds a schema from raw bit widths, assigning positional
// names "Component 0", "Component 1", ... in order.
func NewFromWidths(widths ...int) (Schema, error) {
	components := make([]Component, len(widths))
	for i, w := range widths {
		components[i] = Component{Name: AutoName(i), Bits: w}
	}
	return New(components...)
}

// MustNew is like New but panics on validation failure.
// Only use this for hardcoded schemas or in tests.
func MustNew(components ...Component) Schema {
	s, err := New(components...)
	if err != nil {
		panic(fmt.Sprintf("schema.MustNew: %v", err))
	}
	return s
}

// Len returns the number of components in the schema.
func (s Schema) Len() int {
	return len(s.components)
}

// At returns the component at position i.
// It panics if i is out of range, matching slice semantics.
func (s Schema) At(i int) Component {
	return s.components[i]
}

// Components returns a copy of the ordered component list.
func (s Schema) Components() []Component {
	out := make([]Component, len(s.components))
	copy(out, s.components)
	return out
}

// TotalBits returns the combined width of all components.
func (s Schema) TotalBits() int {
	total := 0
	for _, c := range s.components {
		total += c.Bits
	}
	return total
}

// String returns a compact description like "Major(7).Minor(19).Patch(5)".
func (s Schema) String() string {
	parts := make([]string, len(s.components))
	for i, c := range s.components {
		parts[i] = fmt.Sprintf("%s(%d)", c.Name, c.Bits)
	}
	return strings.Join(parts, ".")
}
