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
	"errors"
	"fmt"
	"strings"

	"github.com/vpack/vpack/pkg/schema"
)

// Error types for version code creation failures
var (
	ErrTooFewValues     = errors.New("not enough values for schema")
	ErrTooManyValues    = errors.New("too many values for schema")
	ErrValueNegative    = errors.New("component value must not be negative")
	ErrValueTooLarge    = errors.New("component value exceeds its bit width")
	ErrUnknownComponent = errors.New("unknown component")
)

// Factory mints Code values from raw integer tuples against one fixed,
// validated schema. It is the only legitimate producer of codes, which
// guarantees every code sharing a factory has the same shape.
type Factory struct {
	schema schema.Schema
}

// New binds a factory to the given schema.
func New(s schema.Schema) Factory {
	return Factory{schema: s}
}

// Schema returns the schema the factory is bound to.
func (f Factory) Schema() schema.Schema {
	return f.schema
}

// Create validates one value per schema component, in schema order, and
// returns a new immutable Code. It is pure: no state is shared between the
// factory and the codes it produces.
func (f Factory) Create(values ...int64) (Code, error) {
	n := f.schema.Len()

	if len(values) < n {
		missing := make([]string, 0, n-len(values))
		for i := len(values); i < n; i++ {
			missing = append(missing, f.schema.At(i).Name)
		}
		createFailures.WithLabelValues(reasonArity).Inc()
		return Code{}, fmt.Errorf("%w: missing %s", ErrTooFewValues, humanJoin(missing))
	}
	if len(values) > n {
		createFailures.WithLabelValues(reasonArity).Inc()
		return Code{}, fmt.Errorf("%w: expected %d values, got %d", ErrTooManyValues, n, len(values))
	}

	components := make([]Component, n)
	for i, v := range values {
		c := f.schema.At(i)
		if err := checkRange(c.Name, c.Bits, v); err != nil {
			createFailures.WithLabelValues(reasonRange).Inc()
			return Code{}, err
		}
		components[i] = Component{Name: c.Name, Bits: c.Bits, Value: v}
	}

	codesCreated.Inc()
	return Code{components: components, encoded: encode(components)}, nil
}

// checkRange validates a single component value against [0, 2^bits-1].
func checkRange(name string, bits int, value int64) error {
	if value < 0 {
		return fmt.Errorf("%w: %s is %d", ErrValueNegative, name, value)
	}
	maxValue := (int64(1) << bits) - 1
	if value > maxValue {
		return fmt.Errorf("%w: %s must be no more than %d (2^%d-1), but is %d",
			ErrValueTooLarge, name, maxValue, bits, value)
	}
	return nil
}

// humanJoin renders a name list the way a person would say it:
// "A", "A and B", "A, B and C".
func humanJoin(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
