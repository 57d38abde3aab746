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
	"encoding/binary"
	"hash/fnv"

	"github.com/vpack/vpack/pkg/schema"
)

// maxComponents bounds the zero-padded hash input. No valid schema can hold
// more components than it has bits.
const maxComponents = schema.MaxTotalBits

// valueAt returns the component value at position i, or 0 past the end.
// Zero-padding gives codes of different shapes a common comparison domain.
func (c Code) valueAt(i int) int64 {
	if i < len(c.components) {
		return c.components[i].Value
	}
	return 0
}

// Compare returns -1, 0, or 1 ordering c against other. The walk is
// positional, not name-based: position 0 of one schema is compared against
// position 0 of the other regardless of declared widths or names, and a
// missing trailing component counts as 0. Raw encoded values are never
// consulted; they are not comparable across shapes.
func (c Code) Compare(other Code) int {
	n := len(c.components)
	if len(other.components) > n {
		n = len(other.components)
	}

	for i := 0; i < n; i++ {
		a, b := c.valueAt(i), other.valueAt(i)
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
	}
	return 0
}

// Equal reports whether c and other order the same. It is consistent with
// Compare returning 0: reflexive, symmetric, and transitive.
func (c Code) Equal(other Code) bool {
	return c.Compare(other) == 0
}

// Hash returns a digest of the component values zero-padded to the maximum
// component count, so codes that compare equal hash identically even across
// schemas. The encoded integer is deliberately not used: it differs between
// shapes that compare equal.
func (c Code) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for i := 0; i < maxComponents; i++ {
		binary.BigEndian.PutUint64(buf[:], uint64(c.valueAt(i)))
		h.Write(buf[:])
	}
	return h.Sum64()
}
