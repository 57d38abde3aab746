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

// Package schema defines the shape of a bit-packed version code: an ordered
// list of named components, each with a fixed bit width.
//
// # Overview
//
// A Schema declares how a multi-part version is laid out inside a single
// integer. Ordering is significant: the first component occupies the highest
// bits of the packed value, the last component the lowest. The total width of
// all components is capped at 31 bits so that every packed value fits a
// 32-bit signed build-version field without touching the sign bit.
//
// # Usage
//
// Declare a schema with explicit names:
//
//	s, err := schema.New(
//	    schema.Component{Name: "Major", Bits: 7},
//	    schema.Component{Name: "Minor", Bits: 19},
//	    schema.Component{Name: "Patch", Bits: 5},
//	)
//
// Or let the package assign positional names ("Component 0", "Component 1", ...):
//
//	s, err := schema.NewFromWidths(7, 19, 5)
//
// # Validation
//
// Construction fails fast, with no partial schema, when:
//
//   - the component list is empty (ErrEmptySchema)
//   - any component name is blank (ErrBlankName)
//   - any bit width is zero or negative (ErrNonPositiveWidth)
//   - component names are not pairwise distinct (ErrDuplicateName)
//   - the combined width exceeds MaxTotalBits (ErrBitBudgetExceeded)
//
// All returned errors wrap the corresponding sentinel for errors.Is checks.
package schema
