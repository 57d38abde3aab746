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

// Package vercode packs multi-component version identifiers into a single
// bounded integer and compares them across differently shaped schemas.
//
// # Overview
//
// A Factory is bound to one validated schema and is the only producer of
// Code values. Every Code minted by the same factory has the same shape,
// so its components are fully comparable. Codes are immutable; operations
// that "change" a component return a new Code.
//
// # Usage
//
// Encode a version:
//
//	s := schema.MustNew(
//	    schema.Component{Name: "Major", Bits: 7},
//	    schema.Component{Name: "Minor", Bits: 19},
//	    schema.Component{Name: "Patch", Bits: 5},
//	)
//	f := vercode.New(s)
//	c, err := f.Create(1, 1, 1)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(c.EncodedValue()) // Output: 16777249
//
// Look up a component:
//
//	minor, ok := c.Get("Minor")
//
// # Encoding
//
// EncodedValue folds components from least significant (last in schema
// order) to most significant (first), accumulating a bit shift equal to the
// running sum of narrower components' widths and OR-ing each value in at its
// offset. Components never overlap, the first schema entry occupies the
// highest bits, and the result always fits the 31-bit schema budget.
//
// # Comparison
//
// Compare walks both component lists pairwise by position, treating a
// missing component past either list's end as value 0. The first position
// where the values differ decides the result. This makes codes from
// different factories comparable without reference to their raw encoded
// values, which are shape-dependent. Equal is consistent with Compare
// returning 0, and Hash is derived from the zero-padded value sequence so
// equal codes always hash identically.
//
// # Errors
//
// Create fails fast with errors wrapping ErrTooFewValues, ErrTooManyValues,
// ErrValueNegative, or ErrValueTooLarge. Each message names the offending
// component and its bound. There are no recoverable error classes; every
// failure is a precondition violation at the call site.
package vercode
