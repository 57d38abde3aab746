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

package semver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vpack/vpack/pkg/schema"
	"github.com/vpack/vpack/pkg/vercode"
)

// Component names and bit widths of the fixed schema.
const (
	NameMajor = "Major"
	NameMinor = "Minor"
	NamePatch = "Patch"

	MajorBits = 7
	MinorBits = 19
	PatchBits = 5
)

// Error types for parse and bump failures
var (
	ErrEmptyVersion  = errors.New("version string is empty")
	ErrInvalidFormat = errors.New("version must have exactly three components")
	ErrNonNumeric    = errors.New("version component is not numeric")
	ErrUnknownLevel  = errors.New("unknown bump level")
)

// Schema is the fixed Major(7).Minor(19).Patch(5) layout shared by every
// Version in this package.
var Schema = schema.MustNew(
	schema.Component{Name: NameMajor, Bits: MajorBits},
	schema.Component{Name: NameMinor, Bits: MinorBits},
	schema.Component{Name: NamePatch, Bits: PatchBits},
)

var factory = vercode.New(Schema)

var titleCaser = cases.Title(language.English)

// Version is an immutable Major.Minor.Patch version backed by a bit-packed
// version code. The zero value is 0.0.0.
type Version struct {
	code vercode.Code
}

// New builds a Version from components, validating each against its bit
// width (Major ≤ 127, Minor ≤ 524287, Patch ≤ 31, none negative).
func New(major, minor, patch int64) (Version, error) {
	c, err := factory.Create(major, minor, patch)
	if err != nil {
		return Version{}, err
	}
	return Version{code: c}, nil
}

// MustNew is like New but panics on validation failure.
// Only use this for hardcoded versions or in tests.
func MustNew(major, minor, patch int64) Version {
	v, err := New(major, minor, patch)
	if err != nil {
		panic(fmt.Sprintf("semver.MustNew: %v", err))
	}
	return v
}

// Parse parses "X.Y.Z" (optional "v" prefix) into a Version.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}
	s = strings.TrimPrefix(s, "v")

	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	values := make([]int64, 3)
	for i, part := range parts {
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		values[i] = n
	}

	// Negative and over-width components are reported by the factory with
	// the component name and bound.
	return New(values[0], values[1], values[2])
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("semver.MustParse: %v", err))
	}
	return v
}

// component returns the named component's value via code lookup.
func (v Version) component(name string) int64 {
	value, _ := v.code.Get(name)
	return value
}

// Major returns the major component.
func (v Version) Major() int64 { return v.component(NameMajor) }

// Minor returns the minor component.
func (v Version) Minor() int64 { return v.component(NameMinor) }

// Patch returns the patch component.
func (v Version) Patch() int64 { return v.component(NamePatch) }

// Code returns the underlying version code.
func (v Version) Code() vercode.Code {
	return v.code
}

// EncodedValue returns the single-integer form suitable for a build
// manifest's version field.
func (v Version) EncodedValue() int64 {
	return v.code.EncodedValue()
}

// String returns "X.Y.Z".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// Describe returns the long form "<encoded> (X.Y.Z)".
func (v Version) Describe() string {
	if v.code.Len() == 0 {
		// Zero value never went through the factory.
		return "0 (0.0.0)"
	}
	return v.code.String()
}

// Compare orders v against other; see vercode.Code.Compare.
func (v Version) Compare(other Version) int {
	return v.code.Compare(other.code)
}

// Equal reports whether v and other are the same version.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// WithMajor returns a new Version with the major component replaced.
func (v Version) WithMajor(major int64) (Version, error) {
	return New(major, v.Minor(), v.Patch())
}

// WithMinor returns a new Version with the minor component replaced.
func (v Version) WithMinor(minor int64) (Version, error) {
	return New(v.Major(), minor, v.Patch())
}

// WithPatch returns a new Version with the patch component replaced.
func (v Version) WithPatch(patch int64) (Version, error) {
	return New(v.Major(), v.Minor(), patch)
}

// Bump increments the named level ("major", "minor", or "patch",
// case-insensitive) and zeroes everything less significant, returning a new
// Version. Bumping past a component's bit width fails with the factory's
// range error.
func (v Version) Bump(level string) (Version, error) {
	switch titleCaser.String(strings.TrimSpace(level)) {
	case NameMajor:
		return New(v.Major()+1, 0, 0)
	case NameMinor:
		return New(v.Major(), v.Minor()+1, 0)
	case NamePatch:
		return New(v.Major(), v.Minor(), v.Patch()+1)
	default:
		return Version{}, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}
