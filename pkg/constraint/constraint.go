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

package constraint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vpack/vpack/pkg/errors"
	"github.com/vpack/vpack/pkg/semver"
)

// Operator represents a comparison operator in constraint expressions.
type Operator string

const (
	// OperatorGTE represents ">=" (greater than or equal).
	OperatorGTE Operator = ">="

	// OperatorLTE represents "<=" (less than or equal).
	OperatorLTE Operator = "<="

	// OperatorGT represents ">" (greater than).
	OperatorGT Operator = ">"

	// OperatorLT represents "<" (less than).
	OperatorLT Operator = "<"

	// OperatorEQ represents "==" (exact match).
	OperatorEQ Operator = "=="

	// OperatorNE represents "!=" (not equal).
	OperatorNE Operator = "!="

	// OperatorExact represents no operator (exact match).
	OperatorExact Operator = ""
)

// Constraint represents a parsed constraint expression.
type Constraint struct {
	// Operator is the comparison operator (or empty for exact match).
	Operator Operator

	// Value is the expected version after the operator.
	Value string
}

// Parse parses a constraint expression into an evaluable Constraint.
// Examples:
//   - ">= 1.2.0" -> {Operator: ">=", Value: "1.2.0"}
//   - "1.2.3" -> {Operator: "", Value: "1.2.3"}
func Parse(expr string) (*Constraint, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "constraint expression cannot be empty")
	}

	c := &Constraint{}

	// Check for operators (longest first to avoid matching ">" when ">=" is intended)
	operators := []Operator{OperatorGTE, OperatorLTE, OperatorNE, OperatorEQ, OperatorGT, OperatorLT}
	for _, op := range operators {
		if strings.HasPrefix(expr, string(op)) {
			c.Operator = op
			c.Value = strings.TrimSpace(strings.TrimPrefix(expr, string(op)))
			break
		}
	}

	// If no operator found, treat as exact match
	if c.Operator == "" {
		c.Operator = OperatorExact
		c.Value = expr
	}

	if c.Value == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "constraint value cannot be empty after operator")
	}

	if _, err := parseVersion(c.Value); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"cannot parse constraint version", err, map[string]any{"version": c.Value})
	}

	return c, nil
}

// parseVersion parses a possibly partial version string into a Version.
// Missing minor and patch components default to zero, a leading "v" and
// build suffixes after "-" or "+" are ignored.
func parseVersion(s string) (semver.Version, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "v")
	if i := strings.IndexAny(s, "-+"); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return semver.Version{}, semver.ErrEmptyVersion
	}

	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return semver.Version{}, fmt.Errorf("%w, but %q has %d", semver.ErrInvalidFormat, s, len(parts))
	}
	for len(parts) < 3 {
		parts = append(parts, "0")
	}

	values := make([]int64, 3)
	for i, part := range parts {
		v, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return semver.Version{}, fmt.Errorf("%w: %q", semver.ErrNonNumeric, part)
		}
		values[i] = v
	}

	return semver.New(values[0], values[1], values[2])
}

// Evaluate evaluates the constraint against an actual version string.
// Returns true if the constraint is satisfied, false otherwise.
func (c *Constraint) Evaluate(actual string) (bool, error) {
	expected, err := parseVersion(c.Value)
	if err != nil {
		return false, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"cannot parse expected version", err, map[string]any{"version": c.Value})
	}

	actualVer, err := parseVersion(actual)
	if err != nil {
		return false, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"cannot parse actual version", err, map[string]any{"version": actual})
	}

	cmp := actualVer.Compare(expected)

	switch c.Operator {
	case OperatorExact, OperatorEQ:
		return cmp == 0, nil
	case OperatorNE:
		return cmp != 0, nil
	case OperatorGTE:
		return cmp >= 0, nil
	case OperatorGT:
		return cmp > 0, nil
	case OperatorLTE:
		return cmp <= 0, nil
	case OperatorLT:
		return cmp < 0, nil
	default:
		return false, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unknown operator", map[string]any{"operator": c.Operator})
	}
}

// String returns a string representation of the parsed constraint.
func (c *Constraint) String() string {
	if c.Operator == OperatorExact {
		return c.Value
	}
	return fmt.Sprintf("%s %s", c.Operator, c.Value)
}
