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

import "time"

// CheckStatus represents the overall outcome of a constraint check.
type CheckStatus string

const (
	// CheckStatusPass indicates all constraints passed.
	CheckStatusPass CheckStatus = "pass"

	// CheckStatusFail indicates one or more constraints failed.
	CheckStatusFail CheckStatus = "fail"

	// CheckStatusPartial indicates some constraints couldn't be evaluated.
	CheckStatusPartial CheckStatus = "partial"
)

// EvaluationStatus represents the outcome of evaluating a single constraint.
type EvaluationStatus string

const (
	// EvaluationStatusPassed indicates the constraint was satisfied.
	EvaluationStatusPassed EvaluationStatus = "passed"

	// EvaluationStatusFailed indicates the constraint was not satisfied.
	EvaluationStatusFailed EvaluationStatus = "failed"

	// EvaluationStatusSkipped indicates the constraint couldn't be evaluated.
	EvaluationStatusSkipped EvaluationStatus = "skipped"
)

// CheckResult represents the complete outcome of checking a version
// against a set of constraints.
type CheckResult struct {
	// Version is the version string that was checked.
	Version string `json:"version" yaml:"version"`

	// Summary contains aggregate check statistics.
	Summary CheckSummary `json:"summary" yaml:"summary"`

	// Results contains per-constraint evaluation details.
	Results []Evaluation `json:"results" yaml:"results"`
}

// CheckSummary contains aggregate statistics about the check.
type CheckSummary struct {
	// Passed is the count of constraints that were satisfied.
	Passed int `json:"passed" yaml:"passed"`

	// Failed is the count of constraints that were not satisfied.
	Failed int `json:"failed" yaml:"failed"`

	// Skipped is the count of constraints that couldn't be evaluated.
	Skipped int `json:"skipped" yaml:"skipped"`

	// Total is the total number of constraints evaluated.
	Total int `json:"total" yaml:"total"`

	// Status is the overall check status.
	Status CheckStatus `json:"status" yaml:"status"`

	// Duration is how long the check took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Evaluation represents the result of evaluating a single constraint.
type Evaluation struct {
	// Expected is the constraint expression (e.g., ">= 1.2.0").
	Expected string `json:"expected" yaml:"expected"`

	// Actual is the version the constraint was evaluated against.
	Actual string `json:"actual" yaml:"actual"`

	// Status is the outcome of this constraint evaluation.
	Status EvaluationStatus `json:"status" yaml:"status"`

	// Message provides additional context, especially for failures or
	// skipped constraints.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Check evaluates a version string against a set of constraint
// expressions and aggregates the results. Expressions that cannot be
// parsed or evaluated are recorded as skipped rather than aborting the
// whole check.
func Check(version string, expressions []string) *CheckResult {
	start := time.Now()

	result := &CheckResult{
		Version: version,
		Results: make([]Evaluation, 0, len(expressions)),
	}

	for _, expr := range expressions {
		eval := Evaluation{
			Expected: expr,
			Actual:   version,
		}

		c, err := Parse(expr)
		if err != nil {
			eval.Status = EvaluationStatusSkipped
			eval.Message = err.Error()
			result.Summary.Skipped++
			result.Results = append(result.Results, eval)
			continue
		}

		ok, err := c.Evaluate(version)
		switch {
		case err != nil:
			eval.Status = EvaluationStatusSkipped
			eval.Message = err.Error()
			result.Summary.Skipped++
		case ok:
			eval.Status = EvaluationStatusPassed
			result.Summary.Passed++
		default:
			eval.Status = EvaluationStatusFailed
			eval.Message = "constraint not satisfied"
			result.Summary.Failed++
		}

		result.Results = append(result.Results, eval)
	}

	result.Summary.Total = len(expressions)
	result.Summary.Duration = time.Since(start)

	switch {
	case result.Summary.Failed > 0:
		result.Summary.Status = CheckStatusFail
	case result.Summary.Skipped > 0:
		result.Summary.Status = CheckStatusPartial
	default:
		result.Summary.Status = CheckStatusPass
	}

	return result
}
