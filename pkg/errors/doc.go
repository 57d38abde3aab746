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

// Package errors provides structured error types for better observability
// and programmatic error handling at vpack's CLI and HTTP boundaries.
//
// The core packages (schema, vercode, semver) use plain sentinel errors;
// this package classifies those failures with stable codes when they cross
// a service boundary.
//
// Example usage:
//
//	err := errors.Wrap(
//	    errors.ErrCodeValueRange,
//	    "failed to encode version",
//	    createErr,
//	)
package errors
