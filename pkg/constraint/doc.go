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

// Package constraint evaluates version constraint expressions against
// semantic versions.
//
// A constraint expression is an optional comparison operator followed by a
// value:
//
//	">= 1.2.0"  - greater than or equal (version comparison)
//	"<= 2.0"    - less than or equal (missing components default to zero)
//	"> 1.30"    - greater than
//	"< 2.0"     - less than
//	"== 1.2.3"  - exact version match
//	"!= 1.0.0"  - not equal
//	"1.2.3"     - exact match (no operator)
//
// Ordering operators compare positionally through the version code layer,
// so "1.2" and "1.2.0" are equal. Actual values may carry a leading "v"
// and build suffixes ("v1.33.5-eks-3025e55"), which are ignored.
package constraint
