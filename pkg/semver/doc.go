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

// Package semver wraps the three-component Major.Minor.Patch case of the
// version code engine behind a fixed schema.
//
// # Bit split
//
// The schema allocates 7 bits to Major, 19 to Minor, and 5 to Patch. The
// split is policy, chosen to favor frequently bumped minor versions; it
// bounds versions at 127.524287.31. Changing the split changes every
// encoded value, so treat it as frozen once build manifests exist.
//
// # Usage
//
//	v, err := semver.Parse("4.7.20")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.EncodedValue()) // Output: 67109108
//	fmt.Println(v.String())       // Output: 4.7.20
//
// Bump and With operations return new values; a Version is never mutated:
//
//	next, err := v.Bump("minor") // 4.8.0
//	alt, err := v.WithPatch(21)  // 4.7.21
//
// # Scope
//
// Parse accepts "X.Y.Z" with an optional "v" prefix, nothing else: no
// pre-release identifiers, no build metadata, no ranges.
package semver
