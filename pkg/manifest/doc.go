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

// Package manifest writes encoded version codes into YAML build manifests.
//
// A build manifest is any YAML mapping; this package owns exactly two keys
// in it, versionCode (the packed integer a build system consumes) and
// versionName (the human-readable "X.Y.Z"). All other keys are preserved
// untouched, though the document is re-marshaled, so key order and comments
// are normalized.
//
// Usage:
//
//	v := semver.MustParse("4.7.20")
//	if err := manifest.SetVersion("build.yaml", v); err != nil {
//	    log.Fatal(err)
//	}
package manifest
