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

package manifest

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vpack/vpack/pkg/semver"
)

// Manifest keys owned by this package.
const (
	KeyVersionCode = "versionCode"
	KeyVersionName = "versionName"
)

// ErrNoVersionCode is returned when a manifest has no versionCode entry.
var ErrNoVersionCode = errors.New("manifest has no versionCode entry")

const filePerm = 0o644

// SetVersion writes the encoded form of v into the manifest at path,
// setting versionCode and versionName and preserving every other key.
// A missing file is treated as an empty manifest and created.
func SetVersion(path string, v semver.Version) error {
	doc, err := load(path)
	if err != nil {
		return err
	}

	doc[KeyVersionCode] = v.EncodedValue()
	doc[KeyVersionName] = v.String()

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize manifest: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write manifest %q: %w", path, err)
	}
	return nil
}

// ReadVersionCode returns the versionCode stored in the manifest at path.
func ReadVersionCode(path string) (int64, error) {
	doc, err := load(path)
	if err != nil {
		return 0, err
	}

	raw, ok := doc[KeyVersionCode]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNoVersionCode, path)
	}

	switch n := raw.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	default:
		return 0, fmt.Errorf("manifest %q: versionCode is %T, want integer", path, raw)
	}
}

// load reads the manifest mapping at path; a missing file yields an empty
// mapping so SetVersion can bootstrap new manifests.
func load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	doc := map[string]any{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %q: %w", path, err)
	}
	return doc, nil
}
