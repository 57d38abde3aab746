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

package serializer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromFile loads and deserializes a YAML or JSON file into T.
// The format is chosen by extension: .json uses JSON, everything else
// (including .yaml and .yml) uses YAML, which also accepts JSON input.
func FromFile[T any](path string) (*T, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("file path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	var out T
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to parse JSON from %q: %w", path, err)
		}
		return &out, nil
	}

	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse YAML from %q: %w", path, err)
	}
	return &out, nil
}
