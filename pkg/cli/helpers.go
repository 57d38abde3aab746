/*
Copyright © 2026 VPack Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/vpack/vpack/pkg/schema"
	"github.com/vpack/vpack/pkg/serializer"
	"github.com/vpack/vpack/pkg/vercode"
)

// defaultSchemaSpec is the Major.Minor.Patch layout used when no schema
// is given.
const defaultSchemaSpec = "Major:7,Minor:19,Patch:5"

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %s)",
			cmd.String("format"), strings.Join(serializer.SupportedFormats(), ", "))
	}
	return outFormat, nil
}

// parseSchemaSpec parses a comma-separated schema spec into a schema.
// Each element is either "Name:bits" or a bare bit width, which gets a
// positional name.
func parseSchemaSpec(spec string) (schema.Schema, error) {
	if strings.TrimSpace(spec) == "" {
		return schema.Schema{}, fmt.Errorf("schema spec must not be empty")
	}

	parts := strings.Split(spec, ",")
	components := make([]schema.Component, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)

		componentName := ""
		widthStr := part
		if idx := strings.LastIndex(part, ":"); idx >= 0 {
			componentName = strings.TrimSpace(part[:idx])
			widthStr = strings.TrimSpace(part[idx+1:])
		}
		if componentName == "" {
			componentName = schema.AutoName(i)
		}

		bits, err := strconv.Atoi(widthStr)
		if err != nil {
			return schema.Schema{}, fmt.Errorf("invalid bit width %q in schema spec: %w", widthStr, err)
		}

		components = append(components, schema.Component{
			Name: componentName,
			Bits: bits,
		})
	}

	return schema.New(components...)
}

// parseValues parses a comma-separated list of component values.
func parseValues(s string) ([]int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("values must not be empty")
	}

	parts := strings.Split(s, ",")
	values := make([]int64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid component value %q: %w", part, err)
		}
		values = append(values, v)
	}

	return values, nil
}

// mintFromFlags builds a schema from the given spec and mints a code from
// the comma-separated value list.
func mintFromFlags(schemaSpec, valueList string) (vercode.Code, error) {
	s, err := parseSchemaSpec(schemaSpec)
	if err != nil {
		return vercode.Code{}, fmt.Errorf("invalid schema: %w", err)
	}

	values, err := parseValues(valueList)
	if err != nil {
		return vercode.Code{}, fmt.Errorf("invalid values: %w", err)
	}

	return vercode.New(s).Create(values...)
}
