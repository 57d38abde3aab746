/*
Copyright © 2026 VPack Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/vpack/vpack/pkg/serializer"
	"github.com/vpack/vpack/pkg/vercode"
)

// ComponentResult is one named component of an encode result.
type ComponentResult struct {
	Name  string `json:"name" yaml:"name"`
	Bits  int    `json:"bits" yaml:"bits"`
	Value int64  `json:"value" yaml:"value"`
}

// EncodeResult is the serialized output of the encode command.
type EncodeResult struct {
	Encoded    int64             `json:"encoded" yaml:"encoded"`
	Display    string            `json:"display" yaml:"display"`
	Schema     string            `json:"schema" yaml:"schema"`
	Components []ComponentResult `json:"components" yaml:"components"`
}

func newEncodeResult(code vercode.Code, schemaLabel string) *EncodeResult {
	components := code.Components()
	result := &EncodeResult{
		Encoded:    code.EncodedValue(),
		Display:    code.String(),
		Schema:     schemaLabel,
		Components: make([]ComponentResult, 0, len(components)),
	}
	for _, c := range components {
		result.Components = append(result.Components, ComponentResult{
			Name:  c.Name,
			Bits:  c.Bits,
			Value: c.Value,
		})
	}
	return result
}

func encodeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "encode",
		EnableShellCompletion: true,
		Usage:                 "Pack component values into a single version code",
		Description: `Pack an ordered list of component values into one non-negative integer
according to a component schema.

Values are assigned to components in schema order and validated against
each component's bit width before packing. The first component occupies
the most significant bits, so codes minted from the same schema order
numerically.

# Examples

Encode a semantic version with the default Major:7,Minor:19,Patch:5 schema:
  vpackctl encode --values 1,2,3

Encode against a custom schema:
  vpackctl encode --schema "Epoch:3,Build:20" --values 2,104567

Write the result as JSON to a file:
  vpackctl encode --values 1,2,3 --format json --output code.json`,
		Flags: []cli.Flag{
			schemaFlag,
			&cli.StringFlag{
				Name:     "values",
				Aliases:  []string{"v"},
				Required: true,
				Usage:    "Comma-separated component values in schema order (e.g., 1,2,3)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			schemaSpec := cmd.String("schema")
			code, err := mintFromFlags(schemaSpec, cmd.String("values"))
			if err != nil {
				return fmt.Errorf("error encoding version code: %w", err)
			}

			slog.Debug("encoded version code",
				"schema", schemaSpec,
				"encoded", code.EncodedValue())

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, newEncodeResult(code, schemaSpec))
		},
	}
}
