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
)

// CompareResult is the serialized output of the compare command.
type CompareResult struct {
	Left    string `json:"left" yaml:"left"`
	Right   string `json:"right" yaml:"right"`
	Result  int    `json:"result" yaml:"result"`
	Ordered string `json:"ordered" yaml:"ordered"`
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Order two version codes",
		Description: `Compare two version codes positionally and report -1, 0, or 1.

The operands may use different schemas. Comparison walks components by
position and treats missing positions as zero, so a code minted from a
shorter schema equals its zero-extended counterpart. Raw encoded values
are never compared across schemas.

# Examples

Compare two codes on the default schema:
  vpackctl compare --values 1,2,3 --other-values 1,3,0

Compare codes minted from different schemas:
  vpackctl compare --schema "Major:3" --values 5 \
    --other-schema "Major:3,Minor:1" --other-values 5,0`,
		Flags: []cli.Flag{
			schemaFlag,
			&cli.StringFlag{
				Name:     "values",
				Aliases:  []string{"v"},
				Required: true,
				Usage:    "Comma-separated component values of the left operand",
			},
			&cli.StringFlag{
				Name:  "other-schema",
				Usage: "Schema of the right operand (default: same as --schema)",
			},
			&cli.StringFlag{
				Name:     "other-values",
				Required: true,
				Usage:    "Comma-separated component values of the right operand",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			left, err := mintFromFlags(cmd.String("schema"), cmd.String("values"))
			if err != nil {
				return fmt.Errorf("error encoding left operand: %w", err)
			}

			otherSchema := cmd.String("other-schema")
			if otherSchema == "" {
				otherSchema = cmd.String("schema")
			}
			right, err := mintFromFlags(otherSchema, cmd.String("other-values"))
			if err != nil {
				return fmt.Errorf("error encoding right operand: %w", err)
			}

			result := left.Compare(right)

			ordered := "equal"
			switch result {
			case -1:
				ordered = "before"
			case 1:
				ordered = "after"
			}

			slog.Debug("compared version codes",
				"left", left.EncodedValue(),
				"right", right.EncodedValue(),
				"result", result)

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, &CompareResult{
				Left:    left.String(),
				Right:   right.String(),
				Result:  result,
				Ordered: ordered,
			})
		},
	}
}
