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

	"github.com/vpack/vpack/pkg/constraint"
	"github.com/vpack/vpack/pkg/serializer"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Check a version against constraint expressions",
		Description: `Evaluate a semantic version against one or more constraint expressions
and report which pass, fail, or cannot be evaluated.

# Constraint Format

Constraint values can use comparison operators:
  ">= 1.2.0"  - Greater than or equal
  "<= 2.0"    - Less than or equal (missing components default to zero)
  "> 1.30"    - Greater than
  "< 2.0"     - Less than
  "== 1.2.3"  - Exact match
  "!= 1.0.0"  - Not equal
  "1.2.3"     - Exact match (no operator)

# Examples

Check a version against a single constraint:
  vpackctl check --version 1.2.3 --constraint ">= 1.2.0"

Check against multiple constraints:
  vpackctl check --version 1.2.3 \
    --constraint ">= 1.0.0" \
    --constraint "< 2.0.0"

Fail the command if any constraint fails (useful for CI/CD):
  vpackctl check --version 1.2.3 --constraint ">= 2.0.0" --fail-on-error`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "version",
				Aliases:  []string{"v"},
				Required: true,
				Usage:    "Semantic version string to check (e.g., 1.2.3)",
			},
			&cli.StringSliceFlag{
				Name:     "constraint",
				Aliases:  []string{"c"},
				Required: true,
				Usage:    `Constraint expression (e.g., ">= 1.2.0", can be repeated)`,
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any constraint fails",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			version := cmd.String("version")
			expressions := cmd.StringSlice("constraint")

			slog.Debug("checking constraints",
				"version", version,
				"constraints", len(expressions))

			result := constraint.Check(version, expressions)

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			if err := ser.Serialize(ctx, result); err != nil {
				return fmt.Errorf("failed to serialize check result: %w", err)
			}

			if cmd.Bool("fail-on-error") && result.Summary.Status == constraint.CheckStatusFail {
				return fmt.Errorf("check failed: %d constraint(s) did not pass", result.Summary.Failed)
			}

			return nil
		},
	}
}
