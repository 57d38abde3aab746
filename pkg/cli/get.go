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

// GetResult is the serialized output of the get command.
type GetResult struct {
	Name    string `json:"name" yaml:"name"`
	Value   int64  `json:"value" yaml:"value"`
	Encoded int64  `json:"encoded" yaml:"encoded"`
}

func getCmd() *cli.Command {
	return &cli.Command{
		Name:                  "get",
		EnableShellCompletion: true,
		Usage:                 "Extract a single component value from a version code",
		Description: `Mint a version code and extract one named component from it.

# Examples

Read the Minor component of a semantic version code:
  vpackctl get --values 1,2,3 --name Minor

Read a component of a custom schema:
  vpackctl get --schema "Epoch:3,Build:20" --values 2,104567 --name Build`,
		Flags: []cli.Flag{
			schemaFlag,
			&cli.StringFlag{
				Name:     "values",
				Aliases:  []string{"v"},
				Required: true,
				Usage:    "Comma-separated component values in schema order",
			},
			&cli.StringFlag{
				Name:     "name",
				Aliases:  []string{"n"},
				Required: true,
				Usage:    "Component name to extract",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			code, err := mintFromFlags(cmd.String("schema"), cmd.String("values"))
			if err != nil {
				return fmt.Errorf("error encoding version code: %w", err)
			}

			componentName := cmd.String("name")
			value, ok := code.Get(componentName)
			if !ok {
				return fmt.Errorf("unknown component: %q", componentName)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, &GetResult{
				Name:    componentName,
				Value:   value,
				Encoded: code.EncodedValue(),
			})
		},
	}
}
