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

	"github.com/vpack/vpack/pkg/semver"
	"github.com/vpack/vpack/pkg/serializer"
)

// SemverResult is the serialized output of the semver command.
type SemverResult struct {
	Version string `json:"version" yaml:"version"`
	Encoded int64  `json:"encoded" yaml:"encoded"`
	Display string `json:"display" yaml:"display"`
	Major   int64  `json:"major" yaml:"major"`
	Minor   int64  `json:"minor" yaml:"minor"`
	Patch   int64  `json:"patch" yaml:"patch"`
}

func newSemverResult(v semver.Version) *SemverResult {
	return &SemverResult{
		Version: v.String(),
		Encoded: v.EncodedValue(),
		Display: v.Describe(),
		Major:   v.Major(),
		Minor:   v.Minor(),
		Patch:   v.Patch(),
	}
}

func semverCmd() *cli.Command {
	return &cli.Command{
		Name:                  "semver",
		EnableShellCompletion: true,
		Usage:                 "Parse, encode, and bump semantic versions",
		Description: `Parse a Major.Minor.Patch version string and encode it as a version code
using the Major:7,Minor:19,Patch:5 schema. Optionally bump one level
before encoding: bumping major resets minor and patch, bumping minor
resets patch.

# Examples

Encode a version string:
  vpackctl semver --version 1.2.3

Bump the minor level:
  vpackctl semver --version 1.2.3 --bump minor

Version strings may carry a leading "v":
  vpackctl semver --version v2.1.1`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "version",
				Aliases:  []string{"v"},
				Required: true,
				Usage:    "Semantic version string (e.g., 1.2.3 or v1.2.3)",
			},
			&cli.StringFlag{
				Name:    "bump",
				Aliases: []string{"b"},
				Usage:   "Level to bump before encoding (major, minor, patch)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			v, err := semver.Parse(cmd.String("version"))
			if err != nil {
				return fmt.Errorf("error parsing version: %w", err)
			}

			if level := cmd.String("bump"); level != "" {
				v, err = v.Bump(level)
				if err != nil {
					return fmt.Errorf("error bumping version: %w", err)
				}
			}

			slog.Debug("encoded semantic version",
				"version", v.String(),
				"encoded", v.EncodedValue())

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, newSemverResult(v))
		},
	}
}
