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

	"github.com/vpack/vpack/pkg/manifest"
	"github.com/vpack/vpack/pkg/semver"
	"github.com/vpack/vpack/pkg/serializer"
)

var manifestFileFlag = &cli.StringFlag{
	Name:     "file",
	Aliases:  []string{"f"},
	Required: true,
	Usage:    "Path to the build manifest YAML file",
}

// ManifestResult is the serialized output of the manifest get command.
type ManifestResult struct {
	File        string `json:"file" yaml:"file"`
	VersionCode int64  `json:"versionCode" yaml:"versionCode"`
}

func manifestCmd() *cli.Command {
	return &cli.Command{
		Name:                  "manifest",
		EnableShellCompletion: true,
		Usage:                 "Read and write version codes in build manifests",
		Description: `Manage the versionCode and versionName entries of a build manifest.

The set subcommand encodes a semantic version and writes both the numeric
versionCode and the human-readable versionName into the manifest,
preserving all other entries. The get subcommand reads the versionCode
back out.

# Examples

Stamp a manifest with version 1.2.3:
  vpackctl manifest set --file build.yaml --version 1.2.3

Read the version code from a manifest:
  vpackctl manifest get --file build.yaml`,
		Commands: []*cli.Command{
			manifestSetCmd(),
			manifestGetCmd(),
		},
	}
}

func manifestSetCmd() *cli.Command {
	return &cli.Command{
		Name:  "set",
		Usage: "Encode a semantic version into a build manifest",
		Flags: []cli.Flag{
			manifestFileFlag,
			&cli.StringFlag{
				Name:     "version",
				Aliases:  []string{"v"},
				Required: true,
				Usage:    "Semantic version string to encode (e.g., 1.2.3)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			path := cmd.String("file")

			v, err := semver.Parse(cmd.String("version"))
			if err != nil {
				return fmt.Errorf("error parsing version: %w", err)
			}

			if err := manifest.SetVersion(path, v); err != nil {
				return fmt.Errorf("error updating manifest %q: %w", path, err)
			}

			slog.Info("manifest updated",
				"file", path,
				"versionName", v.String(),
				"versionCode", v.EncodedValue())

			return nil
		},
	}
}

func manifestGetCmd() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Read the version code from a build manifest",
		Flags: []cli.Flag{
			manifestFileFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			path := cmd.String("file")
			code, err := manifest.ReadVersionCode(path)
			if err != nil {
				return fmt.Errorf("error reading manifest %q: %w", path, err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, &ManifestResult{
				File:        path,
				VersionCode: code,
			})
		},
	}
}
