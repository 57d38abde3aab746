/*
Copyright © 2026 VPack Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/vpack/vpack/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the version code HTTP API",
		Description: `Run the vpackd HTTP API in the foreground until interrupted.

The server exposes /v1/encode, /v1/compare, and /v1/semver along with
/health, /ready, and /metrics endpoints.

# Examples

Serve on the default port:
  vpackctl serve

Serve on a custom port:
  vpackctl serve --port 9090`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Sources: cli.EnvVars("PORT"),
				Usage:   "Port to listen on (default: 8080)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg := server.NewConfig()
			cfg.Name = name
			cfg.Version = version
			if port := cmd.Int("port"); port > 0 {
				cfg.Port = int(port)
			}

			return server.RunWithConfig(cfg)
		},
	}
}
