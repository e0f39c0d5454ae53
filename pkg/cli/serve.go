// Copyright (c) 2025, The gtcalc Authors.  All rights reserved.
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

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/gtnh-tools/gtcalc/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the recipe API over HTTP",
		Description: `Loads the configured catalogs once and serves search, filter, balance and
stats endpoints under /v1, plus /health, /ready and /metrics.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "Listen address (default: all interfaces)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Listen port (default: 8080, or $PORT)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			settings := *settingsFrom(ctx)
			if cmd.IsSet("address") {
				settings.Server.Address = cmd.String("address")
			}
			if cmd.IsSet("port") {
				settings.Server.Port = int(cmd.Int("port"))
			}
			if err := settings.Validate(); err != nil {
				return err
			}
			return api.Serve(ctx, &settings, name, version)
		},
	}
}
