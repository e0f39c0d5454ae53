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
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/gtnh-tools/gtcalc/pkg/calculator"
	"github.com/gtnh-tools/gtcalc/pkg/defaults"
	gterrors "github.com/gtnh-tools/gtcalc/pkg/errors"
	"github.com/gtnh-tools/gtcalc/pkg/search"
	"github.com/gtnh-tools/gtcalc/pkg/serializer"
	"github.com/gtnh-tools/gtcalc/pkg/validate"
)

func balanceCmd() *cli.Command {
	return &cli.Command{
		Name:  "balance",
		Usage: "Net inputs and outputs of a two-recipe chain",
		Description: `Combines an upstream and a downstream recipe and cancels the intermediate
goods the upstream produces and the downstream consumes. Recipes are given as
selectors, or as a YAML/JSON chain file:

  upstream: "Chemical Reactor?out.fluid=Nitric Oxide"
  downstream:
    machine: Chemical Reactor
    where:
      - {kind: input, channel: fluid, name: Nitric Oxide}`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "upstream",
				Aliases: []string{"u"},
				Usage:   "Selector of the producing recipe",
			},
			&cli.StringFlag{
				Name:    "downstream",
				Aliases: []string{"d"},
				Usage:   "Selector of the consuming recipe",
			},
			&cli.StringFlag{
				Name:  "chain",
				Usage: "Path to a chain file; --upstream and --downstream are ignored when set",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			chain, err := chainFromCmd(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLICommandTimeout)
			defer cancel()

			c, err := loadCatalog(ctx, settingsFrom(ctx))
			if err != nil {
				return err
			}

			up, down, err := chain.Resolve(c)
			if err != nil {
				return err
			}
			slog.Info("chain resolved",
				"upstream", chain.Upstream.String(), "upstreamRecipe", up.String(),
				"downstream", chain.Downstream.String(), "downstreamRecipe", down.String())

			b, err := calculator.ComputeBalance(up, down)
			if err != nil {
				return fmt.Errorf("balance: %w", err)
			}

			return writeResult(ctx, cmd, b)
		},
	}
}

// chainFromCmd builds the chain from --chain or the selector flags.
func chainFromCmd(cmd *cli.Command) (*search.Chain, error) {
	if path := cmd.String("chain"); path != "" {
		chain, err := serializer.FromFile[search.Chain](path)
		if err != nil {
			return nil, fmt.Errorf("failed to load chain from %q: %w", path, err)
		}
		if err := validate.Struct(chain); err != nil {
			return nil, gterrors.WrapWithContext(gterrors.ErrCodeInvalidRequest,
				fmt.Sprintf("invalid chain file %q", path), err,
				map[string]any{"fields": validate.FormatError(err)})
		}
		return chain, nil
	}

	upText, downText := cmd.String("upstream"), cmd.String("downstream")
	if upText == "" || downText == "" {
		return nil, fmt.Errorf("either --chain or both --upstream and --downstream are required")
	}

	up, err := search.ParseSelector(upText)
	if err != nil {
		return nil, fmt.Errorf("--upstream: %w", err)
	}
	down, err := search.ParseSelector(downText)
	if err != nil {
		return nil, fmt.Errorf("--downstream: %w", err)
	}
	return &search.Chain{Upstream: up, Downstream: down}, nil
}
