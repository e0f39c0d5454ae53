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

	"github.com/urfave/cli/v3"

	"github.com/gtnh-tools/gtcalc/pkg/defaults"
	gterrors "github.com/gtnh-tools/gtcalc/pkg/errors"
	"github.com/gtnh-tools/gtcalc/pkg/recipe"
	"github.com/gtnh-tools/gtcalc/pkg/search"
	"github.com/gtnh-tools/gtcalc/pkg/validate"
)

func filterCmd() *cli.Command {
	return &cli.Command{
		Name:  "filter",
		Usage: "List a machine's recipes that use an exact ingredient",
		Description: `Keeps the recipes of one machine whose selected ingredient list contains an
ingredient with exactly the given display name, and the given amount when
--amount is set.

  gtcalc filter --machine "Chemical Reactor" --kind output --channel fluid --name "Nitric Acid"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "machine",
				Aliases:  []string{"m"},
				Usage:    "Machine name (case insensitive)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "kind",
				Value: string(recipe.KindInput),
				Usage: "Ingredient side (supported values: input, output)",
			},
			&cli.StringFlag{
				Name:  "channel",
				Value: string(recipe.ChannelItem),
				Usage: "Ingredient channel (supported values: item, fluid)",
			},
			&cli.StringFlag{
				Name:     "name",
				Aliases:  []string{"n"},
				Usage:    "Exact ingredient display name",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "amount",
				Usage: "Exact ingredient amount",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			q, err := buildQueryFromCmd(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLICommandTimeout)
			defer cancel()

			c, err := loadCatalog(ctx, settingsFrom(ctx))
			if err != nil {
				return err
			}

			m, err := search.FindMachine(c, cmd.String("machine"))
			if err != nil {
				return err
			}

			matched, err := search.FilterByIngredient(m.Recipes, q)
			if err != nil {
				return fmt.Errorf("filter %s: %w", m.Name, err)
			}

			return writeResult(ctx, cmd, search.FromRecipes(m.Name, matched))
		},
	}
}

// buildQueryFromCmd constructs an IngredientQuery from the filter flags.
func buildQueryFromCmd(cmd *cli.Command) (search.IngredientQuery, error) {
	var q search.IngredientQuery

	kind, err := recipe.ParseKind(cmd.String("kind"))
	if err != nil {
		return q, gterrors.Wrap(gterrors.ErrCodeInvalidRequest, "invalid --kind", err)
	}
	channel, err := recipe.ParseChannel(cmd.String("channel"))
	if err != nil {
		return q, gterrors.Wrap(gterrors.ErrCodeInvalidRequest, "invalid --channel", err)
	}

	q.Kind = kind
	q.Channel = channel
	q.Name = cmd.String("name")
	if cmd.IsSet("amount") {
		q.Amount = search.Int(int(cmd.Int("amount")))
	}

	if err := validate.Struct(q); err != nil {
		return q, gterrors.WrapWithContext(gterrors.ErrCodeInvalidRequest, "invalid ingredient query", err,
			map[string]any{"fields": validate.FormatError(err)})
	}
	return q, nil
}
