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

	"github.com/gtnh-tools/gtcalc/pkg/calculator"
	"github.com/gtnh-tools/gtcalc/pkg/defaults"
	"github.com/gtnh-tools/gtcalc/pkg/search"
)

func statsCmd() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Gross combined inputs and outputs of one or more recipes",
		ArgsUsage: "SELECTOR [SELECTOR...]",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("stats requires at least one SELECTOR argument")
			}

			selectors := make([]search.Selector, 0, len(args))
			for _, a := range args {
				s, err := search.ParseSelector(a)
				if err != nil {
					return err
				}
				selectors = append(selectors, s)
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLICommandTimeout)
			defer cancel()

			c, err := loadCatalog(ctx, settingsFrom(ctx))
			if err != nil {
				return err
			}

			recipes, err := search.ResolveAll(c, selectors...)
			if err != nil {
				return err
			}

			stats, err := calculator.ComputeStats(recipes...)
			if err != nil {
				return fmt.Errorf("stats: %w", err)
			}

			return writeResult(ctx, cmd, stats)
		},
	}
}
