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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/gtnh-tools/gtcalc/pkg/defaults"
	"github.com/gtnh-tools/gtcalc/pkg/search"
)

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Fuzzy search recipes by ingredient name",
		ArgsUsage: "KEYWORD",
		Description: fmt.Sprintf(`Lists every recipe with at least one ingredient whose name is similar to
KEYWORD (Jaro-Winkler similarity above %.1f). Matching is case sensitive and
checks both display and internal names.`, search.Threshold),
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			keyword := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
			if keyword == "" {
				return fmt.Errorf("search requires a KEYWORD argument")
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLICommandTimeout)
			defer cancel()

			c, err := loadCatalog(ctx, settingsFrom(ctx))
			if err != nil {
				return err
			}

			results := search.Results(search.Catalog(c, keyword))
			slog.Debug("search complete", "keyword", keyword, "results", len(results))

			return writeResult(ctx, cmd, results)
		},
	}
}
