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

	"github.com/gtnh-tools/gtcalc/pkg/catalog"
	"github.com/gtnh-tools/gtcalc/pkg/defaults"
)

func summaryCmd() *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "Recipe counts and ingredient slot usage per machine",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cancel := context.WithTimeout(ctx, defaults.CLICommandTimeout)
			defer cancel()

			c, err := loadCatalog(ctx, settingsFrom(ctx))
			if err != nil {
				return err
			}

			return writeResult(ctx, cmd, catalog.Summarize(c))
		},
	}
}
