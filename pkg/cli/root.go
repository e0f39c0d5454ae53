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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/gtnh-tools/gtcalc/pkg/config"
	gterrors "github.com/gtnh-tools/gtcalc/pkg/errors"
	"github.com/gtnh-tools/gtcalc/pkg/logging"
)

const (
	name           = "gtcalc"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

type settingsKey struct{}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "GregTech recipe search and chain balance calculator",
		Version:               fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		EnableShellCompletion: true,
		Description: `gtcalc searches a recipe catalog exported from a GregTech: New Horizons
instance and reconciles two-step production chains.

Recipes are picked with selectors of the form
  MACHINE[?PRED(;PRED)*][#INDEX]
  PRED = (in|out).(item|fluid)=NAME[@AMOUNT]
for example "Large Chemical Reactor?out.fluid=Nitric Acid@2000#0".`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "catalog",
				Aliases: []string{"c"},
				Usage:   "Recipe catalog path or http(s) URL, may be repeated (.json, .json.gz, .json.zst)",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Config file (default is $HOME/.gtcalc.yaml or ./.gtcalc.yaml)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
			&cli.BoolFlag{
				Name:  "validate",
				Usage: "Validate catalogs against the JSON schema before decoding",
			},
		},
		Before: initialize,
		Commands: []*cli.Command{
			searchCmd(),
			filterCmd(),
			balanceCmd(),
			statsCmd(),
			summaryCmd(),
			serveCmd(),
		},
	}
}

// Execute runs the gtcalc CLI and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().Run(ctx, os.Args)
	stop()
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// initialize resolves settings from the config file, the environment and the
// global flags, then configures logging.
func initialize(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	settings, err := config.Load(config.Options{ConfigFile: cmd.String("config")})
	if err != nil {
		return ctx, err
	}

	if cmd.IsSet("catalog") {
		settings.Catalogs = cmd.StringSlice("catalog")
	}
	if cmd.IsSet("validate") {
		settings.ValidateSchema = cmd.Bool("validate")
	}
	if lvl := cmd.String("log-level"); lvl != "" {
		settings.LogLevel = lvl
	}
	if err := settings.Validate(); err != nil {
		return ctx, err
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, settings.LogLevel)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", settings.LogLevel)

	return context.WithValue(ctx, settingsKey{}, settings), nil
}

func settingsFrom(ctx context.Context) *config.Config {
	if s, ok := ctx.Value(settingsKey{}).(*config.Config); ok {
		return s
	}
	return config.Default()
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	var se *gterrors.StructuredError
	if !errors.As(err, &se) {
		return
	}
	if suggestions, ok := se.Context["suggestions"].([]string); ok && len(suggestions) > 0 {
		fmt.Fprintf(w, "Did you mean: %s?\n", strings.Join(suggestions, ", "))
	}
	if fields, ok := se.Context["fields"].(map[string]string); ok {
		for field, msg := range fields {
			fmt.Fprintf(w, "  %s: %s\n", field, msg)
		}
	}
}

// exitCode is 2 for cancellation and timeouts, 1 otherwise.
func exitCode(err error) int {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) ||
		gterrors.CodeOf(err) == gterrors.ErrCodeTimeout {
		return 2
	}
	return 1
}
