// Package cli implements the gtcalc command-line interface.
//
// # Overview
//
// gtcalc loads one or more recipe catalogs exported from a GregTech: New
// Horizons instance and answers questions about them: which recipes mention
// an ingredient, which recipes of a machine use an exact ingredient, and what
// a chain of two recipes consumes and produces once the intermediate goods
// cancel out.
//
// # Commands
//
// search - Fuzzy search by ingredient name:
//
//	gtcalc search Nitric Acid
//
// filter - Exact ingredient filter over one machine:
//
//	gtcalc filter --machine "Chemical Reactor" --kind output --channel fluid --name "Nitric Acid" --amount 1000
//
// balance - Net flow of an upstream and a downstream recipe:
//
//	gtcalc balance -u "Electrolyzer?out.fluid=Hydrogen" -d "Chemical Reactor?out.fluid=Methane"
//	gtcalc balance --chain chain.yaml
//
// stats - Gross combined flow of one or more recipes:
//
//	gtcalc stats "Electrolyzer#0" "Chemical Reactor#2"
//
// summary - Catalog shape per source and machine:
//
//	gtcalc summary
//
// serve - Run the HTTP API (see pkg/api):
//
//	gtcalc serve --port 8080
//
// # Global Flags
//
//	--catalog, -c  Catalog path or URL, repeatable
//	--config       Config file (default: $HOME/.gtcalc.yaml, ./.gtcalc.yaml)
//	--log-level    Logging verbosity (debug, info, warn, error)
//	--validate     Validate catalogs against the JSON schema
//
// Commands that print results also accept:
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: table, json, yaml (default: table)
//
// # Selectors
//
// Recipes are addressed by selectors:
//
//	MACHINE[?PRED(;PRED)*][#INDEX]
//	PRED = (in|out).(item|fluid)=NAME[@AMOUNT]
//
// INDEX picks among the recipes that satisfy every predicate and defaults to 0.
//
// # Environment Variables
//
// Every config key can be set with the GTCALC_ prefix, for example
// GTCALC_CATALOGS and GTCALC_LOG_LEVEL. A .env file in the working directory
// is loaded first.
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, unknown machine, bad catalog)
//	2  Context canceled or timeout
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to:
//   - pkg/catalog - Catalog loading and validation
//   - pkg/search - Fuzzy search, exact filter and selectors
//   - pkg/calculator - Balance and stats
//   - pkg/serializer - Output formatting
//   - pkg/api - HTTP server
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/gtnh-tools/gtcalc/pkg/cli.version=1.0.0'"
package cli
