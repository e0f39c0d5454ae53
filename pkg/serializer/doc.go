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

// Package serializer encodes command and API results as JSON, YAML or
// text tables, and decodes JSON or YAML input files.
//
// # Encoding
//
// Write to stdout or a file:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, outputPath)
//	defer w.Close()
//
//	if err := w.Serialize(ctx, balance); err != nil {
//	    return err
//	}
//
// The table format renders values implementing TableRenderer as a table with
// their own header and rows:
//
//	MACHINE                 RECIPE
//	-------                 ------
//	Large Chemical Reactor  3000l Nitrogen Dioxide -> 2000l Nitric Acid
//
// Other values are flattened into sorted FIELD/VALUE rows. Table output is
// write-only.
//
// # Decoding
//
//	chain, err := serializer.FromFile[search.Chain]("chain.yaml")
//
// The format is detected from the extension:
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table, .txt → Table (rejected for reading)
//   - Other → JSON (default)
//
// # HTTP
//
// RespondJSON and RespondYAML encode the full body before writing the status
// so that encoding errors turn into a 500 response. Respond picks one of them
// from the Accept header.
package serializer
