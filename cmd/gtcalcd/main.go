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

package main

import (
	"context"
	"log"

	"github.com/gtnh-tools/gtcalc/pkg/api"
	"github.com/gtnh-tools/gtcalc/pkg/config"
	"github.com/gtnh-tools/gtcalc/pkg/logging"
)

const name = "gtcalcd"

// overridden during build with ldflags
var version = "dev"

func main() {
	settings, err := config.Load(config.Options{})
	if err != nil {
		log.Fatal(err)
	}
	if err := settings.Validate(); err != nil {
		log.Fatal(err)
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, settings.LogLevel)

	if err := api.Serve(context.Background(), settings, name, version); err != nil {
		log.Fatal(err)
	}
}
