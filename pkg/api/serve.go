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

package api

import (
	"context"
	"log/slog"

	"github.com/gtnh-tools/gtcalc/pkg/catalog"
	"github.com/gtnh-tools/gtcalc/pkg/config"
	gterrors "github.com/gtnh-tools/gtcalc/pkg/errors"
	"github.com/gtnh-tools/gtcalc/pkg/server"
)

// Serve loads the configured catalogs and runs the API server until ctx is
// cancelled or the process receives SIGINT or SIGTERM.
func Serve(ctx context.Context, settings *config.Config, name, version string) error {
	if settings == nil {
		settings = config.Default()
	}
	if len(settings.Catalogs) == 0 {
		return gterrors.New(gterrors.ErrCodeInvalidRequest, "no catalogs configured")
	}

	c, err := catalog.LoadAll(ctx, settings.Catalogs,
		catalog.WithSchemaValidation(settings.ValidateSchema),
		catalog.WithTimeout(settings.Fetch.Timeout),
		catalog.WithRetries(settings.Fetch.Retries),
	)
	if err != nil {
		return err
	}

	slog.Info("catalogs loaded",
		"catalogs", len(settings.Catalogs),
		"machines", len(c.MachineNames()),
		"recipes", c.RecipeCount(),
	)

	h := New(c, WithSearchCache(settings.Search.CacheSize, settings.Search.CacheTTL))

	cfg := server.FromSettings(settings)
	cfg.Name = name
	cfg.Version = version
	cfg.Handlers = h.Routes()

	return server.Run(ctx, cfg)
}
