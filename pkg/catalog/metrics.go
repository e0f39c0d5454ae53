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

package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Catalog load metrics
	catalogLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gtcalc_catalog_load_duration_seconds",
			Help:    "Duration of catalog loading in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
		},
		[]string{"origin", "result"},
	)

	catalogRecipes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gtcalc_catalog_recipes",
			Help: "Number of recipes in the most recently loaded catalog",
		},
	)

	catalogBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gtcalc_catalog_fetched_bytes_total",
			Help: "Total compressed bytes downloaded for remote catalogs",
		},
	)
)
