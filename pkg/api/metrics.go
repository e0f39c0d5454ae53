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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gtcalc_search_cache_requests_total",
			Help: "Keyword search cache lookups by result",
		},
		[]string{"result"},
	)

	calculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gtcalc_calculations_total",
			Help: "Balance and stats calculations by operation and outcome",
		},
		[]string{"operation", "result"},
	)
)

func observeCalculation(op string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	calculations.WithLabelValues(op, result).Inc()
}
