// Copyright 2022 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package management

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const (
	EndpointHealth  = "/.well-known/health"
	EndpointMetrics = "/metrics"
)

func newManagementHandler(gatherer prometheus.Gatherer, metricsEnabled bool) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET "+EndpointHealth, health)

	if metricsEnabled {
		mux.Handle("GET "+EndpointMetrics, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return mux
}

func health(rw http.ResponseWriter, req *http.Request) {
	type status struct {
		Status string `json:"status"`
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(rw).Encode(status{Status: "ok"}); err != nil {
		zerolog.Ctx(req.Context()).Warn().Err(err).Msg("Failed writing health status")
	}
}
