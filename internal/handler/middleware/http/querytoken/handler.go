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

package querytoken

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/dadrus/querybearer/internal/authcontext"
	"github.com/dadrus/querybearer/internal/tokenquery"
)

// New creates a middleware looking up the bearer token in the query string of each request.
// The outcome is recorded in the auth context of the request. The next handler is always
// called, even if the query parameter has been rejected.
func New(extractor *tokenquery.Extractor, opts ...Option) func(http.Handler) http.Handler {
	counter := newCounter(newConfig(opts...))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			ctx := authcontext.New(req.Context())
			req = req.WithContext(ctx)

			outcome := extractor.ExtractRaw(req.URL.RawQuery)

			switch outcome.Kind() {
			case tokenquery.Extracted:
				authcontext.SetToken(ctx, outcome.Token(), authcontext.SourceQuery)
			case tokenquery.Rejected:
				authcontext.Fail(ctx, outcome.Err(), http.StatusUnauthorized)
			case tokenquery.NotPresent:
			}

			zerolog.Ctx(ctx).Debug().
				Str("_parameter", extractor.ParameterName()).
				Str("_outcome", outcome.Kind().String()).
				Msg("Query string inspected for bearer token")

			if counter != nil {
				counter.WithLabelValues(outcome.Kind().String()).Inc()
			}

			next.ServeHTTP(rw, req)
		})
	}
}

func newCounter(conf *config) *prometheus.CounterVec {
	if conf.registerer == nil {
		return nil
	}

	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: conf.namespace,
			Name:      "query_token_extractions_total",
			Help:      "Number of requests inspected for a bearer token in the query string, by outcome.",
		},
		[]string{"outcome"},
	)

	if err := conf.registerer.Register(counter); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}

		return nil
	}

	return counter
}
