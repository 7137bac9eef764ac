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

package proxy

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ccoveille/go-safecast"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/dadrus/querybearer/internal/config"
	"github.com/dadrus/querybearer/internal/handler/middleware/http/accesslog"
	"github.com/dadrus/querybearer/internal/handler/middleware/http/errorhandler"
	"github.com/dadrus/querybearer/internal/handler/middleware/http/logger"
	"github.com/dadrus/querybearer/internal/handler/middleware/http/passthrough"
	"github.com/dadrus/querybearer/internal/handler/middleware/http/querytoken"
	"github.com/dadrus/querybearer/internal/handler/middleware/http/recovery"
	"github.com/dadrus/querybearer/internal/handler/middleware/http/redaction"
	"github.com/dadrus/querybearer/internal/tokenquery"
	"github.com/dadrus/querybearer/internal/x"
	"github.com/dadrus/querybearer/internal/x/httpx"
	"github.com/dadrus/querybearer/internal/x/loggeradapter"
)

func newService(
	conf *config.Configuration,
	tqc tokenquery.Config,
	reg prometheus.Registerer,
	log zerolog.Logger,
) *http.Server {
	cfg := conf.Serve.Proxy
	eh := errorhandler.New(errorhandler.WithVerboseErrors(cfg.Respond.Verbose))

	// the token has to be extracted before the query is redacted, and the query has to be
	// redacted before the access log sees it
	hc := alice.New(
		logger.New(log),
		querytoken.New(tqc.NewExtractor(),
			querytoken.WithRegisterer(x.IfThenElse[prometheus.Registerer](conf.Metrics.Enabled, reg, nil)),
		),
		redaction.New(tqc.NewRedactor()),
		accesslog.New(log),
		recovery.New(eh),
		func(next http.Handler) http.Handler {
			return otelhttp.NewHandler(
				next,
				"",
				otelhttp.WithTracerProvider(otel.GetTracerProvider()),
				otelhttp.WithServerName("proxy"),
				otelhttp.WithSpanNameFormatter(func(_ string, req *http.Request) string {
					return fmt.Sprintf("EntryPoint %s %s%s",
						strings.ToLower(httpx.Scheme(req)), req.Host, req.URL.Path)
				}),
			)
		},
		x.IfThenElseExec(cfg.CORS != nil,
			func() func(http.Handler) http.Handler {
				return cors.New(
					cors.Options{
						AllowedOrigins:   cfg.CORS.AllowedOrigins,
						AllowedMethods:   cfg.CORS.AllowedMethods,
						AllowedHeaders:   cfg.CORS.AllowedHeaders,
						AllowCredentials: cfg.CORS.AllowCredentials,
						ExposedHeaders:   cfg.CORS.ExposedHeaders,
						MaxAge:           int(cfg.CORS.MaxAge.Seconds()),
					},
				).Handler
			},
			func() func(http.Handler) http.Handler { return passthrough.New },
		),
	).Then(newHandler(conf.Upstream.URL, conf.QueryToken.AllowAnonymous, eh))

	return &http.Server{
		Handler:        hc,
		Addr:           cfg.Address(),
		ReadTimeout:    cfg.Timeout.Read,
		WriteTimeout:   cfg.Timeout.Write,
		IdleTimeout:    cfg.Timeout.Idle,
		MaxHeaderBytes: safecast.MustConvert[int](uint64(cfg.BufferLimit.Read)),
		ErrorLog:       loggeradapter.NewStdLogger(log),
	}
}
