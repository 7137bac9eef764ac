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

package logger

import (
	"net/http"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// New attaches a request scoped logger to the context of the request. If the request is
// traced, the logger carries the trace and span ids.
func New(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			logCtx := logger.With()

			if spanCtx := trace.SpanContextFromContext(req.Context()); spanCtx.IsValid() {
				logCtx = logCtx.
					Str("_trace_id", spanCtx.TraceID().String()).
					Str("_span_id", spanCtx.SpanID().String())
			}

			reqLogger := logCtx.Logger()

			next.ServeHTTP(rw, req.WithContext(reqLogger.WithContext(req.Context())))
		})
	}
}
