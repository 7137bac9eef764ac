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

package redaction

import (
	"net/http"
	"strings"

	"github.com/dadrus/querybearer/internal/tokenquery"
)

// New creates a middleware scrubbing the token parameter from the query string of the request
// before it is passed on. It must be placed after the token has been extracted.
func New(redactor *tokenquery.Redactor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !redactor.Enabled() {
			return next
		}

		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			if len(req.URL.RawQuery) != 0 {
				req.URL.RawQuery = redactor.Redact(req.URL.RawQuery)
			}

			if path, query, found := strings.Cut(req.RequestURI, "?"); found {
				req.RequestURI = path + "?" + redactor.Redact(query)
			}

			next.ServeHTTP(rw, req)
		})
	}
}
