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

package accesslog

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/justinas/alice"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/querybearer/internal/authcontext"
	"github.com/dadrus/querybearer/internal/handler/middleware/http/redaction"
	"github.com/dadrus/querybearer/internal/tokenquery"
)

func TestHandlerExecution(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc            string
		target        string
		handleRequest func(t *testing.T, rw http.ResponseWriter, req *http.Request)
		assert        func(t *testing.T, started, finished map[string]any)
	}{
		{
			uc:     "access granted with token from query",
			target: "http://querybearer.local/foo?access_token=secret&bar=baz",
			handleRequest: func(t *testing.T, rw http.ResponseWriter, req *http.Request) {
				t.Helper()

				authcontext.SetToken(req.Context(), "secret", authcontext.SourceQuery)
				rw.WriteHeader(http.StatusOK)
			},
			assert: func(t *testing.T, started, finished map[string]any) {
				t.Helper()

				assert.Equal(t, "TX started", started["message"])
				assert.Equal(t, "GET", started["_http_method"])
				assert.Equal(t, "/foo", started["_http_path"])
				assert.Equal(t, "querybearer.local", started["_http_host"])
				assert.Equal(t, "http", started["_http_scheme"])
				assert.Equal(t, "access_token=(REDACTED)&bar=baz", started["_http_query"])
				assert.Contains(t, started, "_tx_start")
				assert.Contains(t, started, "_client_ip")

				assert.Equal(t, "TX finished", finished["message"])
				assert.Equal(t, "access_token=(REDACTED)&bar=baz", finished["_http_query"])
				assert.InDelta(t, float64(http.StatusOK), finished["_http_status_code"], 0.0)
				assert.Equal(t, true, finished["_access_granted"])
				assert.Equal(t, "query", finished["_auth_source"])
				assert.Contains(t, finished, "_tx_duration_ms")
				assert.Contains(t, finished, "_body_bytes_sent")
			},
		},
		{
			uc:     "access denied",
			target: "http://querybearer.local/foo?access_token=&x-forwarded=1",
			handleRequest: func(t *testing.T, rw http.ResponseWriter, req *http.Request) {
				t.Helper()

				authcontext.Fail(req.Context(), errors.New("test error"), http.StatusUnauthorized)
				rw.WriteHeader(http.StatusUnauthorized)
			},
			assert: func(t *testing.T, started, finished map[string]any) {
				t.Helper()

				assert.Equal(t, "access_token=(REDACTED)&x-forwarded=1", started["_http_query"])
				assert.Equal(t, false, finished["_access_granted"])
				assert.Equal(t, "test error", finished["error"])
				assert.InDelta(t, float64(http.StatusUnauthorized), finished["_auth_status_code"], 0.0)
				assert.InDelta(t, float64(http.StatusUnauthorized), finished["_http_status_code"], 0.0)
				assert.NotContains(t, finished, "_auth_source")
			},
		},
		{
			uc:     "without query",
			target: "http://querybearer.local/foo",
			handleRequest: func(t *testing.T, rw http.ResponseWriter, _ *http.Request) {
				t.Helper()

				rw.WriteHeader(http.StatusNoContent)
			},
			assert: func(t *testing.T, started, finished map[string]any) {
				t.Helper()

				assert.NotContains(t, started, "_http_query")
				assert.Equal(t, true, finished["_access_granted"])
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			buf := &bytes.Buffer{}
			logger := zerolog.New(buf)

			redactor, err := tokenquery.NewRedactor(tokenquery.DefaultParameterName, tokenquery.Redact)
			require.NoError(t, err)

			handler := alice.New(redaction.New(redactor), New(logger)).
				ThenFunc(func(rw http.ResponseWriter, req *http.Request) { tc.handleRequest(t, rw, req) })

			// WHEN
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tc.target, nil))

			// THEN
			assert.NotContains(t, buf.String(), "secret")

			events := strings.Split(strings.TrimSpace(buf.String()), "\n")
			require.Len(t, events, 2)

			var started, finished map[string]any

			require.NoError(t, json.Unmarshal([]byte(events[0]), &started))
			require.NoError(t, json.Unmarshal([]byte(events[1]), &finished))

			tc.assert(t, started, finished)
		})
	}
}
