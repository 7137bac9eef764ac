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
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/querybearer/internal/tokenquery"
)

func TestHandlerExecution(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc        string
		behavior  tokenquery.Behavior
		target    string
		expQuery  string
		expReqURI string
	}{
		{
			uc:        "default redaction",
			behavior:  tokenquery.Redact,
			target:    "/foo?access_token=secret&other=1",
			expQuery:  "access_token=(REDACTED)&other=1",
			expReqURI: "/foo?access_token=(REDACTED)&other=1",
		},
		{
			uc:        "multiple tokens with custom value",
			behavior:  tokenquery.RedactWithValue("xxx"),
			target:    "/foo?access_token=secret1&access_token=secret2",
			expQuery:  "access_token=xxx",
			expReqURI: "/foo?access_token=xxx",
		},
		{
			uc:        "erase",
			behavior:  tokenquery.Erase(),
			target:    "/foo?a=b&access_token=secret",
			expQuery:  "a=b&access_token",
			expReqURI: "/foo?a=b&access_token",
		},
		{
			uc:        "no redaction",
			behavior:  tokenquery.None,
			target:    "/foo?access_token=secret&other=1",
			expQuery:  "access_token=secret&other=1",
			expReqURI: "/foo?access_token=secret&other=1",
		},
		{
			uc:        "no query",
			behavior:  tokenquery.Redact,
			target:    "/foo",
			expQuery:  "",
			expReqURI: "/foo",
		},
		{
			uc:        "empty query",
			behavior:  tokenquery.Redact,
			target:    "/foo?",
			expQuery:  "",
			expReqURI: "/foo?",
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			redactor, err := tokenquery.NewRedactor(tokenquery.DefaultParameterName, tc.behavior)
			require.NoError(t, err)

			var nextReq *http.Request

			next := http.HandlerFunc(func(_ http.ResponseWriter, req *http.Request) { nextReq = req })

			// WHEN
			New(redactor)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tc.target, nil))

			// THEN
			require.NotNil(t, nextReq)
			assert.Equal(t, tc.expQuery, nextReq.URL.RawQuery)
			assert.Equal(t, tc.expReqURI, nextReq.RequestURI)

			if tc.behavior != tokenquery.None {
				assert.NotContains(t, nextReq.URL.String(), "secret")
			}
		})
	}
}
