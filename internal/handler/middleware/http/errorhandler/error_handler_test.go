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

package errorhandler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dadrus/querybearer/internal/querybearer"
	"github.com/dadrus/querybearer/internal/x/errorchain"
)

func TestHandlerHandle(t *testing.T) {
	t.Parallel()

	reason := "The 'access_token' query string parameter was defined, " +
		"but a value to represent the token was not included."

	for _, tc := range []struct {
		uc      string
		handler ErrorHandler
		err     error
		expCode int
		accept  string
		expBody string
		expAuth string
	}{
		{
			uc:      "authentication error default",
			handler: New(),
			err:     errorchain.NewWithMessage(querybearer.ErrAuthentication, reason),
			expCode: http.StatusUnauthorized,
			expAuth: "Bearer",
		},
		{
			uc:      "authentication error overridden",
			handler: New(WithAuthenticationErrorCode(http.StatusForbidden)),
			err:     errorchain.New(querybearer.ErrAuthentication),
			expCode: http.StatusForbidden,
			expAuth: "Bearer",
		},
		{
			uc:      "authentication error verbose expecting text/plain",
			handler: New(WithVerboseErrors(true)),
			err:     errorchain.NewWithMessage(querybearer.ErrAuthentication, reason),
			expCode: http.StatusUnauthorized,
			accept:  "text/plain",
			expBody: "authentication error: " + reason,
			expAuth: "Bearer",
		},
		{
			uc:      "authentication error verbose expecting application/json",
			handler: New(WithVerboseErrors(true)),
			err:     errorchain.NewWithMessage(querybearer.ErrAuthentication, reason),
			expCode: http.StatusUnauthorized,
			accept:  "application/json",
			expBody: `{"code":"authenticationError","message":"` + reason + `"}`,
			expAuth: "Bearer",
		},
		{
			uc:      "authentication error verbose without mime type set",
			handler: New(WithVerboseErrors(true)),
			err:     errorchain.NewWithMessage(querybearer.ErrAuthentication, reason),
			expCode: http.StatusUnauthorized,
			expBody: "<p>authentication error: The &#39;access_token&#39; query string parameter was defined, " +
				"but a value to represent the token was not included.</p>",
			expAuth: "Bearer",
		},
		{
			uc:      "communication error default",
			handler: New(),
			err:     errorchain.New(querybearer.ErrCommunication),
			expCode: http.StatusBadGateway,
		},
		{
			uc:      "communication error overridden",
			handler: New(WithCommunicationErrorCode(http.StatusServiceUnavailable)),
			err:     errorchain.New(querybearer.ErrCommunication),
			expCode: http.StatusServiceUnavailable,
		},
		{
			uc:      "precondition error default",
			handler: New(),
			err:     errorchain.New(querybearer.ErrArgument),
			expCode: http.StatusBadRequest,
		},
		{
			uc:      "precondition error overridden",
			handler: New(WithPreconditionErrorCode(http.StatusNotAcceptable)),
			err:     errorchain.New(querybearer.ErrArgument),
			expCode: http.StatusNotAcceptable,
		},
		{
			uc:      "internal error default",
			handler: New(),
			err:     errors.New("test error"),
			expCode: http.StatusInternalServerError,
		},
		{
			uc:      "internal error overridden",
			handler: New(WithInternalServerErrorCode(http.StatusNotImplemented)),
			err:     errorchain.New(querybearer.ErrInternal),
			expCode: http.StatusNotImplemented,
		},
		{
			uc:      "internal error verbose expecting text/plain",
			handler: New(WithVerboseErrors(true)),
			err:     errorchain.New(querybearer.ErrInternal),
			expCode: http.StatusInternalServerError,
			accept:  "text/plain",
			expBody: "internal error",
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			recorder := httptest.NewRecorder()

			req := httptest.NewRequest(http.MethodGet, "/foo", nil)
			if len(tc.accept) != 0 {
				req.Header.Set("Accept", tc.accept)
			}

			// WHEN
			tc.handler.HandleError(recorder, req, tc.err)

			// THEN
			assert.Equal(t, tc.expCode, recorder.Code)
			assert.Equal(t, tc.expBody, recorder.Body.String())
			assert.Equal(t, tc.expAuth, recorder.Header().Get("WWW-Authenticate"))
		})
	}
}
