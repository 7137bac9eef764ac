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
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dadrus/querybearer/internal/authcontext"
	"github.com/dadrus/querybearer/internal/handler/middleware/http/errorhandler"
	"github.com/dadrus/querybearer/internal/querybearer"
	"github.com/dadrus/querybearer/internal/x/errorchain"
)

type handler struct {
	eh             errorhandler.ErrorHandler
	upstream       http.Handler
	bearer         headerValueExtractStrategy
	allowAnonymous bool
}

func newHandler(upstream *url.URL, allowAnonymous bool, eh errorhandler.ErrorHandler) http.Handler {
	return &handler{
		eh:             eh,
		upstream:       newReverseProxy(upstream, eh),
		bearer:         headerValueExtractStrategy{Name: "Authorization", Schema: "Bearer"},
		allowAnonymous: allowAnonymous,
	}
}

func (h *handler) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := zerolog.Ctx(ctx)

	if err := authcontext.Error(ctx); err != nil {
		h.eh.HandleError(rw, req, err)

		return
	}

	if _, source := authcontext.Token(ctx); source == authcontext.SourceNone {
		if token, err := h.bearer.GetAuthData(req); err == nil {
			authcontext.SetToken(ctx, token, authcontext.SourceHeader)
		} else {
			logger.Debug().Err(err).Msg("No bearer token in request header")
		}
	}

	if _, source := authcontext.Token(ctx); source == authcontext.SourceNone && !h.allowAnonymous {
		err := errorchain.NewWithMessage(querybearer.ErrAuthentication, "no bearer token present")
		authcontext.Fail(ctx, err, http.StatusUnauthorized)

		h.eh.HandleError(rw, req, err)

		return
	}

	h.upstream.ServeHTTP(rw, req)
}

func newReverseProxy(upstream *url.URL, eh errorhandler.ErrorHandler) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(upstream)
			pr.SetXForwarded()

			if token, source := authcontext.Token(pr.In.Context()); source != authcontext.SourceNone {
				pr.Out.Header.Set("Authorization", "Bearer "+token)
			}
		},
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		ErrorHandler: func(rw http.ResponseWriter, req *http.Request, err error) {
			eh.HandleError(rw, req, errorchain.NewWithMessage(querybearer.ErrCommunication,
				"failed to forward request to upstream").CausedBy(err))
		},
	}
}
