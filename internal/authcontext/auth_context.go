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

package authcontext

import (
	"context"
	"net/http"
)

type Source string

const (
	SourceNone   Source = ""
	SourceQuery  Source = "query"
	SourceHeader Source = "header"
)

type ctxKey struct{}

type authContext struct {
	token      string
	source     Source
	err        error
	statusCode int
}

func New(ctx context.Context) context.Context {
	if _, ok := ctx.Value(ctxKey{}).(*authContext); ok {
		return ctx
	}

	return context.WithValue(ctx, ctxKey{}, &authContext{})
}

func Token(ctx context.Context) (string, Source) {
	if c, ok := ctx.Value(ctxKey{}).(*authContext); ok {
		return c.token, c.source
	}

	return "", SourceNone
}

// SetToken fills the token slot. It returns false and leaves the slot untouched if a token
// has already been set for the request.
func SetToken(ctx context.Context, token string, source Source) bool {
	c, ok := ctx.Value(ctxKey{}).(*authContext)
	if !ok || c.source != SourceNone {
		return false
	}

	c.token = token
	c.source = source

	return true
}

func Error(ctx context.Context) error {
	if c, ok := ctx.Value(ctxKey{}).(*authContext); ok {
		return c.err
	}

	return nil
}

// Fail records the authentication failure together with the status code to respond with.
func Fail(ctx context.Context, err error, statusCode int) {
	if c, ok := ctx.Value(ctxKey{}).(*authContext); ok {
		c.err = err
		c.statusCode = statusCode
	}
}

func StatusCode(ctx context.Context) int {
	if c, ok := ctx.Value(ctxKey{}).(*authContext); ok && c.statusCode != 0 {
		return c.statusCode
	}

	return http.StatusOK
}
