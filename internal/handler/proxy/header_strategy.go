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
	"strings"

	"github.com/dadrus/querybearer/internal/querybearer"
	"github.com/dadrus/querybearer/internal/x/errorchain"
)

// headerValueExtractStrategy reads credentials from a request header, which must use the
// given authentication scheme.
type headerValueExtractStrategy struct {
	Name   string
	Schema string
}

func (es headerValueExtractStrategy) GetAuthData(req *http.Request) (string, error) {
	val := req.Header.Get(es.Name)
	if len(val) == 0 {
		return "", errorchain.NewWithMessagef(querybearer.ErrArgument, "no '%s' header present", es.Name)
	}

	schema, value, found := strings.Cut(val, " ")
	if !found || !strings.EqualFold(schema, es.Schema) {
		return "", errorchain.NewWithMessagef(querybearer.ErrArgument,
			"'%s' header present, but without required '%s' schema", es.Name, es.Schema)
	}

	value = strings.TrimSpace(value)
	if len(value) == 0 {
		return "", errorchain.NewWithMessagef(querybearer.ErrArgument,
			"'%s' header present, but without a value", es.Name)
	}

	return value, nil
}
