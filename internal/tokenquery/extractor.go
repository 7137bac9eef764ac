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

package tokenquery

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Extractor looks up a bearer token in the query string as described in RFC 6750, section 2.3.
type Extractor struct {
	name string
}

func NewExtractor(parameterName string) (*Extractor, error) {
	if err := checkParameterName(parameterName); err != nil {
		return nil, err
	}

	return &Extractor{name: parameterName}, nil
}

func (e *Extractor) ParameterName() string { return e.name }

// Extract never fails. Multiple or empty occurrences of the parameter are reported as a
// Rejected outcome. A token is returned verbatim, without any trimming.
func (e *Extractor) Extract(query Query) Outcome {
	values := query.Values(e.name)

	switch {
	case len(values) == 0:
		return notPresent()
	case len(values) > 1:
		return rejected(fmt.Sprintf(
			"Only one '%s' query string parameter can be defined. However, %s were included in the request.",
			e.name, humanize.Comma(int64(len(values)))))
	case len(strings.TrimSpace(values[0])) == 0:
		return rejected(fmt.Sprintf(
			"The '%s' query string parameter was defined, but a value to represent the token was not included.",
			e.name))
	default:
		return extracted(values[0])
	}
}

// ExtractRaw parses the raw query string and extracts the token from it.
func (e *Extractor) ExtractRaw(rawQuery string) Outcome {
	return e.Extract(ParseQuery(rawQuery))
}
