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
	"net/url"
	"strings"
)

type pair struct {
	raw   string
	key   string
	value string
	null  bool
}

// Query is an ordered multimap over the parameters of a raw query string. It keeps the raw text
// of every segment, so encoding an unmodified Query reproduces its input byte by byte.
type Query struct {
	prefixed bool
	pairs    []pair
}

func ParseQuery(raw string) Query {
	query := Query{prefixed: strings.HasPrefix(raw, "?")}

	raw = strings.TrimPrefix(raw, "?")
	if len(raw) == 0 {
		return query
	}

	segments := strings.Split(raw, "&")
	query.pairs = make([]pair, len(segments))

	for idx, segment := range segments {
		query.pairs[idx] = parsePair(segment)
	}

	return query
}

func parsePair(segment string) pair {
	key, value, hasValue := strings.Cut(segment, "=")

	return pair{
		raw:   segment,
		key:   unescape(key),
		value: unescape(value),
		null:  !hasValue,
	}
}

func unescape(val string) string {
	if res, err := url.QueryUnescape(val); err == nil {
		return res
	}

	return val
}

// Has reports whether the parameter appears at least once.
func (q Query) Has(name string) bool {
	for _, p := range q.pairs {
		if p.key == name {
			return true
		}
	}

	return false
}

// Values returns the decoded values of the given parameter in order of appearance. A parameter
// without a value is represented by an empty string.
func (q Query) Values(name string) []string {
	var values []string

	for _, p := range q.pairs {
		if p.key == name {
			values = append(values, p.value)
		}
	}

	return values
}

// Keys returns the distinct parameter names in order of their first appearance.
func (q Query) Keys() []string {
	keys := make([]string, 0, len(q.pairs))
	seen := make(map[string]struct{}, len(q.pairs))

	for _, p := range q.pairs {
		if _, ok := seen[p.key]; ok || len(p.raw) == 0 {
			continue
		}

		seen[p.key] = struct{}{}
		keys = append(keys, p.key)
	}

	return keys
}

// Redact returns a query in which all occurrences of the named parameter are collapsed into a
// single one at the position of the first occurrence, holding the value the behavior defines.
// The query is returned as is if the parameter is absent or the behavior does not redact.
func (q Query) Redact(name string, behavior Behavior) Query {
	if !behavior.redacts() || !q.Has(name) {
		return q
	}

	result := Query{prefixed: q.prefixed, pairs: make([]pair, 0, len(q.pairs))}
	replaced := false

	for _, p := range q.pairs {
		if p.key != name {
			result.pairs = append(result.pairs, p)

			continue
		}

		if replaced {
			continue
		}

		replaced = true
		result.pairs = append(result.pairs, behavior.replace(p))
	}

	return result
}

// Encode serializes the query. A leading '?' present in the parsed input is retained.
func (q Query) Encode() string {
	var sb strings.Builder

	if q.prefixed {
		sb.WriteByte('?')
	}

	for idx, p := range q.pairs {
		if idx != 0 {
			sb.WriteByte('&')
		}

		sb.WriteString(p.raw)
	}

	return sb.String()
}

func (q Query) String() string { return q.Encode() }
