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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/querybearer/internal/querybearer"
)

func TestNewRedactor(t *testing.T) {
	t.Parallel()

	_, err := NewRedactor(" ", Redact)
	require.ErrorIs(t, err, querybearer.ErrConfiguration)

	redactor, err := NewRedactor(DefaultParameterName, None)
	require.NoError(t, err)
	assert.False(t, redactor.Enabled())
	assert.Equal(t, None, redactor.Behavior())
}

func TestRedactorRedact(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc       string
		name     string
		behavior Behavior
		rawQuery string
		expected string
	}{
		{
			uc:       "default replacement",
			name:     DefaultParameterName,
			behavior: Redact,
			rawQuery: "?access_token=secret&other=1",
			expected: "?access_token=(REDACTED)&other=1",
		},
		{
			uc:       "without leading question mark",
			name:     DefaultParameterName,
			behavior: Redact,
			rawQuery: "other=1&access_token=secret",
			expected: "other=1&access_token=(REDACTED)",
		},
		{
			uc:       "custom parameter name",
			name:     "custom-parameter",
			behavior: Redact,
			rawQuery: "access_token=foo&custom-parameter=MyToken",
			expected: "access_token=foo&custom-parameter=(REDACTED)",
		},
		{
			uc:       "multiple occurrences collapse into the first one",
			name:     DefaultParameterName,
			behavior: Redact,
			rawQuery: "a=1&access_token=MyToken1&b=2&access_token=MyToken2&c=3",
			expected: "a=1&access_token=(REDACTED)&b=2&c=3",
		},
		{
			uc:       "custom replacement",
			name:     DefaultParameterName,
			behavior: RedactWithValue("***"),
			rawQuery: "access_token=secret",
			expected: "access_token=***",
		},
		{
			uc:       "custom replacement requiring escaping",
			name:     DefaultParameterName,
			behavior: RedactWithValue("not shown & gone"),
			rawQuery: "access_token=secret&x=y",
			expected: "access_token=not+shown+%26+gone&x=y",
		},
		{
			uc:       "empty replacement",
			name:     DefaultParameterName,
			behavior: RedactWithValue(""),
			rawQuery: "access_token=MyOtherToken&x=y",
			expected: "access_token=&x=y",
		},
		{
			uc:       "erase",
			name:     DefaultParameterName,
			behavior: Erase(),
			rawQuery: "access_token=MyOtherToken&x=y",
			expected: "access_token&x=y",
		},
		{
			uc:       "raw encoding of other parameters is preserved",
			name:     DefaultParameterName,
			behavior: Redact,
			rawQuery: "x=%7e&access_token=secret&y=a+b&&z=%zz",
			expected: "x=%7e&access_token=(REDACTED)&y=a+b&&z=%zz",
		},
		{
			uc:       "encoded parameter name keeps its raw form",
			name:     DefaultParameterName,
			behavior: Redact,
			rawQuery: "access%5Ftoken=secret",
			expected: "access%5Ftoken=(REDACTED)",
		},
		{
			uc:       "parameter without value",
			name:     DefaultParameterName,
			behavior: Redact,
			rawQuery: "access_token",
			expected: "access_token=(REDACTED)",
		},
		{
			uc:       "parameter not present",
			name:     DefaultParameterName,
			behavior: Redact,
			rawQuery: "?ParameterName=Value1&ParameterName=Value2",
			expected: "?ParameterName=Value1&ParameterName=Value2",
		},
		{
			uc:       "none behavior",
			name:     DefaultParameterName,
			behavior: None,
			rawQuery: "?access_token=secret&other=1",
			expected: "?access_token=secret&other=1",
		},
		{
			uc:       "empty query",
			name:     DefaultParameterName,
			behavior: Redact,
			rawQuery: "",
			expected: "",
		},
		{
			uc:       "question mark only",
			name:     DefaultParameterName,
			behavior: Redact,
			rawQuery: "?",
			expected: "?",
		},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// GIVEN
			redactor, err := NewRedactor(tc.name, tc.behavior)
			require.NoError(t, err)

			// WHEN
			result := redactor.Redact(tc.rawQuery)

			// THEN
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestRedactorProperties(t *testing.T) {
	t.Parallel()

	queries := []string{
		"",
		"?",
		"?other=1",
		"access_token=Secret1",
		"?access_token=Secret1&other=1",
		"a=1&access_token=Secret1&access_token=Secret2&b=2",
		"access_token&access_token=Secret1",
		"b=2&a=1&access_token=Secret%31&c",
	}

	behaviors := []Behavior{None, Redact, RedactWithValue(""), RedactWithValue("x y"), Erase()}

	for _, raw := range queries {
		for _, behavior := range behaviors {
			t.Run("query="+raw+",behavior="+behavior.String(), func(t *testing.T) {
				redactor, err := NewRedactor(DefaultParameterName, behavior)
				require.NoError(t, err)

				once := redactor.Redact(raw)

				// idempotence
				assert.Equal(t, once, redactor.Redact(once))

				// keys and their order are preserved
				assert.Equal(t, ParseQuery(raw).Keys(), ParseQuery(once).Keys())

				if behavior == None {
					assert.Equal(t, raw, once)

					return
				}

				// nothing leaks
				assert.NotContains(t, once, "Secret")
				assert.NotContains(t, ParseQuery(once).Values(DefaultParameterName), "Secret1")
			})
		}
	}
}
