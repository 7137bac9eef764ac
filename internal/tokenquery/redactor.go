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

// Redactor scrubs the token parameter from query strings according to the configured behavior.
type Redactor struct {
	name     string
	behavior Behavior
}

func NewRedactor(parameterName string, behavior Behavior) (*Redactor, error) {
	if err := checkParameterName(parameterName); err != nil {
		return nil, err
	}

	return &Redactor{name: parameterName, behavior: behavior}, nil
}

func (r *Redactor) Behavior() Behavior { return r.behavior }

// Enabled reports whether Redact can ever change a query string.
func (r *Redactor) Enabled() bool { return r.behavior.redacts() }

// Redact returns the raw query string with the token parameter redacted. The input is returned
// unchanged if the parameter is not present, the behavior is None, or the input is empty or
// consists of a '?' only.
func (r *Redactor) Redact(rawQuery string) string {
	if !r.behavior.redacts() || len(rawQuery) == 0 || rawQuery == "?" {
		return rawQuery
	}

	query := ParseQuery(rawQuery)
	if !query.Has(r.name) {
		return rawQuery
	}

	return query.Redact(r.name, r.behavior).Encode()
}
