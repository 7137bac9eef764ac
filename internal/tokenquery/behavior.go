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
	"strings"

	"github.com/dadrus/querybearer/internal/querybearer"
	"github.com/dadrus/querybearer/internal/x/errorchain"
)

// DefaultRedactedValue is put in place of the token by the Redact behavior.
const DefaultRedactedValue = "(REDACTED)"

type behaviorKind int

const (
	behaviorNone behaviorKind = iota
	behaviorRedact
	behaviorErase
)

// Behavior defines what happens to the token parameter in the query string of a request after
// the token has been extracted.
type Behavior struct {
	kind        behaviorKind
	replacement string
}

var (
	// None leaves the query string untouched.
	None = Behavior{kind: behaviorNone} //nolint:gochecknoglobals

	// Redact replaces the token with DefaultRedactedValue.
	Redact = RedactWithValue(DefaultRedactedValue) //nolint:gochecknoglobals
)

// RedactWithValue replaces the token with the given value, which may be empty.
func RedactWithValue(value string) Behavior {
	return Behavior{kind: behaviorRedact, replacement: value}
}

// Erase keeps the token parameter without any value.
func Erase() Behavior { return Behavior{kind: behaviorErase} }

// ParseBehavior understands "none", "redact", "redact:<value>" and "erase".
func ParseBehavior(value string) (Behavior, error) {
	kind, replacement, hasReplacement := strings.Cut(value, ":")

	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "none":
		if !hasReplacement {
			return None, nil
		}
	case "redact":
		if hasReplacement {
			return RedactWithValue(replacement), nil
		}

		return Redact, nil
	case "erase":
		if !hasReplacement {
			return Erase(), nil
		}
	}

	return Behavior{}, errorchain.NewWithMessagef(querybearer.ErrConfiguration,
		"unsupported query token behavior '%s'", value)
}

// Replacement returns the value put in place of the token and whether there is one at all.
func (b Behavior) Replacement() (string, bool) {
	return b.replacement, b.kind == behaviorRedact
}

func (b Behavior) String() string {
	switch b.kind {
	case behaviorRedact:
		return "redact:" + b.replacement
	case behaviorErase:
		return "erase"
	default:
		return "none"
	}
}

func (b Behavior) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *Behavior) UnmarshalText(text []byte) error {
	behavior, err := ParseBehavior(string(text))
	if err != nil {
		return err
	}

	*b = behavior

	return nil
}

func (b Behavior) redacts() bool { return b.kind != behaviorNone }

func (b Behavior) replace(p pair) pair {
	rawKey, _, _ := strings.Cut(p.raw, "=")

	if b.kind == behaviorErase {
		return pair{raw: rawKey, key: p.key, null: true}
	}

	return pair{raw: rawKey + "=" + escape(b.replacement), key: p.key, value: b.replacement}
}
