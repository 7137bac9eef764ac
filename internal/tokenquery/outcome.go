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
	"github.com/dadrus/querybearer/internal/querybearer"
	"github.com/dadrus/querybearer/internal/x/errorchain"
)

type OutcomeKind int

const (
	NotPresent OutcomeKind = iota
	Extracted
	Rejected
)

func (k OutcomeKind) String() string {
	switch k {
	case Extracted:
		return "extracted"
	case Rejected:
		return "rejected"
	default:
		return "not_present"
	}
}

// Outcome is the result of looking up a token in the query string of a request.
type Outcome struct {
	kind   OutcomeKind
	token  string
	reason string
}

func notPresent() Outcome { return Outcome{kind: NotPresent} }

func extracted(token string) Outcome { return Outcome{kind: Extracted, token: token} }

func rejected(reason string) Outcome { return Outcome{kind: Rejected, reason: reason} }

func (o Outcome) Kind() OutcomeKind { return o.kind }

// Token returns the extracted token. It is empty unless the kind is Extracted.
func (o Outcome) Token() string { return o.token }

// Reason returns why the query parameter was rejected. It is empty unless the kind is Rejected.
func (o Outcome) Reason() string { return o.reason }

// Err returns an authentication error carrying the reason if the outcome is Rejected, nil otherwise.
func (o Outcome) Err() error {
	if o.kind != Rejected {
		return nil
	}

	return errorchain.NewWithMessage(querybearer.ErrAuthentication, o.reason)
}
