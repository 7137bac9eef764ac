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

package loggeradapter

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestStdLoggerForwardsToZerolog(t *testing.T) {
	t.Parallel()

	// GIVEN
	buf := &bytes.Buffer{}
	logger := NewStdLogger(zerolog.New(buf))

	// WHEN
	logger.Println("http: TLS handshake error")

	// THEN
	assert.JSONEq(t, `{"level":"error","message":"http: TLS handshake error"}`, buf.String())
}
