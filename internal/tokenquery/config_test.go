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

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	// WHEN
	conf := DefaultConfig()

	// THEN
	assert.Equal(t, "access_token", conf.ParameterName())
	assert.Equal(t, Redact, conf.Behavior())
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	_, err := NewConfig("", Redact)
	require.ErrorIs(t, err, querybearer.ErrConfiguration)

	conf, err := NewConfig("token", Erase())
	require.NoError(t, err)

	extractor := conf.NewExtractor()
	assert.Equal(t, "token", extractor.ParameterName())

	redactor := conf.NewRedactor()
	assert.Equal(t, "token", redactor.Redact("token=foo"))
}
