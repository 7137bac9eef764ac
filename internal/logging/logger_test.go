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

package logging

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/querybearer/internal/config"
)

func TestNewTextLogger(t *testing.T) {
	// GIVEN
	buf := &bytes.Buffer{}

	// WHEN
	logger := newLogger(config.LoggingConfig{Format: config.LogTextFormat, Level: zerolog.InfoLevel}, buf)

	logger.Debug().Msg("Not shown")
	logger.Info().Msg("Hello querybearer")

	// THEN
	assert.NotContains(t, buf.String(), "{")
	assert.NotContains(t, buf.String(), "Not shown")
	assert.Contains(t, buf.String(), "Hello querybearer")
}

func TestNewGelfLogger(t *testing.T) {
	// GIVEN
	buf := &bytes.Buffer{}

	// WHEN
	logger := newLogger(config.LoggingConfig{Format: config.LogGelfFormat, Level: zerolog.DebugLevel}, buf)

	logger.Warn().Msg("Hello querybearer")

	// THEN
	var entry map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["_level_name"])
	assert.Equal(t, "1.1", entry["version"])
	assert.Contains(t, entry, "host")
	assert.Contains(t, entry, "timestamp")
	assert.InDelta(t, float64(Warning), entry["level"], 0.0)
	assert.Equal(t, "Hello querybearer", entry["short_message"])
}

func TestConvertLogLevelToSyslogSeverity(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc   string
		from zerolog.Level
		to   SyslogSeverity
	}{
		{uc: "trace", from: zerolog.TraceLevel, to: Debugging},
		{uc: "debug", from: zerolog.DebugLevel, to: Debugging},
		{uc: "info", from: zerolog.InfoLevel, to: Informational},
		{uc: "warn", from: zerolog.WarnLevel, to: Warning},
		{uc: "error", from: zerolog.ErrorLevel, to: Error},
		{uc: "fatal", from: zerolog.FatalLevel, to: Critical},
		{uc: "panic", from: zerolog.PanicLevel, to: Alert},
		{uc: "everything else", from: zerolog.Level(10), to: Emergency},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			severity := toSyslogSeverity(tc.from)

			// THEN
			assert.Equal(t, tc.to, severity)
		})
	}
}
