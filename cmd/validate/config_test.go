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

package validate

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/querybearer/cmd/flags"
	"github.com/dadrus/querybearer/internal/querybearer"
)

func TestValidateConfig(t *testing.T) {
	t.Setenv("QUERYBEARER_TEST_UPSTREAM", "https://upstream.local")

	for _, tc := range []struct {
		uc       string
		confFile string
		args     []string
		expError error
	}{
		{uc: "no config provided", expError: ErrNoConfigFile},
		{uc: "not existing config", confFile: "doesnotexist.yaml", expError: os.ErrNotExist},
		{uc: "valid config", confFile: "test_data/valid-config.yaml"},
		{
			uc:       "insecure upstream",
			confFile: "test_data/insecure-upstream-config.yaml",
			expError: querybearer.ErrConfiguration,
		},
		{
			uc:       "insecure upstream with TLS enforcement disabled",
			confFile: "test_data/insecure-upstream-config.yaml",
			args:     []string{"--" + flags.SkipAllSecurityEnforcement},
		},
		{
			uc:       "invalid redaction behavior",
			confFile: "test_data/invalid-behavior-config.yaml",
			expError: querybearer.ErrConfiguration,
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			cmd := NewValidateConfigCommand()
			flags.RegisterGlobalFlags(cmd)

			args := tc.args
			if len(tc.confFile) != 0 {
				args = append(args, "--"+flags.Config, tc.confFile)
			}

			require.NoError(t, cmd.ParseFlags(args))

			// WHEN
			err := validateConfig(cmd)

			// THEN
			if tc.expError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expError)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRunValidateConfigCommand(t *testing.T) {
	t.Setenv("QUERYBEARER_TEST_UPSTREAM", "https://upstream.local")

	// GIVEN
	cmd := NewValidateConfigCommand()
	flags.RegisterGlobalFlags(cmd)
	cmd.SetArgs([]string{"--" + flags.Config, "test_data/valid-config.yaml"})

	buf := &strings.Builder{}
	cmd.SetOut(buf)

	// WHEN
	err := cmd.Execute()

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "Configuration is valid\n", buf.String())
}
