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


package flags

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dadrus/querybearer/internal/config"
	"github.com/dadrus/querybearer/internal/validation"
)

// LoadConfiguration loads the configuration referenced by the global flags and validates it
// with the enforcement settings derived from these flags.
func LoadConfiguration(cmd *cobra.Command) (*config.Configuration, error) {
	envPrefix, _ := cmd.Flags().GetString(EnvironmentConfigPrefix)
	configPath, _ := cmd.Flags().GetString(Config)
	es := EnforcementSettings(cmd)

	validator, err := validation.NewValidator(
		validation.WithTagValidator(es),
		validation.WithErrorTranslator(es),
	)
	if err != nil {
		return nil, err
	}

	return config.NewConfiguration(
		config.EnvVarPrefix(envPrefix),
		config.ConfigurationPath(configPath),
		validator,
	)
}

// CommandLine renders the invoked command together with the flags set explicitly. The second
// result tells whether one of the InsecureFlags was among them.
func CommandLine(cmd *cobra.Command) (string, bool) {
	var (
		cli      strings.Builder
		insecure bool
	)

	cli.WriteString(cmd.CommandPath())

	cmd.Flags().Visit(func(flag *pflag.Flag) {
		cli.WriteString(" --")
		cli.WriteString(flag.Name)

		if flag.Value.Type() != "bool" {
			cli.WriteString(" ")
			cli.WriteString(flag.Value.String())
		}

		insecure = insecure || slices.Contains(InsecureFlags, flag.Name)
	})

	return cli.String(), insecure
}
