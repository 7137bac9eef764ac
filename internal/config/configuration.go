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

package config

import (
	"github.com/dadrus/querybearer/internal/config/parser"
	"github.com/dadrus/querybearer/internal/querybearer"
	"github.com/dadrus/querybearer/internal/validation"
	"github.com/dadrus/querybearer/internal/x/errorchain"
)

type (
	EnvVarPrefix      string
	ConfigurationPath string
)

const DefaultEnvVarPrefix = "QUERYBEARERCFG_"

type Configuration struct {
	Serve      ServeConfig      `koanf:"serve"`
	Log        LoggingConfig    `koanf:"log"`
	Upstream   UpstreamConfig   `koanf:"upstream"`
	QueryToken QueryTokenConfig `koanf:"query_token"`
	Metrics    MetricsConfig    `koanf:"metrics"`
	Tracing    TracingConfig    `koanf:"tracing"`
}

func NewConfiguration(
	envPrefix EnvVarPrefix,
	configFile ConfigurationPath,
	validator validation.Validator,
) (*Configuration, error) {
	result := defaultConfig()

	err := parser.New(
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithDecodeHookFunc(behaviorDecodeHookFunc),
		parser.WithDecodeHookFunc(upstreamURLDecodeHookFunc),
		parser.WithDecodeHookFunc(byteSizeDecodeHookFunc),
		parser.WithConfigFile(string(configFile)),
		parser.WithDefaultConfigFilename("querybearer.yaml"),
		parser.WithConfigLookupDir("."),
		parser.WithConfigLookupDir("/etc/querybearer"),
		parser.WithEnvPrefix(string(envPrefix)),
		parser.WithEnvSubstitution(true),
	).Load(&result)
	if err != nil {
		return nil, errorchain.NewWithMessage(querybearer.ErrConfiguration,
			"failed loading configuration").CausedBy(err)
	}

	if err = validator.ValidateStruct(result); err != nil {
		return nil, errorchain.NewWithMessage(querybearer.ErrConfiguration,
			"configuration is invalid").CausedBy(err)
	}

	return &result, nil
}
