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

package serve

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/dadrus/querybearer/cmd/flags"
	"github.com/dadrus/querybearer/internal"
	"github.com/dadrus/querybearer/internal/config"
	"github.com/dadrus/querybearer/internal/logging"
	"github.com/dadrus/querybearer/version"
)

func createApp(cmd *cobra.Command, mainModule fx.Option) (*fx.App, error) {
	cfg, err := flags.LoadConfiguration(cmd)
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(cfg.Log)
	logStartup(logger, cmd, cfg)

	app := fx.New(
		fx.Supply(cfg, logger),
		fx.WithLogger(func(logger zerolog.Logger) fxevent.Logger { return &eventLogger{l: logger} }),
		internal.Module,
		mainModule,
	)

	return app, app.Err()
}

func logStartup(logger zerolog.Logger, cmd *cobra.Command, cfg *config.Configuration) {
	cli, insecure := flags.CommandLine(cmd)

	logger.Info().
		Str("_version", version.Version).
		Str("_cli", cli).
		Str("_upstream", cfg.Upstream.URL.String()).
		Str("_query_parameter", cfg.QueryToken.ParameterName).
		Str("_query_token_behavior", cfg.QueryToken.Behavior.String()).
		Msg("Starting querybearer")

	if insecure {
		logger.Warn().Msg("Enforcement of secure settings disabled")
	}
}
