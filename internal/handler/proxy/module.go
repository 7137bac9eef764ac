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

package proxy

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/dadrus/querybearer/internal/config"
	"github.com/dadrus/querybearer/internal/handler/fxlcm"
	"github.com/dadrus/querybearer/internal/tokenquery"
)

var Module = fx.Invoke( // nolint: gochecknoglobals
	fx.Annotate(
		newLifecycleManager,
		fx.OnStart(func(ctx context.Context, lcm lifecycleManager) error { return lcm.Start(ctx) }),
		fx.OnStop(func(ctx context.Context, lcm lifecycleManager) error { return lcm.Stop(ctx) }),
	),
)

type lifecycleManager interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

func newLifecycleManager(
	conf *config.Configuration,
	tqc tokenquery.Config,
	reg prometheus.Registerer,
	logger zerolog.Logger,
) lifecycleManager {
	return &fxlcm.LifecycleManager{
		ServiceName:    "Proxy",
		ServiceAddress: conf.Serve.Proxy.Address(),
		Server:         newService(conf, tqc, reg, logger),
		Logger:         logger,
	}
}
