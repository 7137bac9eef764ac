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
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"

	"github.com/dadrus/querybearer/internal/tokenquery"
)

const (
	defaultReadTimeout  = 5 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 2 * time.Minute
	defaultBufferSize   = 4 * bytesize.KB

	defaultProxyPort      = 4455
	defaultManagementPort = 4457
)

func defaultConfig() Configuration {
	return Configuration{
		Serve: ServeConfig{
			Proxy: ServiceConfig{
				Port: defaultProxyPort,
				Timeout: Timeout{
					Read:  defaultReadTimeout,
					Write: defaultWriteTimeout,
					Idle:  defaultIdleTimeout,
				},
				BufferLimit: BufferLimit{
					Read:  defaultBufferSize,
					Write: defaultBufferSize,
				},
			},
			Management: ServiceConfig{
				Port: defaultManagementPort,
				Timeout: Timeout{
					Read:  defaultReadTimeout,
					Write: defaultWriteTimeout,
					Idle:  defaultIdleTimeout,
				},
				BufferLimit: BufferLimit{
					Read:  defaultBufferSize,
					Write: defaultBufferSize,
				},
			},
		},
		Log: LoggingConfig{
			Format: LogTextFormat,
			Level:  zerolog.ErrorLevel,
		},
		QueryToken: QueryTokenConfig{
			ParameterName: tokenquery.DefaultParameterName,
			Behavior:      tokenquery.Redact,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
		Tracing: TracingConfig{
			SpanProcessorType: SpanProcessorBatch,
		},
	}
}
