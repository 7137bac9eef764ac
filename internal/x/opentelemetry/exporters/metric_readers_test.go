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

package exporters

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
)

func TestNewMetricReaders(t *testing.T) {
	for _, tc := range []struct {
		uc     string
		env    map[string]string
		assert func(t *testing.T, err error, readers []metric.Reader)
	}{
		{
			uc: "default reader",
			assert: func(t *testing.T, err error, readers []metric.Reader) {
				t.Helper()

				require.NoError(t, err)
				require.Len(t, readers, 1)
				assert.IsType(t, &otelprom.Exporter{}, readers[0])
			},
		},
		{
			uc:  "none reader",
			env: map[string]string{"OTEL_METRICS_EXPORTER": "none,prometheus"},
			assert: func(t *testing.T, err error, readers []metric.Reader) {
				t.Helper()

				require.NoError(t, err)
				require.Len(t, readers, 1)
				assert.IsType(t, &metric.PeriodicReader{}, readers[0])
			},
		},
		{
			uc: "all supported readers",
			env: map[string]string{
				"OTEL_METRICS_EXPORTER":       "otlp,prometheus",
				"OTEL_EXPORTER_OTLP_PROTOCOL": "grpc",
			},
			assert: func(t *testing.T, err error, readers []metric.Reader) {
				t.Helper()

				require.NoError(t, err)
				require.Len(t, readers, 2)
				assert.IsType(t, &metric.PeriodicReader{}, readers[0])
				assert.IsType(t, &otelprom.Exporter{}, readers[1])
			},
		},
		{
			uc: "unsupported otlp protocol",
			env: map[string]string{
				"OTEL_METRICS_EXPORTER":               "otlp",
				"OTEL_EXPORTER_OTLP_METRICS_PROTOCOL": "foobar",
			},
			assert: func(t *testing.T, err error, _ []metric.Reader) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, ErrFailedCreatingMetricExporter)
				require.ErrorIs(t, err, ErrUnsupportedOTLPProtocol)
			},
		},
		{
			uc:  "unsupported reader",
			env: map[string]string{"OTEL_METRICS_EXPORTER": "otlp,foobar"},
			assert: func(t *testing.T, err error, _ []metric.Reader) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, ErrUnsupportedMetricExporterType)
				assert.Contains(t, err.Error(), "foobar")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			for key, val := range tc.env {
				t.Setenv(key, val)
			}

			// WHEN
			readers, err := NewMetricReaders(t.Context(), prometheus.NewRegistry())

			// THEN
			tc.assert(t, err, readers)
		})
	}
}
