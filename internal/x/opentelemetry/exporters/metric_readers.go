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
	"context"
	"errors"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"

	"github.com/dadrus/querybearer/internal/x/errorchain"
)

var (
	ErrUnsupportedMetricExporterType = errors.New("unsupported metric exporter type")
	ErrFailedCreatingMetricExporter  = errors.New("failed creating metric exporter")
)

// NewMetricReaders returns the metric readers named in OTEL_METRICS_EXPORTER. The prometheus
// reader registers its collector at the given registerer, which is also the default if the
// variable is not set.
func NewMetricReaders(ctx context.Context, reg prometheus.Registerer) ([]metric.Reader, error) {
	return createMetricReaders(ctx, reg, namesFromEnv("OTEL_METRICS_EXPORTER")...)
}

func createMetricReaders(ctx context.Context, reg prometheus.Registerer, names ...string) ([]metric.Reader, error) {
	readers := &registry[metric.Reader]{
		names: map[string]FactoryFunc[metric.Reader]{
			"otlp": func(ctx context.Context) (metric.Reader, error) {
				exp, err := createOTLPMetricExporter(ctx)
				if err != nil {
					return nil, err
				}

				return metric.NewPeriodicReader(exp), nil
			},
			"prometheus": func(_ context.Context) (metric.Reader, error) {
				return otelprom.New(otelprom.WithRegisterer(reg))
			},
		},
	}

	return readers.create(ctx, names, "prometheus", metric.NewPeriodicReader(noopMetricExporter{}),
		ErrUnsupportedMetricExporterType, ErrFailedCreatingMetricExporter)
}

func createOTLPMetricExporter(ctx context.Context) (metric.Exporter, error) {
	protocol, ok := os.LookupEnv("OTEL_EXPORTER_OTLP_METRICS_PROTOCOL")
	if !ok {
		protocol = envOr("OTEL_EXPORTER_OTLP_PROTOCOL", "http/protobuf")
	}

	switch protocol {
	case "grpc":
		return otlpmetricgrpc.New(ctx)
	case "http/protobuf", "http/json":
		return otlpmetrichttp.New(ctx)
	default:
		return nil, errorchain.NewWithMessage(ErrUnsupportedOTLPProtocol, protocol)
	}
}
