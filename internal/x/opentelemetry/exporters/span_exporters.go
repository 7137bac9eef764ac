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
	"fmt"
	"os"
	"strings"

	instana "github.com/instana/go-otel-exporter"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/dadrus/querybearer/internal/x/errorchain"
)

var (
	ErrFailedCreatingInstanaExporter = errors.New("failed creating instana exporter")
	ErrUnsupportedTracesExporterType = errors.New("unsupported traces exporter type")
	ErrUnsupportedOTLPProtocol       = errors.New("unsupported OTLP protocol")
	ErrFailedCreatingTracesExporter  = errors.New("failed creating traces exporter")
)

var spanExporters = &registry[trace.SpanExporter]{ //nolint:gochecknoglobals
	names: map[string]FactoryFunc[trace.SpanExporter]{
		"otlp": func(ctx context.Context) (trace.SpanExporter, error) {
			protocol, ok := os.LookupEnv("OTEL_EXPORTER_OTLP_TRACES_PROTOCOL")
			if !ok {
				protocol = envOr("OTEL_EXPORTER_OTLP_PROTOCOL", "http/protobuf")
			}

			switch protocol {
			case "grpc":
				return otlptracegrpc.New(ctx)
			case "http/protobuf":
				return otlptracehttp.New(ctx)
			default:
				return nil, errorchain.NewWithMessage(ErrUnsupportedOTLPProtocol, protocol)
			}
		},
		"zipkin": func(_ context.Context) (trace.SpanExporter, error) {
			return zipkin.New("")
		},
		"instana": func(_ context.Context) (exp trace.SpanExporter, err error) { //nolint:nonamedreturns
			// the instana exporter panics on missing INSTANA_* settings
			defer func() {
				if r := recover(); r != nil {
					err = errorchain.NewWithMessage(ErrFailedCreatingInstanaExporter, fmt.Sprintf("%s", r))
				}
			}()

			return instana.New(), nil
		},
	},
}

// NewSpanExporters returns the span exporters named in OTEL_TRACES_EXPORTER. An otlp exporter
// is returned if the variable is not set, a no-op one if "none" is listed.
func NewSpanExporters(ctx context.Context) ([]trace.SpanExporter, error) {
	return createSpanExporters(ctx, namesFromEnv("OTEL_TRACES_EXPORTER")...)
}

func createSpanExporters(ctx context.Context, names ...string) ([]trace.SpanExporter, error) {
	return spanExporters.create(ctx, names, "otlp", noopSpanExporter{},
		ErrUnsupportedTracesExporterType, ErrFailedCreatingTracesExporter)
}

func namesFromEnv(key string) []string {
	val, ok := os.LookupEnv(key)
	if !ok || len(strings.TrimSpace(val)) == 0 {
		return nil
	}

	names := strings.Split(val, ",")
	for idx, name := range names {
		names[idx] = strings.TrimSpace(name)
	}

	return names
}
