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

package propagators

import (
	datadog "github.com/tonglil/opentelemetry-go-datadog-propagator"
	"go.opentelemetry.io/contrib/propagators/autoprop"
	"go.opentelemetry.io/otel/propagation"
)

// nolint: gochecknoinits
func init() {
	autoprop.RegisterTextMapPropagator("datadog", datadog.Propagator{})
}

// New returns the propagators named in OTEL_PROPAGATORS, falling back to W3C trace context and
// baggage. Next to the autoprop ones, "datadog" is supported.
func New() propagation.TextMapPropagator {
	return autoprop.NewTextMapPropagator()
}
