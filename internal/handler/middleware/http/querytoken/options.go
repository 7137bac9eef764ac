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

package querytoken

import "github.com/prometheus/client_golang/prometheus"

type config struct {
	registerer prometheus.Registerer
	namespace  string
}

type Option func(*config)

func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *config) {
		if reg != nil {
			o.registerer = reg
		}
	}
}

func WithNamespace(namespace string) Option {
	return func(o *config) {
		if len(namespace) != 0 {
			o.namespace = namespace
		}
	}
}

func newConfig(opts ...Option) *config {
	conf := config{namespace: "querybearer"}

	for _, opt := range opts {
		opt(&conf)
	}

	return &conf
}
