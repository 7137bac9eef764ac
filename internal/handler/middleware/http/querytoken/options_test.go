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

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	for _, tc := range []struct {
		uc     string
		opts   []Option
		assert func(t *testing.T, conf *config)
	}{
		{
			uc: "defaults",
			assert: func(t *testing.T, conf *config) {
				t.Helper()

				assert.Equal(t, "querybearer", conf.namespace)
				assert.Nil(t, conf.registerer)
			},
		},
		{
			uc:   "empty values are ignored",
			opts: []Option{WithNamespace(""), WithRegisterer(nil)},
			assert: func(t *testing.T, conf *config) {
				t.Helper()

				assert.Equal(t, "querybearer", conf.namespace)
				assert.Nil(t, conf.registerer)
			},
		},
		{
			uc:   "custom values",
			opts: []Option{WithNamespace("edge"), WithRegisterer(reg)},
			assert: func(t *testing.T, conf *config) {
				t.Helper()

				assert.Equal(t, "edge", conf.namespace)
				assert.Equal(t, reg, conf.registerer)
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			conf := newConfig(tc.opts...)

			// THEN
			require.NotNil(t, conf)
			tc.assert(t, conf)
		})
	}
}
