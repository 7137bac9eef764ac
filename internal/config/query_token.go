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

import "github.com/dadrus/querybearer/internal/tokenquery"

type QueryTokenConfig struct {
	ParameterName  string              `koanf:"parameter_name"  validate:"required,notblank"`
	Behavior       tokenquery.Behavior `koanf:"behavior"`
	AllowAnonymous bool                `koanf:"allow_anonymous"`
}

// TokenQuery creates the immutable configuration of the token extraction and redaction.
func (c QueryTokenConfig) TokenQuery() (tokenquery.Config, error) {
	return tokenquery.NewConfig(c.ParameterName, c.Behavior)
}
