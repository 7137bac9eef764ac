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

package tokenquery

import (
	"strings"

	"github.com/dadrus/querybearer/internal/querybearer"
	"github.com/dadrus/querybearer/internal/x/errorchain"
)

// DefaultParameterName is the parameter name defined in RFC 6750.
const DefaultParameterName = "access_token"

// Config is shared read-only by all requests once created.
type Config struct {
	parameterName string
	behavior      Behavior
}

func DefaultConfig() Config {
	return Config{parameterName: DefaultParameterName, behavior: Redact}
}

func NewConfig(parameterName string, behavior Behavior) (Config, error) {
	if err := checkParameterName(parameterName); err != nil {
		return Config{}, err
	}

	return Config{parameterName: parameterName, behavior: behavior}, nil
}

func (c Config) ParameterName() string { return c.parameterName }

func (c Config) Behavior() Behavior { return c.behavior }

func (c Config) NewExtractor() *Extractor { return &Extractor{name: c.parameterName} }

func (c Config) NewRedactor() *Redactor { return &Redactor{name: c.parameterName, behavior: c.behavior} }

func checkParameterName(name string) error {
	if len(strings.TrimSpace(name)) == 0 {
		return errorchain.NewWithMessage(querybearer.ErrConfiguration,
			"the query parameter name must not be empty or consist of whitespace only")
	}

	return nil
}
