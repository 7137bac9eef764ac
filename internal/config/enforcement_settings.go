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
	"net/url"
	"reflect"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

type EnforcementSettings struct {
	EnforceUpstreamTLS bool
}

func (v EnforcementSettings) Tag() string { return "enforced" }

func (v EnforcementSettings) Validate(fl validator.FieldLevel) bool {
	switch fl.Param() {
	case "https":
		if !v.EnforceUpstreamTLS {
			return true
		}

		return schemeOf(fl.Field()) == "https"
	default:
		return false
	}
}

func (v EnforcementSettings) AlwaysValidate() bool { return true }

func (v EnforcementSettings) MessageTemplate() string { return "{0} {1}" }

func (v EnforcementSettings) Translate(ut ut.Translator, fe validator.FieldError) string {
	msg, err := ut.T(v.Tag(), fe.Field(), v.ErrorMessage(fe.Param()))
	if err != nil {
		return fe.Error()
	}

	return msg
}

func (v EnforcementSettings) ErrorMessage(param string) string {
	switch param {
	case "https":
		return "scheme must be https"
	default:
		return "parameter is unknown"
	}
}

func schemeOf(field reflect.Value) string {
	switch val := field.Interface().(type) {
	case url.URL:
		return val.Scheme
	case *url.URL:
		if val == nil {
			return ""
		}

		return val.Scheme
	case string:
		if parsed, err := url.Parse(val); err == nil {
			return parsed.Scheme
		}
	}

	return ""
}
