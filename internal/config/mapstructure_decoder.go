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
	"strings"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"

	"github.com/dadrus/querybearer/internal/querybearer"
	"github.com/dadrus/querybearer/internal/tokenquery"
	"github.com/dadrus/querybearer/internal/x"
	"github.com/dadrus/querybearer/internal/x/errorchain"
)

func logLevelDecodeHookFunc(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(zerolog.Level(0)) {
		return data, nil
	}

	value, ok := data.(string)
	if !ok {
		return data, nil
	}

	switch strings.ToLower(value) {
	case "panic":
		return zerolog.PanicLevel, nil
	case "fatal":
		return zerolog.FatalLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "trace":
		return zerolog.TraceLevel, nil
	case "disabled":
		return zerolog.Disabled, nil
	default:
		return zerolog.InfoLevel, nil
	}
}

func logFormatDecodeHookFunc(from reflect.Type, to reflect.Type, val any) (any, error) {
	if from.Kind() == reflect.String && to == reflect.TypeOf(LogFormat(0)) {
		return x.IfThenElse(val == "gelf", LogGelfFormat, LogTextFormat), nil
	}

	return val, nil
}

func behaviorDecodeHookFunc(from reflect.Type, to reflect.Type, val any) (any, error) {
	if to != reflect.TypeOf(tokenquery.Behavior{}) {
		return val, nil
	}

	if from.Kind() != reflect.String {
		return val, nil
	}

	return tokenquery.ParseBehavior(val.(string)) // nolint: forcetypeassert
}

func upstreamURLDecodeHookFunc(from reflect.Type, to reflect.Type, val any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(&url.URL{}) {
		return val, nil
	}

	raw, _ := val.(string)
	if len(raw) == 0 {
		return (*url.URL)(nil), nil
	}

	upstream, err := url.Parse(raw)
	if err != nil {
		return nil, errorchain.NewWithMessagef(querybearer.ErrConfiguration,
			"invalid upstream url %s", raw).CausedBy(err)
	}

	if len(upstream.Scheme) == 0 || len(upstream.Host) == 0 {
		return nil, errorchain.NewWithMessagef(querybearer.ErrConfiguration,
			"upstream url %s must be absolute", raw)
	}

	return upstream, nil
}

func byteSizeDecodeHookFunc(from reflect.Type, to reflect.Type, val any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(bytesize.ByteSize(0)) {
		return val, nil
	}

	size, err := bytesize.Parse(val.(string)) // nolint: forcetypeassert
	if err != nil {
		return nil, errorchain.NewWithMessagef(querybearer.ErrConfiguration,
			"invalid byte size %v", val).CausedBy(err)
	}

	return size, nil
}
