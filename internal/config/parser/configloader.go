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

package parser

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/dadrus/querybearer/internal/querybearer"
	"github.com/dadrus/querybearer/internal/x/errorchain"
)

// ConfigLoader fills a configuration struct. Values set in the struct act as defaults, the
// yaml file overrides them and environment variables override both.
type ConfigLoader interface {
	Load(config any) error
}

type source func() (*koanf.Koanf, error)

func New(opts ...Option) ConfigLoader {
	conf := defaultOptions
	conf.decodeHooks = slices.Clone(defaultOptions.decodeHooks)

	for _, opt := range opts {
		opt(&conf)
	}

	return &configLoader{o: conf}
}

type configLoader struct {
	o opts
}

func (c *configLoader) Load(config any) error {
	sources, err := c.sources()
	if err != nil {
		return err
	}

	parser, err := koanfFromStruct(config)
	if err != nil {
		return err
	}

	for _, load := range sources {
		konf, err := load()
		if err != nil {
			return err
		}

		if err = parser.Load(confmap.Provider(konf.Raw(), ""), nil, koanf.WithMergeFunc(koanfMerge)); err != nil {
			return err
		}
	}

	return parser.UnmarshalWithConf("", config, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.ComposeDecodeHookFunc(c.o.decodeHooks...),
			Result:           config,
			WeaklyTypedInput: true,
		},
	})
}

func (c *configLoader) sources() ([]source, error) {
	fromEnv := func() (*koanf.Koanf, error) { return koanfFromEnv(c.o.envPrefix) }

	configFile, err := c.lookupConfigFile()
	if err != nil {
		return nil, err
	}

	if len(configFile) == 0 {
		return []source{fromEnv}, nil
	}

	return []source{
		func() (*koanf.Koanf, error) { return koanfFromYaml(configFile, c.o.substituteEnvVars) },
		fromEnv,
	}, nil
}

// lookupConfigFile returns the explicitly configured file, which must exist, or the first
// default file found in the lookup dirs. An empty result means no file is used.
func (c *configLoader) lookupConfigFile() (string, error) {
	if len(c.o.configFile) != 0 {
		if _, err := os.Stat(c.o.configFile); err != nil {
			return "", errorchain.NewWithMessagef(querybearer.ErrConfiguration,
				"configuration file %s is not accessible", c.o.configFile).CausedBy(err)
		}

		return c.o.configFile, nil
	}

	if len(c.o.defaultConfigFileName) == 0 {
		return "", nil
	}

	for _, dir := range c.o.configLookupDirs {
		filePath := filepath.Join(dir, c.o.defaultConfigFileName)
		if _, err := os.Stat(filePath); err == nil {
			return filePath, nil
		}
	}

	return "", nil
}

func koanfMerge(src, dest map[string]any) error {
	for key, val := range src {
		dest[key] = merge(dest[key], val)
	}

	return nil
}
