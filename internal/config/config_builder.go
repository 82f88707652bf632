// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs  []*StructuredConfig
	defaults *StructuredConfig
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected sources so that later sources override earlier
// non-zero fields, fills the remaining zero fields from the defaults and
// validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	var exposeUploads *bool
	for _, cfg := range b.configs {
		src := *cfg
		if src.Storage.Files.ExposeUploads != nil {
			exposeUploads = src.Storage.Files.ExposeUploads
		}
		src.Storage.Files.ExposeUploads = nil
		if err := mergo.Merge(config, &src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if b.defaults != nil {
		defaults := *b.defaults
		if exposeUploads == nil {
			exposeUploads = defaults.Storage.Files.ExposeUploads
		}
		defaults.Storage.Files.ExposeUploads = nil
		if err := mergo.Merge(config, &defaults); err != nil {
			return nil, fmt.Errorf("error applying default configs: %w", err)
		}
	}

	// mergo treats an explicit false behind a *bool as empty, so the flag is
	// resolved by hand: the last source that sets it wins.
	if exposeUploads != nil {
		expose := *exposeUploads
		config.Storage.Files.ExposeUploads = &expose
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := parseEnv()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = defaultConfig()
	return b
}
