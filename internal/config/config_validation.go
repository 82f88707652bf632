// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
)

// validate checks that the final merged [StructuredConfig] can be used by
// the server. Adapter settings are checked separately by the client.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs)
	}
	if cfg.Server.ReadTimeout < 0 || cfg.Server.WriteTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	files := cfg.Storage.Files
	if files.PublicDir == "" {
		return fmt.Errorf("%w: empty public dir", ErrInvalidStorageConfigs)
	}
	for name, dir := range map[string]string{
		"user data sets dir":  files.UserDataSetsDir,
		"image data sets dir": files.ImageDataSetsDir,
	} {
		if !filepath.IsLocal(dir) {
			return fmt.Errorf("%w: %s %q must be a relative path inside the public dir", ErrInvalidStorageConfigs, name, dir)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.Concurrency <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
