// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the uploader client.
type ClientAdapter struct {
	// HTTPAddress is the server base URL.
	HTTPAddress string
	// RequestTimeout is the timeout for every outbound request.
	RequestTimeout time.Duration
	// Concurrency is the number of files uploaded at once.
	Concurrency int
}

// ClientConfig is the uploader client's view of [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the server address and timeout.
	Adapter ClientAdapter
	// Command holds the positional arguments naming the client command.
	Command []string
}

// GetClientConfig builds and validates the uploader client configuration
// from the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Concurrency:    cfg.Adapter.Concurrency,
		},
		Command: cfg.Args,
	}

	return clientCfg, clientCfg.validate()
}
