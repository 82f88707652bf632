// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// By default the server listens on port 6060, serves a "public" web root
// and writes both data set kinds into one web-servable "userdatasets"
// directory.
const (
	DefaultHTTPAddress       = ":6060"
	DefaultPublicDir         = "public"
	DefaultDataSetsDir       = "userdatasets"
	DefaultAdapterAddress    = "http://localhost:6060"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultUploadConcurrency = 4
	defaultExposeUploadsVal  = true
)

func defaultConfig() *StructuredConfig {
	exposeUploads := defaultExposeUploadsVal

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Storage: Storage{
			Files: Files{
				PublicDir:        DefaultPublicDir,
				UserDataSetsDir:  DefaultDataSetsDir,
				ImageDataSetsDir: DefaultDataSetsDir,
				ExposeUploads:    &exposeUploads,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
			Concurrency:    DefaultUploadConcurrency,
		},
	}
}
