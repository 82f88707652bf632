// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/gan-datasets/internal/config"
	"github.com/MKhiriev/gan-datasets/internal/handler/http"
	"github.com/MKhiriev/gan-datasets/internal/logger"
	"github.com/MKhiriev/gan-datasets/internal/service"
	"github.com/spf13/afero"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. fs is the file
// system the static handler serves from and must be the one the upload
// storage writes to.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, fs afero.Fs, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.Storage.Files, fs, logger),
	}, nil
}
