// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/gan-datasets/internal/config"
	"github.com/MKhiriev/gan-datasets/internal/logger"
	"github.com/MKhiriev/gan-datasets/internal/service"
	"github.com/spf13/afero"
)

type Handler struct {
	services *service.Services
	files    config.Files
	fs       afero.Fs

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. fs is the file system the static web
// root is served from; it must be the one the upload storage writes to.
func NewHandler(services *service.Services, files config.Files, fs afero.Fs, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		files:    files,
		fs:       fs,
		logger:   logger,
	}
}
