// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/gan-datasets/internal/config"
	"github.com/MKhiriev/gan-datasets/internal/logger"
	"github.com/MKhiriev/gan-datasets/internal/store"
	"github.com/MKhiriev/gan-datasets/models"
)

type Services struct {
	UploadService  UploadService
	ImageGenerator ImageGenerator
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		UploadService:  NewUploadService(storages.Files, storages.Uploads, cfg.Storage.Files, logger),
		ImageGenerator: NewStubImageGenerator(logger),
		AppInfoService: NewAppInfoService(cfg.App, buildInfo),
	}
}
