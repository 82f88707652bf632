// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/gan-datasets/internal/config"
	"github.com/MKhiriev/gan-datasets/models"
)

type appInfoService struct {
	buildInfo  models.AppBuildInfo
	appVersion string
}

// NewAppInfoService reports cfg.Version when it is set and the linker
// provided build version otherwise.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = buildInfo.BuildVersion()
	}

	return &appInfoService{
		buildInfo:  buildInfo,
		appVersion: version,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}
