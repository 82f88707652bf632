// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/gan-datasets/internal/logger"
	"github.com/MKhiriev/gan-datasets/models"
)

// stubImageGenerator acknowledges generation requests without generating
// anything. A real generator replaces it behind [ImageGenerator].
type stubImageGenerator struct {
	logger *logger.Logger
}

func NewStubImageGenerator(logger *logger.Logger) ImageGenerator {
	return &stubImageGenerator{logger: logger}
}

func (g *stubImageGenerator) GenerateImage(ctx context.Context) string {
	logger.FromContext(ctx).Debug().Msg("image generation is not implemented")
	return models.GeneratedImageMessage
}

func (g *stubImageGenerator) GenerateImageFromUserDataSets(ctx context.Context) string {
	logger.FromContext(ctx).Debug().Msg("image generation from user data sets is not implemented")
	return models.GeneratedImageFromDataSetsMessage
}
