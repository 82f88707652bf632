// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/gan-datasets/internal/logger"
	"github.com/MKhiriev/gan-datasets/internal/utils"
)

func (h *Handler) generateImageFromUserDataSets(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Info().Msg("Request: Generate Image From User Data Sets")
	utils.WriteText(w, h.services.ImageGenerator.GenerateImageFromUserDataSets(r.Context()), http.StatusOK)
}

func (h *Handler) generateImage(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Info().Msg("Request: Generate Image")
	utils.WriteText(w, h.services.ImageGenerator.GenerateImage(r.Context()), http.StatusOK)
}
