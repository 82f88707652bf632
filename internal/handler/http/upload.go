// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/gan-datasets/internal/logger"
	"github.com/MKhiriev/gan-datasets/internal/service"
	"github.com/MKhiriev/gan-datasets/internal/utils"
	"github.com/MKhiriev/gan-datasets/models"
)

func (h *Handler) uploadDataSets(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Info().Msg("Request: Upload Data Sets")
	h.upload(w, r, models.UserDataSet)
}

func (h *Handler) uploadImageDataSets(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Info().Msg("Request: Upload Image Data Sets")
	h.upload(w, r, models.ImageDataSet)
}

// upload streams the multipart body through the upload service. Every
// failure is answered with 500 and a JSON [models.UploadError].
func (h *Handler) upload(w http.ResponseWriter, r *http.Request, kind models.DataSetKind) {
	log := logger.FromRequest(r)

	parts, err := r.MultipartReader()
	if err != nil {
		h.writeUploadError(w, r, fmt.Errorf("%w: %w", service.ErrNotMultipart, err))
		return
	}

	stored, err := h.services.UploadService.Upload(r.Context(), kind, parts)
	if err != nil {
		h.writeUploadError(w, r, err)
		return
	}

	log.Debug().Str("id", stored.ID).Str("file_name", stored.FileName).Msg("upload acknowledged")
	utils.WriteText(w, models.UploadSucceededMessage, http.StatusOK)
}

func (h *Handler) writeUploadError(w http.ResponseWriter, r *http.Request, err error) {
	uploadErr := uploadErrorFrom(err)

	logger.FromRequest(r).Err(err).
		Str("code", uploadErr.Code).
		Str("field", uploadErr.Field).
		Msg("upload failed")

	utils.WriteJSON(w, uploadErr, http.StatusInternalServerError)
}
