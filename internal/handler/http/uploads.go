// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/gan-datasets/internal/logger"
	"github.com/MKhiriev/gan-datasets/internal/utils"
	"github.com/MKhiriev/gan-datasets/models"
)

// listUploads answers GET /api/uploads[?kind=user|image] with the upload
// journal.
func (h *Handler) listUploads(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var kind *models.DataSetKind
	if raw := r.URL.Query().Get("kind"); raw != "" {
		parsed, err := models.ParseDataSetKind(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		kind = &parsed
	}

	uploads, err := h.services.UploadService.ListUploads(r.Context(), kind)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUploads").Msg("error listing uploads")
		http.Error(w, "error listing uploads", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.UploadsResponse{Uploads: uploads, Length: len(uploads)}, http.StatusOK)
}
