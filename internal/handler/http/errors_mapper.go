// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/gan-datasets/internal/service"
	"github.com/MKhiriev/gan-datasets/internal/validators"
	"github.com/MKhiriev/gan-datasets/models"
)

type uploadErrorMapping struct {
	target  error
	code    string
	message string
}

// checked in order; the first match wins
var uploadErrorMappings = []uploadErrorMapping{
	{service.ErrNotMultipart, CodeMalformedMultipart, "Request is not multipart/form-data"},
	{service.ErrMalformedMultipart, CodeMalformedMultipart, "Malformed multipart body"},
	{service.ErrNoFileProvided, CodeLimitFileCount, "No file provided"},
	{service.ErrUnexpectedFile, CodeLimitUnexpectedFile, "Unexpected field"},
	{validators.ErrInvalidFileName, CodeInvalidFileName, "Invalid file name"},
}

// uploadErrorFrom converts a pipeline error into the 500 response body.
// Unrecognised errors are reported as storage errors without leaking their
// text, which may contain server paths.
func uploadErrorFrom(err error) models.UploadError {
	uploadErr := models.UploadError{
		Name:    storageErrorName,
		Code:    CodeStorageError,
		Message: "Error storing file",
	}

	for _, m := range uploadErrorMappings {
		if errors.Is(err, m.target) {
			uploadErr.Name = uploadErrorName
			uploadErr.Code = m.code
			uploadErr.Message = m.message
			break
		}
	}

	var fieldErr *service.FieldError
	if errors.As(err, &fieldErr) {
		uploadErr.Field = fieldErr.Field
	}

	return uploadErr
}
