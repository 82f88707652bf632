// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter lets the uploader client talk to the data set server.
//
// [ServerAdapter] hides the transport from the client. The HTTP
// implementation ([NewHTTPServerAdapter]) is built on resty. Non-2xx
// responses are mapped to the sentinel errors in errors.go; a rejected
// upload additionally carries the server's [models.UploadError], reachable
// with [errors.As].
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/gan-datasets/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the data set
// server.
type ServerAdapter interface {
	// UploadDataSet sends content as the single "file" part to the upload
	// route of kind and returns the server acknowledgement.
	UploadDataSet(ctx context.Context, kind models.DataSetKind, fileName string, content io.Reader) (string, error)

	// GenerateImage calls GET /generate-image.
	GenerateImage(ctx context.Context) (string, error)

	// GenerateImageFromUserDataSets calls GET /generate-image-from-user-data-sets.
	GenerateImageFromUserDataSets(ctx context.Context) (string, error)

	// Version returns the server version.
	Version(ctx context.Context) (string, error)

	// ListUploads returns the server's upload journal, optionally filtered
	// by kind.
	ListUploads(ctx context.Context, kind *models.DataSetKind) ([]models.StoredFile, error)
}
