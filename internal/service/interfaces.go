// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic behind the HTTP endpoints: the
// upload pipeline, the image generation capability and build information.
package service

import (
	"context"
	"mime/multipart"

	"github.com/MKhiriev/gan-datasets/models"
)

// PartReader yields the parts of a multipart body in order and returns
// [io.EOF] after the last one. *multipart.Reader satisfies it.
type PartReader interface {
	NextPart() (*multipart.Part, error)
}

// UploadService runs the upload pipeline: receive, validate, persist and
// acknowledge.
type UploadService interface {
	// Upload reads the multipart body and stores its single "file" part in
	// the destination directory of kind. Nothing is left on disk when an
	// error is returned.
	Upload(ctx context.Context, kind models.DataSetKind, parts PartReader) (models.StoredFile, error)

	// ListUploads returns the upload journal, optionally filtered by kind.
	ListUploads(ctx context.Context, kind *models.DataSetKind) ([]models.StoredFile, error)
}

// ImageGenerator produces images from the uploaded data sets. The returned
// text is the acknowledgement sent to the client.
type ImageGenerator interface {
	GenerateImage(ctx context.Context) string
	GenerateImageFromUserDataSets(ctx context.Context) string
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

type idGenerator interface {
	Generate() string
}
