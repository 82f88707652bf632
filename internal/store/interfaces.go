// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists uploaded data sets.
//
// Two concerns live here: [DataSetFileStorage] writes file content into a
// destination directory, and [UploadRepository] keeps an optional SQL
// journal of every stored file.
package store

import (
	"context"
	"io"

	"github.com/MKhiriev/gan-datasets/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DataSetFileStorage stages uploads inside a destination directory.
type DataSetFileStorage interface {
	// Create opens a staged file that becomes dir/name on Commit. The
	// destination directory is created when missing. name must already be
	// validated as a single path component.
	Create(ctx context.Context, dir, name string) (StagedFile, error)
}

// StagedFile is an upload being written. Content is invisible under its
// final name until Commit succeeds; Abort discards it.
type StagedFile interface {
	io.Writer

	// Commit flushes the content and atomically moves it to its final path,
	// replacing any existing file of the same name. It returns that path.
	Commit() (string, error)

	// Abort removes the staged content. It is safe to call after Commit,
	// in which case it does nothing.
	Abort() error
}

// UploadRepository is the upload journal.
type UploadRepository interface {
	// SaveUpload records a stored file.
	SaveUpload(ctx context.Context, file models.StoredFile) error

	// ListUploads returns journal records ordered by creation time, oldest
	// first. A nil kind lists every kind.
	ListUploads(ctx context.Context, kind *models.DataSetKind) ([]models.StoredFile, error)
}
