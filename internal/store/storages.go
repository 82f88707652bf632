// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/gan-datasets/internal/config"
	"github.com/MKhiriev/gan-datasets/internal/logger"
	"github.com/spf13/afero"
)

// Storages bundles every storage backend the services depend on.
type Storages struct {
	Files   DataSetFileStorage
	Uploads UploadRepository

	closer io.Closer
}

// NewStorages builds the file storage on fs and, when a DSN is configured,
// opens and migrates the upload journal.
func NewStorages(ctx context.Context, cfg config.Storage, fs afero.Fs, log *logger.Logger) (*Storages, error) {
	storages := &Storages{
		Files:   NewDataSetFileStorage(fs, log),
		Uploads: NewNopUploadRepository(),
	}

	if cfg.DB.DSN == "" {
		log.Info().Msg("upload journal is disabled")
		return storages, nil
	}

	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error opening upload journal: %w", err)
	}
	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating upload journal: %w", err)
	}

	storages.Uploads = NewUploadRepository(db, log)
	storages.closer = db
	return storages, nil
}

// Close releases the journal connection, if any.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
