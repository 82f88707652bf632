// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/gan-datasets/internal/logger"
	"github.com/MKhiriev/gan-datasets/models"
)

const (
	defaultMaxAttempts = 3
	defaultRetryDelay  = 100 * time.Millisecond
)

type uploadRepository struct {
	db     *DB
	logger *logger.Logger

	maxAttempts int
	retryDelay  time.Duration
}

// NewUploadRepository returns an [UploadRepository] backed by db. Statements
// failing with a [Retryable] error are attempted up to three times.
func NewUploadRepository(db *DB, logger *logger.Logger) UploadRepository {
	return &uploadRepository{
		db:          db,
		logger:      logger,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
	}
}

func (r *uploadRepository) SaveUpload(ctx context.Context, file models.StoredFile) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUploadQuery(r.db.builder(), file)
	if err != nil {
		log.Err(err).Str("func", "uploadRepository.SaveUpload").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.retry(ctx, func() error {
		result, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		if n, rowsErr := result.RowsAffected(); rowsErr == nil && n == 0 {
			return ErrUploadNotSaved
		}
		return nil
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrUploadNotSaved):
		return err
	default:
		log.Err(err).Str("func", "uploadRepository.SaveUpload").Str("id", file.ID).Msg("error inserting upload record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

func (r *uploadRepository) ListUploads(ctx context.Context, kind *models.DataSetKind) ([]models.StoredFile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUploadsQuery(r.db.builder(), kind)
	if err != nil {
		log.Err(err).Str("func", "uploadRepository.ListUploads").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var uploads []models.StoredFile
	err = r.retry(ctx, func() error {
		var queryErr error
		uploads, queryErr = r.queryUploads(ctx, query, args)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "uploadRepository.ListUploads").Msg("error listing upload records")
		return nil, err
	}
	return uploads, nil
}

func (r *uploadRepository) queryUploads(ctx context.Context, query string, args []any) ([]models.StoredFile, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	uploads := make([]models.StoredFile, 0)
	for rows.Next() {
		var (
			file models.StoredFile
			kind string
		)
		if err = rows.Scan(
			&file.ID,
			&kind,
			&file.FileName,
			&file.Path,
			&file.Size,
			&file.SHA256,
			&file.ContentType,
			&file.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		file.Kind = models.DataSetKind(kind)
		uploads = append(uploads, file)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return uploads, nil
}

// retry runs op until it succeeds, fails with a non-retryable error, the
// attempts run out or ctx is done. The delay grows linearly per attempt.
func (r *uploadRepository) retry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if r.db.classify(err) != Retryable || attempt == r.maxAttempts {
			return err
		}

		r.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying journal statement")
		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * r.retryDelay):
		}
	}
	return err
}

// nopUploadRepository is used when the journal is disabled.
type nopUploadRepository struct{}

// NewNopUploadRepository returns an [UploadRepository] that records nothing
// and always lists an empty journal.
func NewNopUploadRepository() UploadRepository {
	return nopUploadRepository{}
}

func (nopUploadRepository) SaveUpload(context.Context, models.StoredFile) error {
	return nil
}

func (nopUploadRepository) ListUploads(context.Context, *models.DataSetKind) ([]models.StoredFile, error) {
	return []models.StoredFile{}, nil
}
