// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/gan-datasets/internal/logger"
	"github.com/MKhiriev/gan-datasets/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploadRepo(t *testing.T) (*uploadRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	repo := &uploadRepository{
		db: &DB{
			DB:                 db,
			placeholder:        sq.Dollar,
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		logger:      l,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  time.Millisecond,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestSaveUpload_Success(t *testing.T) {
	repo, mock := newTestUploadRepo(t)
	file := testStoredFile()

	mock.ExpectExec("INSERT INTO uploads").
		WithArgs(file.ID, "user", file.FileName, file.Path, file.Size, file.SHA256, file.ContentType, file.CreatedAt.UTC()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveUpload(context.Background(), file))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveUpload_NoRowsAffected(t *testing.T) {
	repo, mock := newTestUploadRepo(t)

	mock.ExpectExec("INSERT INTO uploads").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveUpload(context.Background(), testStoredFile())
	assert.ErrorIs(t, err, ErrUploadNotSaved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveUpload_RetriesTransientErrors(t *testing.T) {
	repo, mock := newTestUploadRepo(t)

	mock.ExpectExec("INSERT INTO uploads").WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectExec("INSERT INTO uploads").WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectExec("INSERT INTO uploads").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveUpload(context.Background(), testStoredFile()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveUpload_GivesUpAfterMaxAttempts(t *testing.T) {
	repo, mock := newTestUploadRepo(t)

	for range defaultMaxAttempts {
		mock.ExpectExec("INSERT INTO uploads").WillReturnError(pgError(pgerrcode.SerializationFailure))
	}

	err := repo.SaveUpload(context.Background(), testStoredFile())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveUpload_NonRetryableFailsFast(t *testing.T) {
	repo, mock := newTestUploadRepo(t)

	mock.ExpectExec("INSERT INTO uploads").WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.SaveUpload(context.Background(), testStoredFile())
	assert.ErrorIs(t, err, ErrExecutingStatement)

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, pgerrcode.UniqueViolation, pgErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveUpload_ContextCanceledDuringBackoff(t *testing.T) {
	repo, mock := newTestUploadRepo(t)
	repo.retryDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	mock.ExpectExec("INSERT INTO uploads").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := repo.SaveUpload(ctx, testStoredFile())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestListUploads(t *testing.T) {
	file := testStoredFile()
	columns := []string{"id", "kind", "file_name", "path", "size", "sha256", "content_type", "created_at"}

	t.Run("all kinds", func(t *testing.T) {
		repo, mock := newTestUploadRepo(t)
		rows := sqlmock.NewRows(columns).
			AddRow(file.ID, "user", file.FileName, file.Path, file.Size, file.SHA256, file.ContentType, file.CreatedAt.UTC()).
			AddRow("id-2", "image", "cats.zip", "public/userdatasets/cats.zip", int64(10), "ff", "", file.CreatedAt.UTC().Add(time.Second))
		mock.ExpectQuery("SELECT (.+) FROM uploads ORDER BY").WillReturnRows(rows)

		uploads, err := repo.ListUploads(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, uploads, 2)
		assert.Equal(t, models.UserDataSet, uploads[0].Kind)
		assert.Equal(t, "a.txt", uploads[0].FileName)
		assert.Equal(t, models.ImageDataSet, uploads[1].Kind)
		assert.Equal(t, int64(10), uploads[1].Size)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filtered by kind", func(t *testing.T) {
		repo, mock := newTestUploadRepo(t)
		kind := models.ImageDataSet
		mock.ExpectQuery("SELECT (.+) FROM uploads WHERE kind = \\$1").
			WithArgs("image").
			WillReturnRows(sqlmock.NewRows(columns))

		uploads, err := repo.ListUploads(context.Background(), &kind)
		require.NoError(t, err)
		assert.NotNil(t, uploads)
		assert.Empty(t, uploads)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestUploadRepo(t)
		mock.ExpectQuery("SELECT").WillReturnError(sql.ErrConnDone)

		_, err := repo.ListUploads(context.Background(), nil)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan error", func(t *testing.T) {
		repo, mock := newTestUploadRepo(t)
		rows := sqlmock.NewRows(columns).
			AddRow(file.ID, "user", file.FileName, file.Path, "not-a-number", file.SHA256, "", file.CreatedAt)
		mock.ExpectQuery("SELECT").WillReturnRows(rows)

		_, err := repo.ListUploads(context.Background(), nil)
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestNopUploadRepository(t *testing.T) {
	repo := NewNopUploadRepository()

	require.NoError(t, repo.SaveUpload(context.Background(), testStoredFile()))

	uploads, err := repo.ListUploads(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, uploads)
	assert.Empty(t, uploads)
}
