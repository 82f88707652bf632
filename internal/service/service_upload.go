// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"time"

	"github.com/MKhiriev/gan-datasets/internal/config"
	"github.com/MKhiriev/gan-datasets/internal/logger"
	"github.com/MKhiriev/gan-datasets/internal/store"
	"github.com/MKhiriev/gan-datasets/internal/utils"
	"github.com/MKhiriev/gan-datasets/internal/validators"
	"github.com/MKhiriev/gan-datasets/models"
)

// FileFieldName is the only multipart field accepted as a file.
const FileFieldName = "file"

type uploadService struct {
	files   store.DataSetFileStorage
	uploads store.UploadRepository

	dirs      map[models.DataSetKind]string
	validator validators.Validator
	ids       idGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewUploadService(files store.DataSetFileStorage, uploads store.UploadRepository, cfg config.Files, logger *logger.Logger) UploadService {
	return &uploadService{
		files:     files,
		uploads:   uploads,
		dirs:      cfg.DataSetDirs(),
		validator: validators.NewFileNameValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *uploadService) Upload(ctx context.Context, kind models.DataSetKind, parts PartReader) (stored models.StoredFile, err error) {
	log := logger.FromContext(ctx)

	dir, ok := s.dirs[kind]
	if !ok {
		return models.StoredFile{}, fmt.Errorf("%w: %q", ErrUnknownDataSetKind, kind)
	}

	var staged store.StagedFile
	defer func() {
		if err != nil && staged != nil {
			if abortErr := staged.Abort(); abortErr != nil {
				log.Err(abortErr).Str("kind", kind.String()).Msg("error discarding staged upload")
			}
		}
	}()

	for {
		if err = ctx.Err(); err != nil {
			return models.StoredFile{}, err
		}

		var part *multipart.Part
		part, err = parts.NextPart()
		// only a bare EOF marks the closing boundary; a truncated body
		// yields a wrapped one
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.StoredFile{}, fmt.Errorf("%w: %w", ErrMalformedMultipart, err)
		}

		if err = s.receivePart(ctx, kind, dir, part, &staged, &stored); err != nil {
			_ = part.Close()
			return models.StoredFile{}, err
		}
		_ = part.Close()
	}

	if staged == nil {
		return models.StoredFile{}, &FieldError{Field: FileFieldName, Err: ErrNoFileProvided}
	}

	if stored.Path, err = staged.Commit(); err != nil {
		return models.StoredFile{}, err
	}
	stored.CreatedAt = s.now().UTC()

	log.Info().
		Str("id", stored.ID).
		Str("kind", kind.String()).
		Str("path", stored.Path).
		Int64("size", stored.Size).
		Msg("data set stored")

	if journalErr := s.uploads.SaveUpload(ctx, stored); journalErr != nil {
		log.Warn().Err(journalErr).Str("id", stored.ID).Msg("upload stored but not journaled")
	}

	return stored, nil
}

// receivePart handles one multipart part. Text fields are drained and
// ignored; the first "file" part is streamed into a staged file.
func (s *uploadService) receivePart(ctx context.Context, kind models.DataSetKind, dir string, part *multipart.Part, staged *store.StagedFile, stored *models.StoredFile) error {
	fileName, isFile, err := partFileName(part)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedMultipart, err)
	}

	if !isFile {
		if _, err = io.Copy(io.Discard, part); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedMultipart, err)
		}
		return nil
	}

	field := part.FormName()
	if field != FileFieldName || *staged != nil {
		return &FieldError{Field: field, Err: ErrUnexpectedFile}
	}

	if err = s.validator.Validate(ctx, fileName, validators.FieldFileName); err != nil {
		return &FieldError{Field: field, Err: err}
	}

	file, err := s.files.Create(ctx, dir, fileName)
	if err != nil {
		return err
	}
	*staged = file

	hash := sha256.New()
	size, err := io.Copy(io.MultiWriter(file, hash), part)
	if err != nil {
		if errors.Is(err, store.ErrWritingFile) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrMalformedMultipart, err)
	}

	*stored = models.StoredFile{
		ID:          s.ids.Generate(),
		Kind:        kind,
		FileName:    fileName,
		Size:        size,
		SHA256:      hex.EncodeToString(hash.Sum(nil)),
		ContentType: part.Header.Get("Content-Type"),
	}
	return nil
}

func (s *uploadService) ListUploads(ctx context.Context, kind *models.DataSetKind) ([]models.StoredFile, error) {
	return s.uploads.ListUploads(ctx, kind)
}

// partFileName reads the filename parameter straight from the
// Content-Disposition header. [multipart.Part.FileName] strips directories,
// which would hide traversal attempts from the validator.
func partFileName(part *multipart.Part) (string, bool, error) {
	disposition := part.Header.Get("Content-Disposition")
	if disposition == "" {
		return "", false, nil
	}

	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return "", false, err
	}

	name, ok := params["filename"]
	return name, ok, nil
}
