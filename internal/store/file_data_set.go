// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/gan-datasets/internal/logger"
	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644

	stagedFilePattern = ".upload-*.part"
)

// dataSetFileStorage is the default implementation of [DataSetFileStorage].
// Content is streamed into a hidden temp file next to its final path and
// renamed into place on commit, so readers never observe a truncated upload
// and concurrent uploads of one name resolve to the last rename.
type dataSetFileStorage struct {
	fs     afero.Fs
	logger *logger.Logger
}

// NewDataSetFileStorage constructs a [DataSetFileStorage] on top of fs.
func NewDataSetFileStorage(fs afero.Fs, logger *logger.Logger) DataSetFileStorage {
	logger.Debug().Msg("creating data set file storage")
	return &dataSetFileStorage{
		fs:     fs,
		logger: logger,
	}
}

func (s *dataSetFileStorage) Create(ctx context.Context, dir, name string) (StagedFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrCreatingDirectory, dir, err)
	}

	tmp, err := afero.TempFile(s.fs, dir, stagedFilePattern)
	if err != nil {
		return nil, fmt.Errorf("%w in %q: %w", ErrCreatingFile, dir, err)
	}

	return &stagedFile{
		fs:        s.fs,
		file:      tmp,
		finalPath: filepath.Join(dir, name),
	}, nil
}

// IsStagedFile reports whether name is the base name of an in-progress
// upload, including one orphaned by a crash.
func IsStagedFile(name string) bool {
	ok, _ := filepath.Match(stagedFilePattern, filepath.Base(name))
	return ok
}

type stagedFile struct {
	fs        afero.Fs
	file      afero.File
	finalPath string

	mu   sync.Mutex
	done bool
}

func (f *stagedFile) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.done {
		return 0, ErrFileAlreadyFinished
	}

	n, err := f.file.Write(p)
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	return n, nil
}

func (f *stagedFile) Commit() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.done {
		return "", ErrFileAlreadyFinished
	}
	f.done = true

	tmpPath := f.file.Name()
	if err := errors.Join(f.file.Sync(), f.file.Close()); err != nil {
		_ = f.fs.Remove(tmpPath)
		return "", fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	if err := f.fs.Chmod(tmpPath, filePerm); err != nil {
		_ = f.fs.Remove(tmpPath)
		return "", fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	if err := f.fs.Rename(tmpPath, f.finalPath); err != nil {
		_ = f.fs.Remove(tmpPath)
		return "", fmt.Errorf("%w %q: %w", ErrCommittingFile, f.finalPath, err)
	}

	return f.finalPath, nil
}

func (f *stagedFile) Abort() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.done {
		return nil
	}
	f.done = true

	tmpPath := f.file.Name()
	closeErr := f.file.Close()
	if err := f.fs.Remove(tmpPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Join(closeErr, err)
	}
	return nil
}
