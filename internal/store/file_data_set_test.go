// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/gan-datasets/internal/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStorage(t *testing.T) (DataSetFileStorage, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return NewDataSetFileStorage(fs, logger.Nop()), fs
}

func stageAndCommit(t *testing.T, s DataSetFileStorage, dir, name, content string) string {
	t.Helper()
	staged, err := s.Create(context.Background(), dir, name)
	require.NoError(t, err)
	_, err = io.Copy(staged, strings.NewReader(content))
	require.NoError(t, err)
	path, err := staged.Commit()
	require.NoError(t, err)
	return path
}

func listDir(t *testing.T, fs afero.Fs, dir string) []string {
	t.Helper()
	entries, err := afero.ReadDir(fs, dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestDataSetFileStorage_CommitWritesFinalFile(t *testing.T) {
	s, fs := newTestFileStorage(t)
	dir := filepath.Join("public", "userdatasets")

	path := stageAndCommit(t, s, dir, "a.txt", "X")

	assert.Equal(t, filepath.Join(dir, "a.txt"), path)
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "X", string(data))
	assert.Equal(t, []string{"a.txt"}, listDir(t, fs, dir), "no staged leftovers")

	info, err := fs.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, filePerm, info.Mode().Perm())
}

func TestDataSetFileStorage_LaterCommitOverwrites(t *testing.T) {
	s, fs := newTestFileStorage(t)

	stageAndCommit(t, s, "d", "a.txt", "X")
	path := stageAndCommit(t, s, "d", "a.txt", "Y")

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "Y", string(data))
}

func TestDataSetFileStorage_ContentInvisibleBeforeCommit(t *testing.T) {
	s, fs := newTestFileStorage(t)

	staged, err := s.Create(context.Background(), "d", "a.txt")
	require.NoError(t, err)
	_, err = staged.Write([]byte("partial"))
	require.NoError(t, err)

	_, err = fs.Stat(filepath.Join("d", "a.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDataSetFileStorage_AbortRemovesStagedFile(t *testing.T) {
	s, fs := newTestFileStorage(t)
	stageAndCommit(t, s, "d", "a.txt", "old")

	staged, err := s.Create(context.Background(), "d", "a.txt")
	require.NoError(t, err)
	_, err = staged.Write([]byte("new"))
	require.NoError(t, err)
	require.NoError(t, staged.Abort())

	assert.Equal(t, []string{"a.txt"}, listDir(t, fs, "d"))
	data, err := afero.ReadFile(fs, filepath.Join("d", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(data), "aborted upload must not touch the existing file")
}

func TestDataSetFileStorage_FinishedFileRejectsUse(t *testing.T) {
	s, _ := newTestFileStorage(t)

	staged, err := s.Create(context.Background(), "d", "a.txt")
	require.NoError(t, err)
	_, err = staged.Commit()
	require.NoError(t, err)

	_, err = staged.Write([]byte("late"))
	assert.ErrorIs(t, err, ErrFileAlreadyFinished)
	_, err = staged.Commit()
	assert.ErrorIs(t, err, ErrFileAlreadyFinished)
	assert.NoError(t, staged.Abort())
}

func TestDataSetFileStorage_CanceledContext(t *testing.T) {
	s, _ := newTestFileStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Create(ctx, "d", "a.txt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDataSetFileStorage_DirectoryCreationFails(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	s := NewDataSetFileStorage(fs, logger.Nop())

	_, err := s.Create(context.Background(), "d", "a.txt")
	assert.ErrorIs(t, err, ErrCreatingDirectory)
}

func TestDataSetFileStorage_OnDisk(t *testing.T) {
	s := NewDataSetFileStorage(afero.NewOsFs(), logger.Nop())
	dir := filepath.Join(t.TempDir(), "public", "userdatasets")

	path := stageAndCommit(t, s, dir, "b.bin", "payload")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestIsStagedFile(t *testing.T) {
	s, fs := newTestFileStorage(t)
	staged, err := s.Create(context.Background(), "d", "a.txt")
	require.NoError(t, err)
	t.Cleanup(func() { _ = staged.Abort() })

	names := listDir(t, fs, "d")
	require.Len(t, names, 1)
	assert.True(t, IsStagedFile(names[0]))
	assert.True(t, IsStagedFile(filepath.Join("d", names[0])))

	tests := []struct {
		name string
		want bool
	}{
		{name: ".upload-42.part", want: true},
		{name: "a.txt", want: false},
		{name: "upload-42.part", want: false},
		{name: ".upload-42.part.txt", want: false},
		{name: "", want: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsStagedFile(tt.name), tt.name)
	}
}
