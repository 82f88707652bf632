// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/gan-datasets/internal/adapter"
	"github.com/MKhiriev/gan-datasets/internal/logger"
	"github.com/MKhiriev/gan-datasets/internal/mock"
	"github.com/MKhiriev/gan-datasets/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type appFixture struct {
	app     *App
	adapter *mock.MockServerAdapter
	fs      afero.Fs
	out     *bytes.Buffer
}

func newAppFixture(t *testing.T) appFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := appFixture{
		adapter: mock.NewMockServerAdapter(ctrl),
		fs:      afero.NewMemMapFs(),
		out:     new(bytes.Buffer),
	}
	f.app = NewApp(f.adapter, f.fs, f.out, 2, logger.Nop())
	return f
}

func (f appFixture) writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(f.fs, path, []byte(content), 0o644))
}

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

func TestApp_Upload(t *testing.T) {
	f := newAppFixture(t)
	f.writeFile(t, "data/train.csv", "a,b")
	f.writeFile(t, "data/test.csv", "c,d")

	f.adapter.EXPECT().
		UploadDataSet(gomock.Any(), models.ImageDataSet, "train.csv", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.DataSetKind, _ string, content io.Reader) (string, error) {
			assert.Equal(t, "a,b", readAll(t, content))
			return models.UploadSucceededMessage, nil
		})
	f.adapter.EXPECT().
		UploadDataSet(gomock.Any(), models.ImageDataSet, "test.csv", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.DataSetKind, _ string, content io.Reader) (string, error) {
			assert.Equal(t, "c,d", readAll(t, content))
			return models.UploadSucceededMessage, nil
		})

	err := f.app.Run(context.Background(), []string{"upload", "image", "data/train.csv", "data/test.csv"})

	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "data/train.csv: "+models.UploadSucceededMessage+"\n")
	assert.Contains(t, f.out.String(), "data/test.csv: "+models.UploadSucceededMessage+"\n")
}

func TestApp_Upload_PartialFailure(t *testing.T) {
	f := newAppFixture(t)
	f.writeFile(t, "ok.txt", "X")
	rejected := &models.UploadError{Name: "UploadError", Code: "INVALID_FILE_NAME", Message: "Invalid file name", Field: "file"}

	f.adapter.EXPECT().UploadDataSet(gomock.Any(), models.UserDataSet, "ok.txt", gomock.Any()).
		Return(models.UploadSucceededMessage, nil)

	err := f.app.Run(context.Background(), []string{"upload", "user", "ok.txt", "missing.txt"})

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.txt")
	assert.Equal(t, "ok.txt: "+models.UploadSucceededMessage+"\n", f.out.String())

	f.adapter.EXPECT().UploadDataSet(gomock.Any(), models.UserDataSet, "ok.txt", gomock.Any()).
		Return("", errors.Join(adapter.ErrUploadRejected, rejected))

	err = f.app.Run(context.Background(), []string{"upload", "user", "ok.txt"})

	require.ErrorIs(t, err, adapter.ErrUploadRejected)
	var uploadErr *models.UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, "INVALID_FILE_NAME", uploadErr.Code)
}

func TestApp_Generate(t *testing.T) {
	f := newAppFixture(t)
	f.adapter.EXPECT().GenerateImage(gomock.Any()).Return(models.GeneratedImageMessage, nil)
	f.adapter.EXPECT().GenerateImageFromUserDataSets(gomock.Any()).Return(models.GeneratedImageFromDataSetsMessage, nil)

	require.NoError(t, f.app.Run(context.Background(), []string{"generate"}))
	require.NoError(t, f.app.Run(context.Background(), []string{"generate", "user"}))

	assert.Equal(t, models.GeneratedImageMessage+"\n"+models.GeneratedImageFromDataSetsMessage+"\n", f.out.String())
}

func TestApp_Version(t *testing.T) {
	f := newAppFixture(t)
	f.adapter.EXPECT().Version(gomock.Any()).Return("v1.2.3", nil)

	require.NoError(t, f.app.Run(context.Background(), []string{"version"}))

	assert.Equal(t, "v1.2.3\n", f.out.String())
}

func TestApp_Uploads(t *testing.T) {
	f := newAppFixture(t)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	kind := models.UserDataSet

	f.adapter.EXPECT().ListUploads(gomock.Any(), &kind).Return([]models.StoredFile{
		{Kind: models.UserDataSet, FileName: "a.txt", Size: 1, SHA256: "4b68", CreatedAt: created},
	}, nil)

	require.NoError(t, f.app.Run(context.Background(), []string{"uploads", "user"}))

	lines := strings.Split(strings.TrimSpace(f.out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"KIND", "FILE", "SIZE", "SHA256", "CREATED"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"user", "a.txt", "1", "4b68", "2026-03-01T12:00:00Z"}, strings.Fields(lines[1]))
}

func TestApp_AdapterErrorsArePropagated(t *testing.T) {
	f := newAppFixture(t)
	f.adapter.EXPECT().Version(gomock.Any()).Return("", adapter.ErrNotFound)
	f.adapter.EXPECT().ListUploads(gomock.Any(), nil).Return(nil, adapter.ErrInternalServerError)

	assert.ErrorIs(t, f.app.Run(context.Background(), []string{"version"}), adapter.ErrNotFound)
	assert.ErrorIs(t, f.app.Run(context.Background(), []string{"uploads"}), adapter.ErrInternalServerError)
	assert.Empty(t, f.out.String())
}

func TestApp_BadInvocations(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no command", args: nil, wantErr: ErrUnknownCommand},
		{name: "unknown command", args: []string{"delete"}, wantErr: ErrUnknownCommand},
		{name: "upload without files", args: []string{"upload", "user"}, wantErr: ErrBadArguments},
		{name: "upload bad kind", args: []string{"upload", "video", "a.mp4"}, wantErr: ErrBadArguments},
		{name: "generate bad argument", args: []string{"generate", "image"}, wantErr: ErrBadArguments},
		{name: "version with argument", args: []string{"version", "now"}, wantErr: ErrBadArguments},
		{name: "uploads bad kind", args: []string{"uploads", "video"}, wantErr: ErrBadArguments},
		{name: "uploads two kinds", args: []string{"uploads", "user", "image"}, wantErr: ErrBadArguments},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAppFixture(t)

			err := f.app.Run(context.Background(), tt.args)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
