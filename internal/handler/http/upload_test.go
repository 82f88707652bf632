// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload_Success(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		imageDir   string
		wantPath   string
		wantLogMsg string
	}{
		{
			name:       "user data sets",
			target:     "/upload-data-sets",
			imageDir:   "userdatasets",
			wantPath:   filepath.Join("public", "userdatasets", "a.txt"),
			wantLogMsg: "Request: Upload Data Sets",
		},
		{
			name:       "image data sets share the default directory",
			target:     "/upload-image-data-sets",
			imageDir:   "userdatasets",
			wantPath:   filepath.Join("public", "userdatasets", "a.txt"),
			wantLogMsg: "Request: Upload Image Data Sets",
		},
		{
			name:       "image data sets in their own directory",
			target:     "/upload-image-data-sets",
			imageDir:   "imagedatasets",
			wantPath:   filepath.Join("public", "imagedatasets", "a.txt"),
			wantLogMsg: "Request: Upload Image Data Sets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := defaultTestFiles()
			files.ImageDataSetsDir = tt.imageDir
			s := newTestServer(t, files)

			rr := s.do(newUploadRequest(t, tt.target, fileField("a.txt", "X\x00\xffbinary")))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "File is uploaded successfully.", rr.Body.String())
			assert.Equal(t, "X\x00\xffbinary", s.readFile(t, tt.wantPath))
			assert.Contains(t, s.logs.String(), tt.wantLogMsg)
		})
	}
}

func TestUpload_SameNameOverwrites(t *testing.T) {
	s := newTestServer(t, defaultTestFiles())

	rr := s.do(newUploadRequest(t, "/upload-data-sets", fileField("a.txt", "X")))
	require.Equal(t, http.StatusOK, rr.Code)
	rr = s.do(newUploadRequest(t, "/upload-data-sets", fileField("a.txt", "Y")))
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, "Y", s.readFile(t, filepath.Join("public", "userdatasets", "a.txt")))
}

func TestUpload_IgnoresTextFields(t *testing.T) {
	s := newTestServer(t, defaultTestFiles())

	rr := s.do(newUploadRequest(t, "/upload-data-sets",
		formPart{field: "label", content: "faces"},
		fileField("faces.csv", "1,2,3"),
	))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1,2,3", s.readFile(t, filepath.Join("public", "userdatasets", "faces.csv")))
}

func TestUpload_Failures(t *testing.T) {
	tests := []struct {
		name      string
		request   func(t *testing.T) *http.Request
		wantCode  string
		wantField string
	}{
		{
			name: "no file field",
			request: func(t *testing.T) *http.Request {
				return newUploadRequest(t, "/upload-data-sets", formPart{field: "label", content: "faces"})
			},
			wantCode:  CodeLimitFileCount,
			wantField: "file",
		},
		{
			name: "empty multipart body",
			request: func(t *testing.T) *http.Request {
				return newUploadRequest(t, "/upload-data-sets")
			},
			wantCode:  CodeLimitFileCount,
			wantField: "file",
		},
		{
			name: "two file parts",
			request: func(t *testing.T) *http.Request {
				return newUploadRequest(t, "/upload-data-sets", fileField("a.txt", "X"), fileField("b.txt", "Y"))
			},
			wantCode:  CodeLimitUnexpectedFile,
			wantField: "file",
		},
		{
			name: "file under another field",
			request: func(t *testing.T) *http.Request {
				return newUploadRequest(t, "/upload-image-data-sets", formPart{field: "image", fileName: "cat.png", content: "PNG"})
			},
			wantCode:  CodeLimitUnexpectedFile,
			wantField: "image",
		},
		{
			name: "path traversal",
			request: func(t *testing.T) *http.Request {
				return newUploadRequest(t, "/upload-data-sets", fileField("../x", "evil"))
			},
			wantCode:  CodeInvalidFileName,
			wantField: "file",
		},
		{
			name: "not multipart",
			request: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/upload-data-sets", strings.NewReader(`{"file":"a.txt"}`))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
			wantCode: CodeMalformedMultipart,
		},
		{
			name: "missing boundary",
			request: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/upload-data-sets", strings.NewReader("X"))
				req.Header.Set("Content-Type", "multipart/form-data")
				return req
			},
			wantCode: CodeMalformedMultipart,
		},
		{
			name: "truncated body",
			request: func(t *testing.T) *http.Request {
				body := "--B\r\nContent-Disposition: form-data; name=\"file\"; filename=\"a.txt\"\r\n\r\nX"
				req := httptest.NewRequest(http.MethodPost, "/upload-data-sets", strings.NewReader(body))
				req.Header.Set("Content-Type", "multipart/form-data; boundary=B")
				return req
			},
			wantCode: CodeMalformedMultipart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, defaultTestFiles())

			rr := s.do(tt.request(t))

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
			uploadErr := decodeUploadError(t, rr)
			assert.Equal(t, tt.wantCode, uploadErr.Code)
			assert.Equal(t, tt.wantField, uploadErr.Field)
			assert.NotEmpty(t, uploadErr.Message)

			for _, dir := range []string{"public", filepath.Join("public", "userdatasets")} {
				entries, err := afero.ReadDir(s.fs, dir)
				if err != nil {
					continue
				}
				for _, e := range entries {
					assert.True(t, e.IsDir(), "unexpected file %s left in %s", e.Name(), dir)
				}
			}
			exists, err := afero.Exists(s.fs, "x")
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestUpload_StorageFailureIsStorageError(t *testing.T) {
	h := newFakeServer(t, &fakeUploadService{uploadErr: assert.AnError})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, newUploadRequest(t, "/upload-data-sets", fileField("a.txt", "X")))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	uploadErr := decodeUploadError(t, rr)
	assert.Equal(t, CodeStorageError, uploadErr.Code)
	assert.NotContains(t, uploadErr.Message, assert.AnError.Error())
}
