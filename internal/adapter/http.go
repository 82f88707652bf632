// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/gan-datasets/internal/config"
	"github.com/MKhiriev/gan-datasets/internal/logger"
	"github.com/MKhiriev/gan-datasets/internal/utils"
	"github.com/MKhiriev/gan-datasets/models"
)

const uploadFieldName = "file"

var uploadRoutes = map[models.DataSetKind]string{
	models.UserDataSet:  "/upload-data-sets",
	models.ImageDataSet: "/upload-image-data-sets",
}

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// adapterCfg.HTTPAddress may omit the scheme, "http://" is assumed.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// UploadDataSet implements [ServerAdapter]. A rejected upload returns an
// error wrapping [ErrUploadRejected] and the decoded *models.UploadError.
func (h *httpServerAdapter) UploadDataSet(ctx context.Context, kind models.DataSetKind, fileName string, content io.Reader) (string, error) {
	route, ok := uploadRoutes[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDataSetKind, kind)
	}

	h.logger.Debug().Str("route", route).Str("file_name", fileName).Msg("uploading data set")

	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader(uploadFieldName, fileName, content).
		Post(route)
	if err != nil {
		return "", fmt.Errorf("upload request: %w", err)
	}
	if err = mapUploadError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

// GenerateImage implements [ServerAdapter].
func (h *httpServerAdapter) GenerateImage(ctx context.Context) (string, error) {
	return h.getText(ctx, "/generate-image")
}

// GenerateImageFromUserDataSets implements [ServerAdapter].
func (h *httpServerAdapter) GenerateImageFromUserDataSets(ctx context.Context) (string, error) {
	return h.getText(ctx, "/generate-image-from-user-data-sets")
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	return h.getText(ctx, "/api/version/")
}

// ListUploads implements [ServerAdapter]. It GETs /api/uploads, adding the
// kind query parameter when kind is set.
func (h *httpServerAdapter) ListUploads(ctx context.Context, kind *models.DataSetKind) ([]models.StoredFile, error) {
	req := h.client.R().SetContext(ctx)
	if kind != nil {
		req.SetQueryParam("kind", kind.String())
	}

	resp, err := req.Get("/api/uploads")
	if err != nil {
		return nil, fmt.Errorf("list uploads request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var ur models.UploadsResponse
	if err = json.Unmarshal(resp.Body(), &ur); err != nil {
		return nil, fmt.Errorf("decode uploads response: %w", err)
	}
	return ur.Uploads, nil
}

func (h *httpServerAdapter) getText(ctx context.Context, route string) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get(route)
	if err != nil {
		return "", fmt.Errorf("GET %s request: %w", route, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}
