// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/gan-datasets/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// mapUploadError decodes the JSON error body of a failed upload. Bodies
// that are not an upload error fall back to mapHTTPError.
func mapUploadError(resp *resty.Response) error {
	err := mapHTTPError(resp)
	if err == nil {
		return nil
	}

	uploadErr := new(models.UploadError)
	if json.Unmarshal(resp.Body(), uploadErr) != nil || uploadErr.Code == "" {
		return err
	}

	return fmt.Errorf("%w: %w", ErrUploadRejected, uploadErr)
}
