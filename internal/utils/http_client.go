// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
//	client := utils.NewHTTPClient("http://localhost:6060", 30*time.Second)
//	resp, err := client.R().Get("/generate-image")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client whose requests are resolved against
// baseURL. A zero timeout leaves requests unbounded.
//
// Each call returns an independent client instance with its own
// connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", "gan-datasets-uploader")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
