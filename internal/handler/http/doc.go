// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the data set server.
//
// It wires the public routes (the two multipart upload endpoints, the two
// image generation stubs and the static web root), the supporting API
// routes, and the middleware chain: panic recovery, request tracing,
// access logging, CORS and response compression.
package http
