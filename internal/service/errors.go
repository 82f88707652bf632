// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var ErrUnknownDataSetKind = errors.New("unknown data set kind")

// Upload pipeline errors.
var (
	// ErrNotMultipart is returned when the request is not multipart/form-data.
	ErrNotMultipart = errors.New("request content type is not multipart/form-data")

	// ErrMalformedMultipart is returned when the multipart body cannot be
	// parsed or ends prematurely.
	ErrMalformedMultipart = errors.New("malformed multipart body")

	// ErrNoFileProvided is returned when the body holds no "file" part.
	ErrNoFileProvided = errors.New("no file provided")

	// ErrUnexpectedFile is returned for a second "file" part or a file part
	// under any other field name.
	ErrUnexpectedFile = errors.New("unexpected file field")
)

// FieldError attaches the multipart field name to an upload error.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
