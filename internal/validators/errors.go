// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidFileName is wrapped by every file name rejection below.
	ErrInvalidFileName = errors.New("invalid file name")

	ErrEmptyFileName        = errors.New("file name is empty")
	ErrFileNameTooLong      = errors.New("file name is too long")
	ErrFileNameTraversal    = errors.New("file name refers to a directory")
	ErrFileNameHasSeparator = errors.New("file name contains a path separator")
	ErrFileNameInvalidChars = errors.New("file name contains invalid characters")
	ErrFileNameReserved     = errors.New("file name is a reserved device name")
)
