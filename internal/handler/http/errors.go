// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Machine-readable codes of [models.UploadError].
const (
	CodeMalformedMultipart  = "MALFORMED_MULTIPART"
	CodeLimitFileCount      = "LIMIT_FILE_COUNT"
	CodeLimitUnexpectedFile = "LIMIT_UNEXPECTED_FILE"
	CodeInvalidFileName     = "INVALID_FILE_NAME"
	CodeStorageError        = "STORAGE_ERROR"
)

const (
	uploadErrorName  = "UploadError"
	storageErrorName = "Error"
)
