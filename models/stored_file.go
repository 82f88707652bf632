// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StoredFile describes a data set file persisted on disk by the upload
// pipeline. The same structure is written to the upload journal.
type StoredFile struct {
	// ID is a time-ordered identifier (UUIDv7) assigned on upload.
	ID string `json:"id"`

	// Kind is the data set kind of the route that received the file.
	Kind DataSetKind `json:"kind"`

	// FileName is the name the client supplied. It is stored verbatim
	// once it passed file name validation.
	FileName string `json:"file_name"`

	// Path is the location of the file on the server file system.
	Path string `json:"path"`

	// Size is the number of payload bytes written.
	Size int64 `json:"size"`

	// SHA256 is the hex-encoded digest of the payload.
	SHA256 string `json:"sha256"`

	// ContentType is the content type the client declared for the part.
	// It is informational only and never validated.
	ContentType string `json:"content_type,omitempty"`

	// CreatedAt is the moment the file was committed to its final path.
	CreatedAt time.Time `json:"created_at"`
}
