// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Plain-text acknowledgements returned by the public endpoints. Clients
// match on these strings, so they must not change.
const (
	UploadSucceededMessage            = "File is uploaded successfully."
	GeneratedImageMessage             = "Generated an image."
	GeneratedImageFromDataSetsMessage = "Generated an image from user data sets."
)

// UploadError is the JSON body sent with a failed upload: an error name, a
// machine-readable code, a message and the offending form field.
type UploadError struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Error implements error so an UploadError can travel through error returns.
func (e *UploadError) Error() string {
	return e.Code + ": " + e.Message
}

// UploadsResponse lists upload journal records.
type UploadsResponse struct {
	Uploads []StoredFile `json:"uploads"`

	// Length is the number of entries in Uploads.
	Length int `json:"length"`
}
