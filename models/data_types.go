// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// DataSetKind identifies which upload route a data set arrived through.
// The kind selects the destination directory and is recorded in the
// upload journal.
type DataSetKind string

const (
	// UserDataSet is a generic data set uploaded via /upload-data-sets.
	UserDataSet DataSetKind = "user"

	// ImageDataSet is an image data set uploaded via /upload-image-data-sets.
	ImageDataSet DataSetKind = "image"
)

// DataSetKinds lists every known kind in a stable order.
var DataSetKinds = []DataSetKind{UserDataSet, ImageDataSet}

// ParseDataSetKind converts s into a [DataSetKind].
func ParseDataSetKind(s string) (DataSetKind, error) {
	switch kind := DataSetKind(s); kind {
	case UserDataSet, ImageDataSet:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown data set kind %q", s)
	}
}

func (k DataSetKind) String() string {
	return string(k)
}
