// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/gan-datasets/models"
)

const (
	FieldFileName = "file_name"

	// MaxFileNameLength is the common NAME_MAX of Linux and macOS file systems.
	MaxFileNameLength = 255
)

// reservedDeviceNames cannot be used as file names on Windows, with or
// without an extension.
var reservedDeviceNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// FileNameValidator checks client-supplied upload names. A name that passes
// is a single path component that is safe to join onto the destination
// directory on every supported platform.
type FileNameValidator struct{}

func NewFileNameValidator() Validator {
	return &FileNameValidator{}
}

// Validate accepts a string or a [models.StoredFile]. The only field known
// for scoping is [FieldFileName].
func (v *FileNameValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	for _, field := range fields {
		if field != FieldFileName {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	switch value := obj.(type) {
	case string:
		return validateFileName(value)
	case models.StoredFile:
		return validateFileName(value.FileName)
	case *models.StoredFile:
		return validateFileName(value.FileName)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func validateFileName(name string) error {
	if err := checkFileName(name); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidFileName, name, err)
	}
	return nil
}

func checkFileName(name string) error {
	switch {
	case name == "":
		return ErrEmptyFileName
	case len(name) > MaxFileNameLength:
		return ErrFileNameTooLong
	case name == "." || name == "..":
		return ErrFileNameTraversal
	case strings.ContainsAny(name, `/\`):
		return ErrFileNameHasSeparator
	case !utf8.ValidString(name):
		return ErrFileNameInvalidChars
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return ErrFileNameInvalidChars
		}
	}

	stem, _, _ := strings.Cut(name, ".")
	if _, ok := reservedDeviceNames[strings.ToUpper(strings.TrimSpace(stem))]; ok {
		return ErrFileNameReserved
	}

	return nil
}
