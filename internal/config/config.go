// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/gan-datasets/models"
)

// StructuredConfig is the top-level configuration container. It is populated
// once at process start by merging environment variables, command-line flags
// and an optional JSON file, and then passed explicitly into constructors.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the upload directories and the optional upload journal.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeouts of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the uploader client uses to reach a server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args holds the positional command-line arguments left after flag
	// parsing. Only the uploader client uses them.
	Args []string
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string exposed via GET /api/version/.
	// When empty, the linker-injected build version is used.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address the server listens on, in "host:port"
	// format. The host part may be empty to listen on all interfaces.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ReadTimeout bounds reading an entire request, body included.
	// Zero means no timeout.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`

	// WriteTimeout bounds writing the response. Zero means no timeout.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// ShutdownTimeout bounds the graceful drain on SIGINT/SIGTERM.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the upload journal connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the public web root and the upload destinations.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the upload journal.
type DB struct {
	// DSN selects the journal backend. A "postgres://" or "postgresql://"
	// DSN uses PostgreSQL through pgx, anything else is treated as an SQLite
	// file path. An empty DSN disables the journal.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds the file-system layout served and written by the server.
type Files struct {
	// PublicDir is the public web root served by the static file handler.
	// Env: STORAGE_FILES_PUBLIC_DIR
	PublicDir string `env:"PUBLIC_DIR"`

	// UserDataSetsDir is the destination of /upload-data-sets, relative to
	// PublicDir.
	// Env: STORAGE_FILES_USER_DATA_SETS_DIR
	UserDataSetsDir string `env:"USER_DATA_SETS_DIR"`

	// ImageDataSetsDir is the destination of /upload-image-data-sets,
	// relative to PublicDir.
	// Env: STORAGE_FILES_IMAGE_DATA_SETS_DIR
	ImageDataSetsDir string `env:"IMAGE_DATA_SETS_DIR"`

	// ExposeUploads controls whether the static handler serves the upload
	// directories. A pointer so an explicit false survives merging.
	// Env: STORAGE_FILES_EXPOSE_UPLOADS
	ExposeUploads *bool `env:"EXPOSE_UPLOADS"`
}

// Adapter holds the uploader client's view of the server.
type Adapter struct {
	// HTTPAddress is the base URL of the server (e.g. "http://localhost:6060").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request of the client.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Concurrency is the number of files the client uploads at once.
	// Env: ADAPTER_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`
}

// DataSetDir returns the destination directory of kind, rooted at PublicDir.
func (f Files) DataSetDir(kind models.DataSetKind) string {
	switch kind {
	case models.ImageDataSet:
		return filepath.Join(f.PublicDir, f.ImageDataSetsDir)
	default:
		return filepath.Join(f.PublicDir, f.UserDataSetsDir)
	}
}

// DataSetDirs returns the destination directory of every known kind.
func (f Files) DataSetDirs() map[models.DataSetKind]string {
	dirs := make(map[models.DataSetKind]string, len(models.DataSetKinds))
	for _, kind := range models.DataSetKinds {
		dirs[kind] = f.DataSetDir(kind)
	}
	return dirs
}

// UploadsExposed reports whether uploaded files are web-servable.
func (f Files) UploadsExposed() bool {
	return f.ExposeUploads == nil || *f.ExposeUploads
}

// GetStructuredConfig loads, merges and validates the configuration from all
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults fill whatever is still unset.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
