// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// File storage errors. Callers should use [errors.Is] to match them.
var (
	// ErrCreatingDirectory is returned when the destination directory does
	// not exist and cannot be created.
	ErrCreatingDirectory = errors.New("error creating destination directory")

	// ErrCreatingFile is returned when the staged file cannot be created.
	ErrCreatingFile = errors.New("error creating staged file")

	// ErrWritingFile is returned when writing, syncing or closing the
	// staged file fails.
	ErrWritingFile = errors.New("error writing staged file")

	// ErrCommittingFile is returned when the staged file cannot be moved
	// to its final path.
	ErrCommittingFile = errors.New("error committing staged file")

	// ErrFileAlreadyFinished is returned by Write or Commit on a staged
	// file that was already committed or aborted.
	ErrFileAlreadyFinished = errors.New("staged file already finished")
)

// Journal errors.
var (
	// ErrUploadNotSaved is returned when an INSERT into the journal affects
	// no rows.
	ErrUploadNotSaved = errors.New("upload record was not saved")

	// ErrUnsupportedDSN is returned when the journal DSN selects no known
	// driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors, wrapped by repository methods when a
// SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning journal rows fails.
	ErrScanningRows = errors.New("failed to scan upload rows")
)
