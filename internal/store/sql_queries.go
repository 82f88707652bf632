// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/gan-datasets/models"
)

const uploadsTable = "uploads"

var uploadColumns = []string{
	"id",
	"kind",
	"file_name",
	"path",
	"size",
	"sha256",
	"content_type",
	"created_at",
}

func buildInsertUploadQuery(b sq.StatementBuilderType, file models.StoredFile) (string, []any, error) {
	return b.Insert(uploadsTable).
		Columns(uploadColumns...).
		Values(
			file.ID,
			string(file.Kind),
			file.FileName,
			file.Path,
			file.Size,
			file.SHA256,
			file.ContentType,
			file.CreatedAt.UTC(),
		).
		ToSql()
}

func buildSelectUploadsQuery(b sq.StatementBuilderType, kind *models.DataSetKind) (string, []any, error) {
	query := b.Select(uploadColumns...).From(uploadsTable)
	if kind != nil {
		query = query.Where(sq.Eq{"kind": string(*kind)})
	}
	return query.OrderBy("created_at ASC", "id ASC").ToSql()
}
