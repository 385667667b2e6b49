// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	configTable    = "config"
	clsColumn      = "cls"
	documentColumn = "document"
)

// findDocumentQuery selects the JSON document of the given discriminator.
func findDocumentQuery(b sq.StatementBuilderType, cls string) (string, []any, error) {
	return b.Select(documentColumn).
		From(configTable).
		Where(sq.Eq{clsColumn: cls}).
		ToSql()
}

// lockDocumentQuery is findDocumentQuery taking a row lock where the dialect
// supports it.
func lockDocumentQuery(b sq.StatementBuilderType, dialect, cls string) (string, []any, error) {
	query := b.Select(documentColumn).
		From(configTable).
		Where(sq.Eq{clsColumn: cls})
	if dialect == "pgx" {
		query = query.Suffix("FOR UPDATE")
	}

	return query.ToSql()
}

func insertDocumentQuery(b sq.StatementBuilderType, cls, document string) (string, []any, error) {
	return b.Insert(configTable).
		Columns(clsColumn, documentColumn).
		Values(cls, document).
		ToSql()
}

func updateDocumentQuery(b sq.StatementBuilderType, cls, document string) (string, []any, error) {
	return b.Update(configTable).
		Set(documentColumn, document).
		Where(sq.Eq{clsColumn: cls}).
		ToSql()
}
