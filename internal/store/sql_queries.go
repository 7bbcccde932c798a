// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_storage"
	kvKeyColumn   = "storage_key"
	kvValueColumn = "storage_value"
)

// psql renders $n placeholders, understood by both pgx and go-sqlite3.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSelectValueQuery builds the lookup of a single key.
func buildSelectValueQuery(key string) (string, []any, error) {
	query, args, err := psql.
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpsertValueQuery builds an INSERT that overwrites the value when the
// key already exists.
func buildUpsertValueQuery(key, value string) (string, []any, error) {
	query, args, err := psql.
		Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn).
		Values(key, value).
		Suffix(fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s", kvKeyColumn, kvValueColumn, kvValueColumn)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
