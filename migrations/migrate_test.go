// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_SQLiteCreatesKVTable(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "quotes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db, DialectSQLite))
	// applying twice is a no-op
	require.NoError(t, Migrate(db, DialectSQLite))

	_, err = db.Exec(`INSERT INTO kv_storage (storage_key, storage_value) VALUES ('quotes', '[]')`)
	require.NoError(t, err)

	var value string
	require.NoError(t, db.QueryRow(`SELECT storage_value FROM kv_storage WHERE storage_key = 'quotes'`).Scan(&value))
	assert.Equal(t, "[]", value)
}

func TestMigrate_Errors(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	tests := []struct {
		name    string
		db      *sql.DB
		dialect string
		wantMsg string
	}{
		{name: "nil db", db: nil, dialect: DialectPostgres, wantMsg: "db is nil"},
		{name: "unknown dialect", db: mockDB, dialect: "oracle", wantMsg: "setting dialect"},
		{name: "db rejects goose queries", db: mockDB, dialect: DialectSQLite, wantMsg: "migration error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Migrate(tt.db, tt.dialect)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
