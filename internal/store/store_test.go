// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/migrations"
)

// newMockDB returns a postgres-dialect *DB backed by sqlmock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newDB(conn, migrations.DialectPostgres, logger.Nop()), mock
}

// newSQLiteDB opens a migrated SQLite database in a temporary directory.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	dsn := "sqlite://" + filepath.Join(t.TempDir(), "notes.db")
	db, err := NewDB(context.Background(), config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRows = []string{"id", "username", "password_hash", "is_staff", "role"}

var noteRows = []string{
	"n.id", "n.author_id", "n.text", "n.private",
	"u.id", "u.username", "u.password_hash", "u.is_staff", "u.role",
}
