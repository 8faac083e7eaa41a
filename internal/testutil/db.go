package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/glebarez/go-sqlite"
)

// Mirrors the PostgreSQL migration in internal/storage using SQLite types,
// so the store runs against an in-memory database in tests.
const calculationsSchema = `
CREATE TABLE calculations (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	operation  TEXT NOT NULL,
	operand_a  REAL NOT NULL,
	operand_b  REAL,
	result     REAL NOT NULL,
	created_at TIMESTAMP NOT NULL
);
`

// OpenTestDB returns an in-memory database with the calculations table
// created. The pool is pinned to a single connection so every unit of work
// sees the same in-memory database.
func OpenTestDB(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(calculationsSchema); err != nil {
		t.Fatalf("creating schema: %v", err)
	}
	return db
}
