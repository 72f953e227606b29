package sqlite

import (
	"path/filepath"
	"testing"
)

// setupTestDB opens a throwaway SQLite file in t.TempDir() and applies the
// schema migrations, returning the DB and a cleanup func.
func setupTestDB(t *testing.T) (*DB, func()) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	migrationsPath, err := filepath.Abs(filepath.Join("..", "..", "..", "migrations"))
	if err != nil {
		t.Fatalf("failed to resolve migrations path: %v", err)
	}
	if err := db.Migrate(migrationsPath); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db, func() { db.Close() }
}
