// Package testutil provides test store constructors shared across packages.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/adnanceeyy/budgeto/internal/storage"
)

// SetupSQLiteStore creates a migrated SQLite store on a temp directory.
// Cleanup is registered automatically.
func SetupSQLiteStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "budgeto.db")
	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { _ = store.Close() })
	return store
}

// SetupFlatStore creates a flat store on a temp directory. The store
// arrives pre-seeded with the demo dataset, exactly as on a first run.
// Cleanup is registered automatically.
func SetupFlatStore(t *testing.T) *storage.FlatStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "budgeto.kv")
	store, err := storage.NewFlatStore(path)
	if err != nil {
		t.Fatalf("failed to create test flat store: %v", err)
	}

	t.Cleanup(func() { _ = store.Close() })
	return store
}
