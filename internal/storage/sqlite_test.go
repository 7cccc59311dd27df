package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adnanceeyy/budgeto/internal/model"
)

// Helper function to create a migrated SQLite store.
func createTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_MigrateIsIdempotent(t *testing.T) {
	store := createTestSQLite(t)
	ctx := context.Background()

	// Running migrations again against a current schema must be a no-op.
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Migrate(ctx))
}

func TestSQLiteStore_StartsEmpty(t *testing.T) {
	store := createTestSQLite(t)
	ctx := context.Background()

	// Unlike the flat store, SQLite never auto-seeds sample data.
	categories, err := store.GetCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)

	transactions, err := store.GetTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, transactions)

	debts, err := store.GetDebts(ctx)
	require.NoError(t, err)
	assert.Empty(t, debts)
}

func TestSQLiteStore_AutoincrementIDs(t *testing.T) {
	store := createTestSQLite(t)
	ctx := context.Background()

	first, err := store.AddCategory(ctx, model.Category{Name: "Food"})
	require.NoError(t, err)
	second, err := store.AddCategory(ctx, model.Category{Name: "Transport"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestSQLiteStore_WipeAllLeavesStoreEmpty(t *testing.T) {
	store := createTestSQLite(t)
	ctx := context.Background()

	cat, err := store.AddCategory(ctx, model.Category{Name: "Food", Color: "#F97316"})
	require.NoError(t, err)
	_, err = store.AddTransaction(ctx, model.Transaction{
		Type: model.TypeExpense, Amount: 9.99, CategoryID: cat.ID, Date: "2024-03-01T08:00:00Z",
	})
	require.NoError(t, err)
	_, err = store.AddDebt(ctx, model.Debt{
		Person: "Alex", Amount: 25, Type: model.DebtOwedToMe, Date: "2024-03-01T08:00:00Z",
	})
	require.NoError(t, err)
	_, err = store.AddAccount(ctx, model.Account{Name: "Cash", IncludeInTotal: true})
	require.NoError(t, err)

	require.NoError(t, store.WipeAll(ctx))

	// The relational backend does not re-seed after a wipe.
	categories, err := store.GetCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)

	transactions, err := store.GetTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, transactions)

	debts, err := store.GetDebts(ctx)
	require.NoError(t, err)
	assert.Empty(t, debts)

	accounts, err := store.GetAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestSQLiteStore_WipeAllKeepsSettings(t *testing.T) {
	store := createTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, store.PutSetting(ctx, model.PasscodeKey, "1234"))
	require.NoError(t, store.WipeAll(ctx))

	value, err := store.GetSetting(ctx, model.PasscodeKey)
	require.NoError(t, err)
	assert.Equal(t, "1234", value)
}

func TestSQLiteStore_ReopenPersistsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))

	cat, err := store.AddCategory(ctx, model.Category{Name: "Bills", Color: "#3B82F6"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()
	require.NoError(t, reopened.Migrate(ctx))

	categories, err := reopened.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, cat.ID, categories[0].ID)
	assert.Equal(t, "Bills", categories[0].Name)
}
