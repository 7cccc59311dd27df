package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adnanceeyy/budgeto/internal/model"
)

// Helper function to create a flat store on a temp file. It arrives
// pre-seeded with the demo dataset, exactly as on a first run.
func createTestFlat(t *testing.T) *FlatStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.kv")

	store, err := NewFlatStore(path)
	if err != nil {
		t.Fatalf("Failed to create flat store: %v", err)
	}

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestFlatStore_FirstRunSeedsDemoData(t *testing.T) {
	store := createTestFlat(t)
	ctx := context.Background()

	categories, err := store.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 4)
	assert.Equal(t, int64(1), categories[0].ID)
	assert.Equal(t, int64(4), categories[3].ID)

	transactions, err := store.GetTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 3)
	for _, txn := range transactions {
		assert.Contains(t, []int64{101, 102, 103}, txn.ID)
		// Seeded transactions all reference seeded categories.
		require.NotNil(t, txn.CategoryName)
	}

	debts, err := store.GetDebts(ctx)
	require.NoError(t, err)
	require.Len(t, debts, 2)
	for _, debt := range debts {
		assert.Equal(t, model.DebtPending, debt.Status)
	}
}

func TestFlatStore_ReopenDoesNotReseed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.kv")
	ctx := context.Background()

	store, err := NewFlatStore(path)
	require.NoError(t, err)

	// Remove one seeded category, then reopen. The seed only fires when
	// the categories key is entirely absent, so the edit must survive.
	require.NoError(t, store.DeleteCategory(ctx, 3))
	require.NoError(t, store.Close())

	reopened, err := NewFlatStore(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	categories, err := reopened.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 3)
}

func TestFlatStore_WipeAllReseedsDemoData(t *testing.T) {
	store := createTestFlat(t)
	ctx := context.Background()

	added, err := store.AddCategory(ctx, model.Category{Name: "Custom", Color: "#000000"})
	require.NoError(t, err)
	_, err = store.AddAccount(ctx, model.Account{Name: "Cash", IncludeInTotal: true})
	require.NoError(t, err)

	require.NoError(t, store.WipeAll(ctx))

	// The flat backend never stays empty: wipe is followed by a fresh seed.
	categories, err := store.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 4)
	for _, cat := range categories {
		assert.NotEqual(t, added.ID, cat.ID)
	}

	transactions, err := store.GetTransactions(ctx)
	require.NoError(t, err)
	assert.Len(t, transactions, 3)

	debts, err := store.GetDebts(ctx)
	require.NoError(t, err)
	assert.Len(t, debts, 2)

	accounts, err := store.GetAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestFlatStore_WipeAllKeepsSettings(t *testing.T) {
	store := createTestFlat(t)
	ctx := context.Background()

	require.NoError(t, store.PutSetting(ctx, model.PasscodeKey, "0000"))
	require.NoError(t, store.WipeAll(ctx))

	value, err := store.GetSetting(ctx, model.PasscodeKey)
	require.NoError(t, err)
	assert.Equal(t, "0000", value)
}

func TestFlatStore_TimestampIDs(t *testing.T) {
	store := createTestFlat(t)
	ctx := context.Background()

	first, err := store.AddTransaction(ctx, model.Transaction{
		Type: model.TypeExpense, Amount: 1, CategoryID: 1, Date: "2024-05-01T09:00:00Z",
	})
	require.NoError(t, err)
	second, err := store.AddTransaction(ctx, model.Transaction{
		Type: model.TypeExpense, Amount: 2, CategoryID: 1, Date: "2024-05-01T10:00:00Z",
	})
	require.NoError(t, err)

	// Identifiers are wall-clock nanos, not small sequential integers.
	assert.NotEqual(t, first.ID, second.ID)
	assert.Greater(t, first.ID, int64(1_000_000))
}

func TestFlatStore_DerivedFieldsNotPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "derived.kv")
	ctx := context.Background()

	store, err := NewFlatStore(path)
	require.NoError(t, err)

	txn, err := store.AddTransaction(ctx, model.Transaction{
		Type: model.TypeExpense, Amount: 5, CategoryID: 1, Date: "2024-05-02T09:00:00Z",
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Rename the category through a fresh handle. The joined fields on the
	// next read must reflect the rename, proving they were never stored.
	reopened, err := NewFlatStore(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	require.NoError(t, reopened.UpdateCategory(ctx, 1, model.Category{
		Name: "Dining out", Icon: "utensils", Color: "#AA0000",
	}))

	transactions, err := reopened.GetTransactions(ctx)
	require.NoError(t, err)
	for _, got := range transactions {
		if got.ID != txn.ID {
			continue
		}
		require.NotNil(t, got.CategoryName)
		assert.Equal(t, "Dining out", *got.CategoryName)
		assert.Equal(t, "#AA0000", *got.CategoryColor)
		return
	}
	t.Fatalf("transaction %d not found after reopen", txn.ID)
}
