package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adnanceeyy/budgeto/internal/common"
	"github.com/adnanceeyy/budgeto/internal/model"
	"github.com/adnanceeyy/budgeto/internal/service"
)

// forEachStore runs a test against both backends. Everything asserted here
// is part of the shared gateway contract; backend-specific behavior (seed
// data, wipe asymmetry, identifier shape) lives in the per-backend test
// files. Assertions are written to hold whether or not the flat store's
// demo dataset is present.
func forEachStore(t *testing.T, fn func(t *testing.T, store service.Store)) {
	t.Helper()

	backends := []struct {
		setup func(t *testing.T) service.Store
		name  string
	}{
		{name: "sqlite", setup: func(t *testing.T) service.Store { return createTestSQLite(t) }},
		{name: "flat", setup: func(t *testing.T) service.Store { return createTestFlat(t) }},
	}

	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			fn(t, backend.setup(t))
		})
	}
}

// An identifier no record will ever carry.
const missingID = int64(987654321)

func TestStore_CategoryRoundTrip(t *testing.T) {
	forEachStore(t, func(t *testing.T, store service.Store) {
		ctx := context.Background()

		created, err := store.AddCategory(ctx, model.Category{
			Name: "Dining", Icon: "utensils", Color: "#6366F1", Budget: 600,
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Dining", created.Name)

		categories, err := store.GetCategories(ctx)
		require.NoError(t, err)

		var found *model.Category
		for i := range categories {
			if categories[i].ID == created.ID {
				found = &categories[i]
				break
			}
		}
		require.NotNil(t, found, "created category missing from listing")
		assert.Equal(t, *created, *found)

		require.NoError(t, store.UpdateCategory(ctx, created.ID, model.Category{
			Name: "Eating out", Icon: "pizza", Color: "#FF0000", Budget: 450,
		}))

		categories, err = store.GetCategories(ctx)
		require.NoError(t, err)
		for _, cat := range categories {
			if cat.ID == created.ID {
				assert.Equal(t, "Eating out", cat.Name)
				assert.Equal(t, "pizza", cat.Icon)
				assert.Equal(t, "#FF0000", cat.Color)
				assert.Equal(t, 450.0, cat.Budget)
				return
			}
		}
		t.Fatal("updated category missing from listing")
	})
}

func TestStore_TransactionJoinReflectsCurrentCategory(t *testing.T) {
	forEachStore(t, func(t *testing.T, store service.Store) {
		ctx := context.Background()

		cat, err := store.AddCategory(ctx, model.Category{
			Name: "Dining", Icon: "utensils", Color: "#6366F1", Budget: 600,
		})
		require.NoError(t, err)

		txn, err := store.AddTransaction(ctx, model.Transaction{
			Type: model.TypeExpense, Amount: 32.50, CategoryID: cat.ID,
			Note: "Coffee", Date: "2024-01-15T10:00:00Z",
		})
		require.NoError(t, err)

		findTxn := func() *model.Transaction {
			transactions, listErr := store.GetTransactions(ctx)
			require.NoError(t, listErr)
			for i := range transactions {
				if transactions[i].ID == txn.ID {
					return &transactions[i]
				}
			}
			return nil
		}

		got := findTxn()
		require.NotNil(t, got)
		require.NotNil(t, got.CategoryName)
		require.NotNil(t, got.CategoryColor)
		assert.Equal(t, "Dining", *got.CategoryName)
		assert.Equal(t, "#6366F1", *got.CategoryColor)

		// The join must reflect the category's current state, not a
		// snapshot from creation time.
		require.NoError(t, store.UpdateCategory(ctx, cat.ID, model.Category{
			Name: "Restaurants", Icon: "utensils", Color: "#00FF00", Budget: 600,
		}))

		got = findTxn()
		require.NotNil(t, got)
		require.NotNil(t, got.CategoryName)
		assert.Equal(t, "Restaurants", *got.CategoryName)
		assert.Equal(t, "#00FF00", *got.CategoryColor)
	})
}

func TestStore_DeleteCategoryCascades(t *testing.T) {
	forEachStore(t, func(t *testing.T, store service.Store) {
		ctx := context.Background()

		dining, err := store.AddCategory(ctx, model.Category{Name: "Dining", Color: "#6366F1"})
		require.NoError(t, err)
		travel, err := store.AddCategory(ctx, model.Category{Name: "Travel", Color: "#0EA5E9"})
		require.NoError(t, err)

		doomed1, err := store.AddTransaction(ctx, model.Transaction{
			Type: model.TypeExpense, Amount: 32.50, CategoryID: dining.ID, Date: "2024-01-15T10:00:00Z",
		})
		require.NoError(t, err)
		doomed2, err := store.AddTransaction(ctx, model.Transaction{
			Type: model.TypeExpense, Amount: 18.00, CategoryID: dining.ID, Date: "2024-01-16T10:00:00Z",
		})
		require.NoError(t, err)
		survivor, err := store.AddTransaction(ctx, model.Transaction{
			Type: model.TypeExpense, Amount: 120.00, CategoryID: travel.ID, Date: "2024-01-17T10:00:00Z",
		})
		require.NoError(t, err)

		require.NoError(t, store.DeleteCategory(ctx, dining.ID))

		categories, err := store.GetCategories(ctx)
		require.NoError(t, err)
		for _, cat := range categories {
			assert.NotEqual(t, dining.ID, cat.ID)
		}

		transactions, err := store.GetTransactions(ctx)
		require.NoError(t, err)
		survivorSeen := false
		for _, txn := range transactions {
			assert.NotEqual(t, doomed1.ID, txn.ID, "cascade left a referencing transaction behind")
			assert.NotEqual(t, doomed2.ID, txn.ID, "cascade left a referencing transaction behind")
			assert.NotEqual(t, dining.ID, txn.CategoryID)
			if txn.ID == survivor.ID {
				survivorSeen = true
			}
		}
		assert.True(t, survivorSeen, "cascade removed an unrelated transaction")
	})
}

func TestStore_MissingIDMutationsAreSilentNoOps(t *testing.T) {
	forEachStore(t, func(t *testing.T, store service.Store) {
		ctx := context.Background()

		cat, err := store.AddCategory(ctx, model.Category{Name: "Dining", Color: "#6366F1"})
		require.NoError(t, err)
		_, err = store.AddTransaction(ctx, model.Transaction{
			Type: model.TypeExpense, Amount: 10, CategoryID: cat.ID, Date: "2024-02-01T10:00:00Z",
		})
		require.NoError(t, err)
		_, err = store.AddDebt(ctx, model.Debt{
			Person: "Alex", Amount: 50, Type: model.DebtOwedToMe, Date: "2024-02-01T10:00:00Z",
		})
		require.NoError(t, err)

		snapshot := func() ([]model.Category, []model.Transaction, []model.Debt, []model.Account) {
			categories, listErr := store.GetCategories(ctx)
			require.NoError(t, listErr)
			transactions, listErr := store.GetTransactions(ctx)
			require.NoError(t, listErr)
			debts, listErr := store.GetDebts(ctx)
			require.NoError(t, listErr)
			accounts, listErr := store.GetAccounts(ctx)
			require.NoError(t, listErr)
			return categories, transactions, debts, accounts
		}

		beforeCats, beforeTxns, beforeDebts, beforeAccounts := snapshot()

		require.NoError(t, store.UpdateCategory(ctx, missingID, model.Category{Name: "Ghost"}))
		require.NoError(t, store.DeleteCategory(ctx, missingID))
		require.NoError(t, store.UpdateTransaction(ctx, missingID, model.Transaction{
			Type: model.TypeExpense, Amount: 1, CategoryID: cat.ID, Date: "2024-02-02T10:00:00Z",
		}))
		require.NoError(t, store.DeleteTransaction(ctx, missingID))
		require.NoError(t, store.UpdateDebt(ctx, missingID, model.Debt{
			Person: "Ghost", Amount: 1, Type: model.DebtIOwe, Date: "2024-02-02T10:00:00Z", Status: model.DebtPending,
		}))
		require.NoError(t, store.UpdateDebtStatus(ctx, missingID, model.DebtSettled))
		require.NoError(t, store.DeleteDebt(ctx, missingID))
		require.NoError(t, store.UpdateAccount(ctx, missingID, model.Account{Name: "Ghost"}))
		require.NoError(t, store.DeleteAccount(ctx, missingID))

		afterCats, afterTxns, afterDebts, afterAccounts := snapshot()
		assert.Equal(t, beforeCats, afterCats)
		assert.Equal(t, beforeTxns, afterTxns)
		assert.Equal(t, beforeDebts, afterDebts)
		assert.Equal(t, beforeAccounts, afterAccounts)
	})
}

func TestStore_TransactionsListedNewestFirst(t *testing.T) {
	forEachStore(t, func(t *testing.T, store service.Store) {
		ctx := context.Background()

		cat, err := store.AddCategory(ctx, model.Category{Name: "Misc", Color: "#888888"})
		require.NoError(t, err)

		dates := []string{
			"2024-01-15T10:00:00Z",
			"2024-03-02T18:30:00Z",
			"2024-02-10T07:45:00Z",
		}
		for i, date := range dates {
			_, err := store.AddTransaction(ctx, model.Transaction{
				Type: model.TypeExpense, Amount: float64(i + 1), CategoryID: cat.ID, Date: date,
			})
			require.NoError(t, err)
		}

		transactions, err := store.GetTransactions(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(transactions), len(dates))
		for i := 1; i < len(transactions); i++ {
			assert.GreaterOrEqual(t, transactions[i-1].Date, transactions[i].Date,
				"transactions out of order at index %d", i)
		}
	})
}

func TestStore_DebtsListedNewestFirst(t *testing.T) {
	forEachStore(t, func(t *testing.T, store service.Store) {
		ctx := context.Background()

		dates := []string{
			"2024-01-01T00:00:00Z",
			"2024-04-01T00:00:00Z",
			"2024-02-01T00:00:00Z",
		}
		for i, date := range dates {
			_, err := store.AddDebt(ctx, model.Debt{
				Person: "P", Amount: float64(i + 1), Type: model.DebtIOwe, Date: date,
			})
			require.NoError(t, err)
		}

		debts, err := store.GetDebts(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(debts), len(dates))
		for i := 1; i < len(debts); i++ {
			assert.GreaterOrEqual(t, debts[i-1].Date, debts[i].Date,
				"debts out of order at index %d", i)
		}
	})
}

func TestStore_DebtLifecycle(t *testing.T) {
	forEachStore(t, func(t *testing.T, store service.Store) {
		ctx := context.Background()

		// Status is forced to pending on creation, whatever was passed.
		owed, err := store.AddDebt(ctx, model.Debt{
			Person: "Alex", Amount: 50, Type: model.DebtOwedToMe,
			Date: "2024-02-01T10:00:00Z", Status: model.DebtSettled,
		})
		require.NoError(t, err)
		assert.Equal(t, model.DebtPending, owed.Status)

		owe, err := store.AddDebt(ctx, model.Debt{
			Person: "Sam", Amount: 1200, Type: model.DebtIOwe, Date: "2024-02-02T10:00:00Z",
		})
		require.NoError(t, err)

		require.NoError(t, store.UpdateDebtStatus(ctx, owed.ID, model.DebtSettled))

		debts, err := store.GetDebts(ctx)
		require.NoError(t, err)
		for _, debt := range debts {
			switch debt.ID {
			case owed.ID:
				assert.Equal(t, model.DebtSettled, debt.Status)
			case owe.ID:
				assert.Equal(t, model.DebtPending, debt.Status, "status flip leaked onto the wrong debt")
			}
		}

		require.NoError(t, store.DeleteDebt(ctx, owe.ID))
		debts, err = store.GetDebts(ctx)
		require.NoError(t, err)
		for _, debt := range debts {
			assert.NotEqual(t, owe.ID, debt.ID)
		}
	})
}

func TestStore_AccountRoundTrip(t *testing.T) {
	forEachStore(t, func(t *testing.T, store service.Store) {
		ctx := context.Background()

		created, err := store.AddAccount(ctx, model.Account{
			Name: "Checking", Type: "bank", Balance: 1520.75,
			Currency: "USD", Icon: "bank", IncludeInTotal: true,
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		require.NoError(t, store.UpdateAccount(ctx, created.ID, model.Account{
			Name: "Checking", Type: "bank", Balance: 900.00,
			Currency: "USD", Icon: "bank", IncludeInTotal: false,
		}))

		accounts, err := store.GetAccounts(ctx)
		require.NoError(t, err)
		for _, account := range accounts {
			if account.ID == created.ID {
				assert.Equal(t, 900.00, account.Balance)
				assert.False(t, account.IncludeInTotal)
				return
			}
		}
		t.Fatal("updated account missing from listing")
	})
}

func TestStore_Settings(t *testing.T) {
	forEachStore(t, func(t *testing.T, store service.Store) {
		ctx := context.Background()

		_, err := store.GetSetting(ctx, model.PasscodeKey)
		require.ErrorIs(t, err, common.ErrNotFound)

		require.NoError(t, store.PutSetting(ctx, model.PasscodeKey, "1234"))
		value, err := store.GetSetting(ctx, model.PasscodeKey)
		require.NoError(t, err)
		assert.Equal(t, "1234", value)

		require.NoError(t, store.PutSetting(ctx, model.PasscodeKey, "4321"))
		value, err = store.GetSetting(ctx, model.PasscodeKey)
		require.NoError(t, err)
		assert.Equal(t, "4321", value)

		require.NoError(t, store.DeleteSetting(ctx, model.PasscodeKey))
		_, err = store.GetSetting(ctx, model.PasscodeKey)
		require.ErrorIs(t, err, common.ErrNotFound)

		// Deleting an absent key stays a silent no-op.
		require.NoError(t, store.DeleteSetting(ctx, model.PasscodeKey))
	})
}

func TestStore_InvalidRecordsRejected(t *testing.T) {
	forEachStore(t, func(t *testing.T, store service.Store) {
		ctx := context.Background()

		_, err := store.AddCategory(ctx, model.Category{Name: "  "})
		assert.True(t, errors.Is(err, ErrInvalidCategory))

		_, err = store.AddTransaction(ctx, model.Transaction{
			Type: "transfer", Amount: 1, CategoryID: 1, Date: "2024-02-01T10:00:00Z",
		})
		assert.True(t, errors.Is(err, ErrInvalidTransaction))

		_, err = store.AddTransaction(ctx, model.Transaction{
			Type: model.TypeExpense, Amount: -5, CategoryID: 1, Date: "2024-02-01T10:00:00Z",
		})
		assert.True(t, errors.Is(err, ErrInvalidTransaction))

		_, err = store.AddTransaction(ctx, model.Transaction{
			Type: model.TypeExpense, Amount: 5, CategoryID: 1, Date: "yesterday",
		})
		assert.True(t, errors.Is(err, ErrInvalidTransaction))

		_, err = store.AddDebt(ctx, model.Debt{
			Person: "Alex", Amount: 10, Type: "maybe", Date: "2024-02-01T10:00:00Z",
		})
		assert.True(t, errors.Is(err, ErrInvalidDebt))

		err = store.UpdateDebtStatus(ctx, 1, "paid")
		assert.True(t, errors.Is(err, ErrInvalidStatus))
	})
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown backend", func(t *testing.T) {
		_, err := Open(ctx, "cloud", "ignored")
		require.ErrorIs(t, err, common.ErrUnknownBackend)
	})

	t.Run("sqlite", func(t *testing.T) {
		store, err := Open(ctx, BackendSQLite, t.TempDir()+"/open.db")
		require.NoError(t, err)
		defer func() { _ = store.Close() }()

		categories, err := store.GetCategories(ctx)
		require.NoError(t, err)
		assert.Empty(t, categories)
	})

	t.Run("flat", func(t *testing.T) {
		store, err := Open(ctx, BackendFlat, t.TempDir()+"/open.kv")
		require.NoError(t, err)
		defer func() { _ = store.Close() }()

		categories, err := store.GetCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, categories, 4)
	})
}
