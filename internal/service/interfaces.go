// Package service defines the contract between the screens and the
// persistence layer.
package service

import (
	"context"

	"github.com/adnanceeyy/budgeto/internal/model"
)

// Store is the persistence gateway every screen talks to. Exactly one
// implementation is selected at startup (SQLite on devices with an embedded
// database, the flat key-value store otherwise) and held for the life of
// the process.
//
// Add methods assign the record's identifier and return the stored record.
// Update and Delete methods are silent no-ops when no record with the given
// identifier exists; that is deliberate idempotent semantics, not an error.
type Store interface {
	// Category operations. DeleteCategory cascades: every transaction
	// referencing the category is removed with it.
	GetCategories(ctx context.Context) ([]model.Category, error)
	AddCategory(ctx context.Context, category model.Category) (*model.Category, error)
	UpdateCategory(ctx context.Context, id int64, category model.Category) error
	DeleteCategory(ctx context.Context, id int64) error

	// Transaction operations. GetTransactions returns records newest-first
	// by date, each joined with the current name and color of its category.
	GetTransactions(ctx context.Context) ([]model.Transaction, error)
	AddTransaction(ctx context.Context, txn model.Transaction) (*model.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, txn model.Transaction) error
	DeleteTransaction(ctx context.Context, id int64) error

	// Debt operations. Debts are created pending and listed newest-first.
	GetDebts(ctx context.Context) ([]model.Debt, error)
	AddDebt(ctx context.Context, debt model.Debt) (*model.Debt, error)
	UpdateDebt(ctx context.Context, id int64, debt model.Debt) error
	UpdateDebtStatus(ctx context.Context, id int64, status model.DebtStatus) error
	DeleteDebt(ctx context.Context, id int64) error

	// Account operations.
	GetAccounts(ctx context.Context) ([]model.Account, error)
	AddAccount(ctx context.Context, account model.Account) (*model.Account, error)
	UpdateAccount(ctx context.Context, id int64, account model.Account) error
	DeleteAccount(ctx context.Context, id int64) error

	// Settings hold small app state such as the passcode. GetSetting
	// returns common.ErrNotFound for a missing key. Settings are not
	// touched by WipeAll.
	GetSetting(ctx context.Context, key string) (string, error)
	PutSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error

	// WipeAll removes every category, transaction, debt and account.
	// The flat store re-seeds its demo dataset afterwards so that
	// backend is never left empty; SQLite stays empty. The asymmetry is
	// a product decision.
	WipeAll(ctx context.Context) error

	Close() error
}
