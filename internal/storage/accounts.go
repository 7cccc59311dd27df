package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adnanceeyy/budgeto/internal/model"
)

// GetAccounts returns all accounts in backend-native order.
func (s *SQLiteStore) GetAccounts(ctx context.Context) ([]model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, type, balance, currency, icon, include_in_total
		FROM accounts`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var accounts []model.Account
	for rows.Next() {
		var account model.Account
		if err := rows.Scan(&account.ID, &account.Name, &account.Type, &account.Balance, &account.Currency, &account.Icon, &account.IncludeInTotal); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}

	slog.Debug("retrieved accounts", "count", len(accounts))
	return accounts, nil
}

// AddAccount creates a new account and returns it with its assigned ID.
func (s *SQLiteStore) AddAccount(ctx context.Context, account model.Account) (*model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateAccount(&account); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO accounts (name, type, balance, currency, icon, include_in_total)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query, account.Name, account.Type, account.Balance, account.Currency, account.Icon, account.IncludeInTotal)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get account ID: %w", err)
	}
	account.ID = id

	slog.Info("created account", "name", account.Name, "id", id)
	return &account, nil
}

// UpdateAccount replaces all mutable fields of the account with the given
// ID. Updating a nonexistent ID is a silent no-op.
func (s *SQLiteStore) UpdateAccount(ctx context.Context, id int64, account model.Account) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateAccount(&account); err != nil {
		return err
	}

	query := `
		UPDATE accounts
		SET name = ?, type = ?, balance = ?, currency = ?, icon = ?, include_in_total = ?
		WHERE id = ?`

	if _, err := s.db.ExecContext(ctx, query, account.Name, account.Type, account.Balance, account.Currency, account.Icon, account.IncludeInTotal, id); err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	return nil
}

// DeleteAccount removes a single account. Deleting a nonexistent ID is a
// silent no-op. Accounts have no cascade relationships.
func (s *SQLiteStore) DeleteAccount(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}
