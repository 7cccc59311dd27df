package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/adnanceeyy/budgeto/internal/model"
)

// GetTransactions returns every transaction newest-first by date, each
// joined against the current category set. Transactions whose category has
// been removed still appear, with nil joined fields.
func (s *SQLiteStore) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT t.id, t.type, t.amount, t.category_id, t.note, t.date,
		       c.name, c.color
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		ORDER BY t.date DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var catName, catColor sql.NullString
		if err := rows.Scan(&txn.ID, &txn.Type, &txn.Amount, &txn.CategoryID, &txn.Note, &txn.Date, &catName, &catColor); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if catName.Valid {
			txn.CategoryName = &catName.String
		}
		if catColor.Valid {
			txn.CategoryColor = &catColor.String
		}
		transactions = append(transactions, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	slog.Debug("retrieved transactions", "count", len(transactions))
	return transactions, nil
}

// AddTransaction creates a new transaction and returns it with its assigned ID.
func (s *SQLiteStore) AddTransaction(ctx context.Context, txn model.Transaction) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateTransaction(&txn); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO transactions (type, amount, category_id, note, date)
		VALUES (?, ?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query, string(txn.Type), txn.Amount, txn.CategoryID, txn.Note, txn.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction ID: %w", err)
	}
	txn.ID = id
	txn.CategoryName = nil
	txn.CategoryColor = nil

	slog.Info("created transaction", "id", id, "type", txn.Type, "amount", txn.Amount)
	return &txn, nil
}

// UpdateTransaction replaces all mutable fields of the transaction with the
// given ID. Updating a nonexistent ID is a silent no-op.
func (s *SQLiteStore) UpdateTransaction(ctx context.Context, id int64, txn model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(&txn); err != nil {
		return err
	}

	query := `
		UPDATE transactions
		SET type = ?, amount = ?, category_id = ?, note = ?, date = ?
		WHERE id = ?`

	if _, err := s.db.ExecContext(ctx, query, string(txn.Type), txn.Amount, txn.CategoryID, txn.Note, txn.Date, id); err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	return nil
}

// DeleteTransaction removes a single transaction. Deleting a nonexistent ID
// is a silent no-op.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return nil
}
