package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adnanceeyy/budgeto/internal/model"
)

// GetDebts returns all debts, newest-first by creation date.
func (s *SQLiteStore) GetDebts(ctx context.Context) ([]model.Debt, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, person, amount, type, note, date, status
		FROM debts
		ORDER BY date DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query debts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var debts []model.Debt
	for rows.Next() {
		var debt model.Debt
		if err := rows.Scan(&debt.ID, &debt.Person, &debt.Amount, &debt.Type, &debt.Note, &debt.Date, &debt.Status); err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, debt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating debts: %w", err)
	}

	slog.Debug("retrieved debts", "count", len(debts))
	return debts, nil
}

// AddDebt creates a new debt. Status is always pending on creation,
// whatever the caller passed in.
func (s *SQLiteStore) AddDebt(ctx context.Context, debt model.Debt) (*model.Debt, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateDebt(&debt); err != nil {
		return nil, err
	}
	debt.Status = model.DebtPending

	query := `
		INSERT INTO debts (person, amount, type, note, date, status)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query, debt.Person, debt.Amount, string(debt.Type), debt.Note, debt.Date, string(debt.Status))
	if err != nil {
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get debt ID: %w", err)
	}
	debt.ID = id

	slog.Info("created debt", "id", id, "person", debt.Person, "amount", debt.Amount)
	return &debt, nil
}

// UpdateDebt replaces all mutable fields of the debt with the given ID.
// Updating a nonexistent ID is a silent no-op.
func (s *SQLiteStore) UpdateDebt(ctx context.Context, id int64, debt model.Debt) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDebt(&debt); err != nil {
		return err
	}
	if err := validateDebtStatus(debt.Status); err != nil {
		return err
	}

	query := `
		UPDATE debts
		SET person = ?, amount = ?, type = ?, note = ?, date = ?, status = ?
		WHERE id = ?`

	if _, err := s.db.ExecContext(ctx, query, debt.Person, debt.Amount, string(debt.Type), debt.Note, debt.Date, string(debt.Status), id); err != nil {
		return fmt.Errorf("failed to update debt: %w", err)
	}

	return nil
}

// UpdateDebtStatus updates only the status of the debt with the given ID.
// Updating a nonexistent ID is a silent no-op.
func (s *SQLiteStore) UpdateDebtStatus(ctx context.Context, id int64, status model.DebtStatus) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDebtStatus(status); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `UPDATE debts SET status = ? WHERE id = ?`, string(status), id); err != nil {
		return fmt.Errorf("failed to update debt status: %w", err)
	}

	slog.Debug("updated debt status", "id", id, "status", status)
	return nil
}

// DeleteDebt removes a single debt. Deleting a nonexistent ID is a silent no-op.
func (s *SQLiteStore) DeleteDebt(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM debts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete debt: %w", err)
	}

	return nil
}
