package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adnanceeyy/budgeto/internal/model"
)

// GetCategories returns all categories in backend-native order.
func (s *SQLiteStore) GetCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, icon, color, budget
		FROM categories`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Icon, &cat.Color, &cat.Budget); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// AddCategory creates a new category and returns it with its assigned ID.
func (s *SQLiteStore) AddCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateCategory(&category); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO categories (name, icon, color, budget)
		VALUES (?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query, category.Name, category.Icon, category.Color, category.Budget)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get category ID: %w", err)
	}
	category.ID = id

	slog.Info("created category", "name", category.Name, "id", id)
	return &category, nil
}

// UpdateCategory replaces all mutable fields of the category with the given
// ID. Updating a nonexistent ID is a silent no-op.
func (s *SQLiteStore) UpdateCategory(ctx context.Context, id int64, category model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCategory(&category); err != nil {
		return err
	}

	query := `
		UPDATE categories
		SET name = ?, icon = ?, color = ?, budget = ?
		WHERE id = ?`

	if _, err := s.db.ExecContext(ctx, query, category.Name, category.Icon, category.Color, category.Budget, id); err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	return nil
}

// DeleteCategory removes the category and every transaction referencing it.
// Both deletes run in one database transaction so an interrupted cascade
// cannot leave orphaned transactions behind. Deleting a nonexistent ID is a
// silent no-op.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Parent row first, then children, matching the cascade order the
	// screens expect.
	if _, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE category_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete category transactions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit category delete: %w", err)
	}

	slog.Debug("deleted category", "id", id)
	return nil
}
