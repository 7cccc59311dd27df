package storage

import (
	"context"
	"log/slog"

	"github.com/adnanceeyy/budgeto/internal/model"

	bolt "go.etcd.io/bbolt"
)

// GetCategories returns all categories in stored order.
func (s *FlatStore) GetCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var categories []model.Category
	err := s.db.View(func(tx *bolt.Tx) error {
		return getCollection(tx.Bucket(collectionsBucket), keyCategories, &categories)
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// AddCategory creates a new category and returns it with its assigned ID.
func (s *FlatStore) AddCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateCategory(&category); err != nil {
		return nil, err
	}
	category.ID = newFlatID()

	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(collectionsBucket)
		var categories []model.Category
		if err := getCollection(bucket, keyCategories, &categories); err != nil {
			return err
		}
		categories = append(categories, category)
		return putCollection(bucket, keyCategories, categories)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("created category", "name", category.Name, "id", category.ID)
	return &category, nil
}

// UpdateCategory replaces all mutable fields of the category with the given
// ID. Updating a nonexistent ID is a silent no-op.
func (s *FlatStore) UpdateCategory(ctx context.Context, id int64, category model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCategory(&category); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(collectionsBucket)
		var categories []model.Category
		if err := getCollection(bucket, keyCategories, &categories); err != nil {
			return err
		}
		for i := range categories {
			if categories[i].ID == id {
				category.ID = id
				categories[i] = category
				return putCollection(bucket, keyCategories, categories)
			}
		}
		return nil
	})
}

// DeleteCategory removes the category and every transaction referencing it.
// Both collection rewrites happen in a single store transaction, category
// first, then transactions.
func (s *FlatStore) DeleteCategory(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(collectionsBucket)

		var categories []model.Category
		if err := getCollection(bucket, keyCategories, &categories); err != nil {
			return err
		}
		kept := categories[:0]
		for _, cat := range categories {
			if cat.ID != id {
				kept = append(kept, cat)
			}
		}
		if err := putCollection(bucket, keyCategories, kept); err != nil {
			return err
		}

		var transactions []model.Transaction
		if err := getCollection(bucket, keyTransactions, &transactions); err != nil {
			return err
		}
		keptTxns := transactions[:0]
		for _, txn := range transactions {
			if txn.CategoryID != id {
				keptTxns = append(keptTxns, txn)
			}
		}
		return putCollection(bucket, keyTransactions, keptTxns)
	})
	if err != nil {
		return err
	}

	slog.Debug("deleted category", "id", id)
	return nil
}
