package storage

import (
	"context"
	"log/slog"
	"sort"

	"github.com/adnanceeyy/budgeto/internal/model"

	bolt "go.etcd.io/bbolt"
)

// GetTransactions returns every transaction newest-first by date. The
// category join the SQL backend performs natively is computed here by a
// linear scan against the current category collection; unmatched
// references get nil joined fields, standing in for SQL NULL.
func (s *FlatStore) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var transactions []model.Transaction
	var categories []model.Category
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(collectionsBucket)
		if err := getCollection(bucket, keyTransactions, &transactions); err != nil {
			return err
		}
		return getCollection(bucket, keyCategories, &categories)
	})
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]model.Category, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat
	}

	for i := range transactions {
		if cat, ok := byID[transactions[i].CategoryID]; ok {
			name, color := cat.Name, cat.Color
			transactions[i].CategoryName = &name
			transactions[i].CategoryColor = &color
		}
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date > transactions[j].Date
	})

	slog.Debug("retrieved transactions", "count", len(transactions))
	return transactions, nil
}

// AddTransaction creates a new transaction and returns it with its assigned ID.
func (s *FlatStore) AddTransaction(ctx context.Context, txn model.Transaction) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateTransaction(&txn); err != nil {
		return nil, err
	}
	txn.ID = newFlatID()
	// Joined fields are computed at read time, never stored.
	txn.CategoryName = nil
	txn.CategoryColor = nil

	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(collectionsBucket)
		var transactions []model.Transaction
		if err := getCollection(bucket, keyTransactions, &transactions); err != nil {
			return err
		}
		transactions = append(transactions, txn)
		return putCollection(bucket, keyTransactions, transactions)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("created transaction", "id", txn.ID, "type", txn.Type, "amount", txn.Amount)
	return &txn, nil
}

// UpdateTransaction replaces all mutable fields of the transaction with the
// given ID. Updating a nonexistent ID is a silent no-op.
func (s *FlatStore) UpdateTransaction(ctx context.Context, id int64, txn model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(&txn); err != nil {
		return err
	}
	txn.CategoryName = nil
	txn.CategoryColor = nil

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(collectionsBucket)
		var transactions []model.Transaction
		if err := getCollection(bucket, keyTransactions, &transactions); err != nil {
			return err
		}
		for i := range transactions {
			if transactions[i].ID == id {
				txn.ID = id
				transactions[i] = txn
				return putCollection(bucket, keyTransactions, transactions)
			}
		}
		return nil
	})
}

// DeleteTransaction removes a single transaction. Deleting a nonexistent ID
// is a silent no-op.
func (s *FlatStore) DeleteTransaction(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(collectionsBucket)
		var transactions []model.Transaction
		if err := getCollection(bucket, keyTransactions, &transactions); err != nil {
			return err
		}
		kept := transactions[:0]
		for _, txn := range transactions {
			if txn.ID != id {
				kept = append(kept, txn)
			}
		}
		return putCollection(bucket, keyTransactions, kept)
	})
}
