package storage

import (
	"context"
	"log/slog"
	"sort"

	"github.com/adnanceeyy/budgeto/internal/model"

	bolt "go.etcd.io/bbolt"
)

// GetDebts returns all debts, newest-first by creation date.
func (s *FlatStore) GetDebts(ctx context.Context) ([]model.Debt, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var debts []model.Debt
	err := s.db.View(func(tx *bolt.Tx) error {
		return getCollection(tx.Bucket(collectionsBucket), keyDebts, &debts)
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(debts, func(i, j int) bool {
		return debts[i].Date > debts[j].Date
	})

	slog.Debug("retrieved debts", "count", len(debts))
	return debts, nil
}

// AddDebt creates a new debt. Status is always pending on creation,
// whatever the caller passed in.
func (s *FlatStore) AddDebt(ctx context.Context, debt model.Debt) (*model.Debt, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateDebt(&debt); err != nil {
		return nil, err
	}
	debt.ID = newFlatID()
	debt.Status = model.DebtPending

	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(collectionsBucket)
		var debts []model.Debt
		if err := getCollection(bucket, keyDebts, &debts); err != nil {
			return err
		}
		debts = append(debts, debt)
		return putCollection(bucket, keyDebts, debts)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("created debt", "id", debt.ID, "person", debt.Person, "amount", debt.Amount)
	return &debt, nil
}

// UpdateDebt replaces all mutable fields of the debt with the given ID.
// Updating a nonexistent ID is a silent no-op.
func (s *FlatStore) UpdateDebt(ctx context.Context, id int64, debt model.Debt) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDebt(&debt); err != nil {
		return err
	}
	if err := validateDebtStatus(debt.Status); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(collectionsBucket)
		var debts []model.Debt
		if err := getCollection(bucket, keyDebts, &debts); err != nil {
			return err
		}
		for i := range debts {
			if debts[i].ID == id {
				debt.ID = id
				debts[i] = debt
				return putCollection(bucket, keyDebts, debts)
			}
		}
		return nil
	})
}

// UpdateDebtStatus updates only the status of the debt with the given ID.
// Updating a nonexistent ID is a silent no-op.
func (s *FlatStore) UpdateDebtStatus(ctx context.Context, id int64, status model.DebtStatus) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDebtStatus(status); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(collectionsBucket)
		var debts []model.Debt
		if err := getCollection(bucket, keyDebts, &debts); err != nil {
			return err
		}
		for i := range debts {
			if debts[i].ID == id {
				debts[i].Status = status
				return putCollection(bucket, keyDebts, debts)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Debug("updated debt status", "id", id, "status", status)
	return nil
}

// DeleteDebt removes a single debt. Deleting a nonexistent ID is a silent no-op.
func (s *FlatStore) DeleteDebt(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(collectionsBucket)
		var debts []model.Debt
		if err := getCollection(bucket, keyDebts, &debts); err != nil {
			return err
		}
		kept := debts[:0]
		for _, debt := range debts {
			if debt.ID != id {
				kept = append(kept, debt)
			}
		}
		return putCollection(bucket, keyDebts, kept)
	})
}
