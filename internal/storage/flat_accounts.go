package storage

import (
	"context"
	"log/slog"

	"github.com/adnanceeyy/budgeto/internal/model"

	bolt "go.etcd.io/bbolt"
)

// GetAccounts returns all accounts in stored order.
func (s *FlatStore) GetAccounts(ctx context.Context) ([]model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var accounts []model.Account
	err := s.db.View(func(tx *bolt.Tx) error {
		return getCollection(tx.Bucket(collectionsBucket), keyAccounts, &accounts)
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("retrieved accounts", "count", len(accounts))
	return accounts, nil
}

// AddAccount creates a new account and returns it with its assigned ID.
func (s *FlatStore) AddAccount(ctx context.Context, account model.Account) (*model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateAccount(&account); err != nil {
		return nil, err
	}
	account.ID = newFlatID()

	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(collectionsBucket)
		var accounts []model.Account
		if err := getCollection(bucket, keyAccounts, &accounts); err != nil {
			return err
		}
		accounts = append(accounts, account)
		return putCollection(bucket, keyAccounts, accounts)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("created account", "name", account.Name, "id", account.ID)
	return &account, nil
}

// UpdateAccount replaces all mutable fields of the account with the given
// ID. Updating a nonexistent ID is a silent no-op.
func (s *FlatStore) UpdateAccount(ctx context.Context, id int64, account model.Account) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateAccount(&account); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(collectionsBucket)
		var accounts []model.Account
		if err := getCollection(bucket, keyAccounts, &accounts); err != nil {
			return err
		}
		for i := range accounts {
			if accounts[i].ID == id {
				account.ID = id
				accounts[i] = account
				return putCollection(bucket, keyAccounts, accounts)
			}
		}
		return nil
	})
}

// DeleteAccount removes a single account. Deleting a nonexistent ID is a
// silent no-op.
func (s *FlatStore) DeleteAccount(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(collectionsBucket)
		var accounts []model.Account
		if err := getCollection(bucket, keyAccounts, &accounts); err != nil {
			return err
		}
		kept := accounts[:0]
		for _, account := range accounts {
			if account.ID != id {
				kept = append(kept, account)
			}
		}
		return putCollection(bucket, keyAccounts, kept)
	})
}
