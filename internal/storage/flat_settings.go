package storage

import (
	"context"
	"fmt"

	"github.com/adnanceeyy/budgeto/internal/common"

	bolt "go.etcd.io/bbolt"
)

// Settings are stored as a single JSON object under their own collection
// key. They are deliberately outside WipeAll's reach.

// GetSetting returns the value stored under key, or common.ErrNotFound.
func (s *FlatStore) GetSetting(ctx context.Context, key string) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}
	if err := validateString(key, "key"); err != nil {
		return "", err
	}

	var settings map[string]string
	err := s.db.View(func(tx *bolt.Tx) error {
		return getCollection(tx.Bucket(collectionsBucket), keySettings, &settings)
	})
	if err != nil {
		return "", err
	}

	value, ok := settings[key]
	if !ok {
		return "", fmt.Errorf("%w: setting %q", common.ErrNotFound, key)
	}
	return value, nil
}

// PutSetting stores value under key, replacing any existing value.
func (s *FlatStore) PutSetting(ctx context.Context, key, value string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(collectionsBucket)
		settings := make(map[string]string)
		if err := getCollection(bucket, keySettings, &settings); err != nil {
			return err
		}
		settings[key] = value
		return putCollection(bucket, keySettings, settings)
	})
}

// DeleteSetting removes the value stored under key. Deleting a missing key
// is a silent no-op.
func (s *FlatStore) DeleteSetting(ctx context.Context, key string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(collectionsBucket)
		settings := make(map[string]string)
		if err := getCollection(bucket, keySettings, &settings); err != nil {
			return err
		}
		delete(settings, key)
		return putCollection(bucket, keySettings, settings)
	})
}
