package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Collection keys inside the flat store. Each key holds one JSON-encoded
// array of records for its entity kind; settings hold a JSON object.
const (
	keyCategories   = "categories"
	keyTransactions = "transactions"
	keyDebts        = "debts"
	keyAccounts     = "accounts"
	keySettings     = "settings"
)

var collectionsBucket = []byte("collections")

// FlatStore implements service.Store on a string-keyed blob store, used
// when no embedded SQL engine is available. Every operation decodes the
// whole target collection, mutates it in memory, and rewrites it; bbolt's
// single-writer transactions serialize those cycles, so overlapping
// writers cannot lose updates.
//
// Identifiers are high-resolution timestamps rather than small sequential
// integers; callers must treat them as opaque.
type FlatStore struct {
	db *bolt.DB
}

// NewFlatStore opens (creating if necessary) the flat store at path. On
// first run, signaled by the categories collection key being entirely
// absent, it seeds a fixed demo dataset so the app never starts empty.
func NewFlatStore(path string) (*FlatStore, error) {
	if err := validateString(path, "path"); err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open flat store: %w", err)
	}

	store := &FlatStore{db: db}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *FlatStore) init() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(collectionsBucket)
		if err != nil {
			return fmt.Errorf("failed to create collections bucket: %w", err)
		}

		if bucket.Get([]byte(keyCategories)) != nil {
			return nil
		}

		slog.Info("first run detected, seeding demo data")
		return seedFlat(bucket)
	})
}

// seedFlat writes the fixed demo dataset into the bucket.
func seedFlat(bucket *bolt.Bucket) error {
	now := time.Now()
	if err := putCollection(bucket, keyCategories, seedCategories()); err != nil {
		return err
	}
	if err := putCollection(bucket, keyTransactions, seedTransactions(now)); err != nil {
		return err
	}
	return putCollection(bucket, keyDebts, seedDebts(now))
}

// Close closes the underlying store.
func (s *FlatStore) Close() error {
	return s.db.Close()
}

// WipeAll removes every category, transaction, debt and account, then
// re-seeds the demo dataset. Unlike SQLite the flat store never stays
// empty after a wipe. Settings survive so a wipe cannot lock the user
// out of the app.
func (s *FlatStore) WipeAll(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(collectionsBucket)
		for _, key := range []string{keyCategories, keyTransactions, keyDebts, keyAccounts} {
			if err := bucket.Delete([]byte(key)); err != nil {
				return fmt.Errorf("failed to remove %s: %w", key, err)
			}
		}
		return seedFlat(bucket)
	})
	if err != nil {
		return err
	}

	slog.Info("wiped all data and re-seeded demo dataset")
	return nil
}

// newFlatID assigns identifiers from the clock. Collisions under rapid
// programmatic insertion are accepted as negligible for a single-user,
// single-device app.
func newFlatID() int64 {
	return time.Now().UnixNano()
}

// getCollection decodes the JSON array stored under key into out,
// defaulting to an absent value (empty collection) when the key is unset.
func getCollection(bucket *bolt.Bucket, key string, out any) error {
	raw := bucket.Get([]byte(key))
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s collection: %w", key, err)
	}
	return nil
}

// putCollection encodes v and overwrites the whole collection value.
func putCollection(bucket *bolt.Bucket, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s collection: %w", key, err)
	}
	if err := bucket.Put([]byte(key), raw); err != nil {
		return fmt.Errorf("failed to write %s collection: %w", key, err)
	}
	return nil
}
