package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adnanceeyy/budgeto/internal/common"
	"github.com/adnanceeyy/budgeto/internal/service"
)

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendFlat   = "flat"
)

// Open selects and opens the storage backend exactly once. Devices with
// an embedded database use SQLite, everything else falls back to the flat
// key-value store. After Open returns, no code branches on the backend
// again; callers hold the returned Store for the life of the process.
//
// SQLite starts with empty tables; the flat store seeds a fixed demo
// dataset on first run so the app is never empty.
func Open(ctx context.Context, backend, path string) (service.Store, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	switch backend {
	case BackendSQLite:
		store, err := NewSQLiteStore(path)
		if err != nil {
			return nil, err
		}
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		slog.Debug("opened storage", "backend", BackendSQLite, "path", path)
		return store, nil
	case BackendFlat:
		store, err := NewFlatStore(path)
		if err != nil {
			return nil, err
		}
		slog.Debug("opened storage", "backend", BackendFlat, "path", path)
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownBackend, backend)
	}
}
