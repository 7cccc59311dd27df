package main

import (
	"context"
	"strconv"

	"github.com/spf13/viper"

	"github.com/adnanceeyy/budgeto/internal/config"
	"github.com/adnanceeyy/budgeto/internal/service"
	"github.com/adnanceeyy/budgeto/internal/storage"
)

// initStore opens the configured storage backend. The backend is chosen
// exactly once here; everything downstream sees only the service.Store
// contract.
func initStore(ctx context.Context) (service.Store, error) {
	backend := viper.GetString("storage.backend")
	if backend == "" {
		backend = storage.BackendSQLite
	}

	path := viper.GetString("storage.path")
	if path == "" {
		path = config.DefaultStorePath(backend)
	} else {
		path = config.ExpandPath(path)
	}

	return storage.Open(ctx, backend, path)
}

// parseID parses a record identifier argument. Identifiers are opaque
// int64s; the flat backend hands out timestamps, not small integers.
func parseID(arg string) (int64, error) {
	return strconv.ParseInt(arg, 10, 64)
}
