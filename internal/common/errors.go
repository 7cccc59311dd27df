// Package common provides shared utilities and types used across the application.
package common

import "errors"

// Common application errors.
var (
	// ErrNotFound is returned by keyed reads (settings) when no record
	// exists. Blind updates and deletes do NOT return it; they are no-ops.
	ErrNotFound = errors.New("not found")

	// ErrMissingConfig indicates required configuration is absent.
	ErrMissingConfig = errors.New("missing configuration")
	// ErrInvalidConfig indicates configuration was present but unusable.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrUnknownBackend indicates an unrecognized storage backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)
