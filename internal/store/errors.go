package store

import "errors"

// Sentinel errors for store operations.
var (
	// ErrNotFound means no row exists for the given id.
	ErrNotFound = errors.New("record not found")

	// ErrStorageError wraps a sqlite-level failure (open, exec, query).
	ErrStorageError = errors.New("storage error")

	// ErrCorruptRecord means a row's JSON column failed to decode back
	// into its struct. This should only happen if a row was written by
	// something other than this package.
	ErrCorruptRecord = errors.New("corrupt record")
)
