package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no session blob has been written yet
// (or it has been removed).
var ErrNotFound = errors.New("session data not found in storage")

// SessionStorage defines the durable key/value boundary the session store
// persists through: one opaque blob under one key. Backends must treat the
// data as opaque bytes; interpretation belongs to the session store.
type SessionStorage interface {
	// Get returns the stored blob, or ErrNotFound when nothing is stored.
	Get(ctx context.Context) ([]byte, error)

	// Set overwrites the stored blob.
	Set(ctx context.Context, data []byte) error

	// Remove erases the stored blob. Removing an absent blob is not an error.
	Remove(ctx context.Context) error
}
