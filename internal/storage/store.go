// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/evensplit/internal/models"
)

// ErrClosed is returned by stores that have been closed.
var ErrClosed = errors.New("store is closed")

// UpdateFunc receives the current state and returns the state that replaces
// it. Returning an error aborts the update and leaves the store unchanged.
// The function must not retain or modify its argument.
type UpdateFunc func(current models.State) (models.State, error)

// Store defines the interface for participant and expense storage.
// This abstraction allows swapping storage backends (in-memory, SQLite)
// without changing the ledger, and keeps the calculator free of any store.
type Store interface {
	// Snapshot returns a consistent copy of the current state.
	// Collections are never nil.
	Snapshot(ctx context.Context) (models.State, error)

	// Update performs a read-modify-write of the whole state.
	// Updates are serialized: fn always sees the result of the previous
	// successful update, and its result is stored atomically.
	Update(ctx context.Context, fn UpdateFunc) error

	// Close releases any resources held by the store.
	Close() error
}
