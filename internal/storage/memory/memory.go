// Package memory provides an in-memory implementation of the storage.Store
// interface, optionally persisted to a JSON snapshot file.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mmynk/evensplit/internal/models"
	"github.com/mmynk/evensplit/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store keeps the state in memory. When opened with a path, the state is
// loaded from and written back to a JSON snapshot after every update.
type Store struct {
	mu     sync.Mutex
	state  models.State
	path   string
	closed bool
}

// New creates an empty store without persistence.
func New() *Store {
	return &Store{state: models.NewState()}
}

// Open creates a store backed by the snapshot file at path.
// A missing file starts an empty store; a corrupt one is an error.
func Open(path string) (*Store, error) {
	s := &Store{state: models.NewState(), path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if len(data) == 0 {
		return s, nil
	}

	var state models.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}
	s.state = state.Clone()
	return s, nil
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot(ctx context.Context) (models.State, error) {
	if err := ctx.Err(); err != nil {
		return models.State{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.State{}, storage.ErrClosed
	}
	return s.state.Clone(), nil
}

// Update applies fn under the store lock and persists the result.
func (s *Store) Update(ctx context.Context, fn storage.UpdateFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrClosed
	}

	next, err := fn(s.state.Clone())
	if err != nil {
		return err
	}
	next = next.Clone()

	if s.path != "" {
		if err := writeSnapshot(s.path, next); err != nil {
			return err
		}
	}
	s.state = next
	return nil
}

// Close marks the store as closed. The snapshot file is already up to date.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// writeSnapshot replaces the file at path atomically.
func writeSnapshot(path string, state models.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}
