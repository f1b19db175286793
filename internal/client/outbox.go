package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmynk/evensplit/internal/ledger"
)

// Operation kinds recorded while offline.
const (
	OpAddParticipant    = "add_participant"
	OpRemoveParticipant = "remove_participant"
	OpAddExpense        = "add_expense"
)

// Op is a write that was applied locally and still has to reach the server.
type Op struct {
	Kind          string             `json:"kind"`
	Name          string             `json:"name,omitempty"`
	ParticipantID string             `json:"participantId,omitempty"`
	Expense       *ledger.NewExpense `json:"expense,omitempty"`

	// LocalID is the id the local ledger assigned to the created record.
	LocalID string `json:"localId,omitempty"`
}

// Queue is the pending replay state.
type Queue struct {
	Ops []Op `json:"ops"`

	// IDs maps local ids to the ids the server assigned during a replay that
	// has not finished yet.
	IDs map[string]string `json:"ids,omitempty"`
}

// Outbox persists the queue between runs.
type Outbox interface {
	Load() (Queue, error)
	Save(Queue) error
}

// FileOutbox stores the queue as a JSON file.
type FileOutbox struct {
	Path string
}

// Load reads the queue. A missing file is an empty queue.
func (o FileOutbox) Load() (Queue, error) {
	data, err := os.ReadFile(o.Path)
	if errors.Is(err, os.ErrNotExist) {
		return Queue{}, nil
	}
	if err != nil {
		return Queue{}, fmt.Errorf("failed to read outbox: %w", err)
	}
	if len(data) == 0 {
		return Queue{}, nil
	}

	var q Queue
	if err := json.Unmarshal(data, &q); err != nil {
		return Queue{}, fmt.Errorf("failed to decode outbox %s: %w", o.Path, err)
	}
	return q, nil
}

// Save replaces the file atomically. An empty queue removes it.
func (o FileOutbox) Save(q Queue) error {
	if len(q.Ops) == 0 {
		if err := os.Remove(o.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to clear outbox: %w", err)
		}
		return nil
	}

	data, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode outbox: %w", err)
	}

	dir := filepath.Dir(o.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create outbox directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(o.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create outbox file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write outbox: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write outbox: %w", err)
	}
	if err := os.Rename(tmp.Name(), o.Path); err != nil {
		return fmt.Errorf("failed to replace outbox: %w", err)
	}
	return nil
}
