// Package events publishes domain events emitted by the ledger.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Event types, also used as AMQP routing keys.
const (
	TypeParticipantAdded   = "participant.added"
	TypeParticipantRemoved = "participant.removed"
	TypeExpenseAdded       = "expense.added"
)

// Event is a notification that the ledger state changed.
type Event struct {
	Type          string    `json:"type"`
	ParticipantID string    `json:"participantId,omitempty"`
	ExpenseID     string    `json:"expenseId,omitempty"`
	Amount        float64   `json:"amount,omitempty"`
	Dropped       int       `json:"droppedExpenses,omitempty"`
	Shrunk        int       `json:"shrunkExpenses,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// ToJSON converts the event to JSON bytes.
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// FromJSON decodes an event from JSON bytes.
func FromJSON(data []byte) (Event, error) {
	var e Event
	err := json.Unmarshal(data, &e)
	return e, err
}

// Publisher delivers events to interested parties.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Noop discards every event.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                         { return nil }

// Recorder keeps published events in memory. Useful in tests.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// Events returns a copy of the events published so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func (r *Recorder) Close() error { return nil }
