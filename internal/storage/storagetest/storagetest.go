// Package storagetest provides a conformance suite shared by every
// storage.Store implementation.
package storagetest

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/mmynk/evensplit/internal/models"
	"github.com/mmynk/evensplit/internal/storage"
)

// Run exercises a store created by newStore. Each subtest gets a fresh store.
func Run(t *testing.T, newStore func(t *testing.T) storage.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("new store is empty", func(t *testing.T) {
		store := newStore(t)
		state, err := store.Snapshot(ctx)
		if err != nil {
			t.Fatalf("Snapshot failed: %v", err)
		}
		if state.Participants == nil || state.Expenses == nil {
			t.Error("expected non-nil collections")
		}
		if len(state.Participants) != 0 || len(state.Expenses) != 0 {
			t.Errorf("expected empty state, got %+v", state)
		}
	})

	t.Run("update persists participants and expenses in order", func(t *testing.T) {
		store := newStore(t)
		want := sampleState()
		if err := store.Update(ctx, func(models.State) (models.State, error) {
			return want, nil
		}); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		got, err := store.Snapshot(ctx)
		if err != nil {
			t.Fatalf("Snapshot failed: %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("state mismatch:\n got  %+v\n want %+v", got, want)
		}
	})

	t.Run("update sees previous state and applies diff", func(t *testing.T) {
		store := newStore(t)
		if err := store.Update(ctx, func(models.State) (models.State, error) {
			return sampleState(), nil
		}); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		err := store.Update(ctx, func(current models.State) (models.State, error) {
			if len(current.Participants) != 3 {
				t.Errorf("expected 3 participants in update, got %d", len(current.Participants))
			}
			next := current.Clone()
			// Drop Bob, shrink the dinner, drop the taxi, add Dave and a new expense.
			next.Participants = []models.Participant{next.Participants[0], next.Participants[2], {ID: "p-dave", Name: "Dave"}}
			next.Expenses = []models.Expense{next.Expenses[0], {
				ID: "e-snacks", Description: "Snacks", Amount: 12, PaidBy: "p-dave",
				Participants: []string{"p-dave", "p-alice"}, CreatedAt: 1700000300,
			}}
			next.Expenses[0].Participants = []string{"p-alice", "p-carol"}
			return next, nil
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		got, err := store.Snapshot(ctx)
		if err != nil {
			t.Fatalf("Snapshot failed: %v", err)
		}
		wantParticipants := []string{"p-alice", "p-carol", "p-dave"}
		for i, id := range wantParticipants {
			if i >= len(got.Participants) || got.Participants[i].ID != id {
				t.Fatalf("participants = %+v, want ids %v", got.Participants, wantParticipants)
			}
		}
		if len(got.Expenses) != 2 || got.Expenses[0].ID != "e-dinner" || got.Expenses[1].ID != "e-snacks" {
			t.Fatalf("expenses = %+v", got.Expenses)
		}
		if !reflect.DeepEqual(got.Expenses[0].Participants, []string{"p-alice", "p-carol"}) {
			t.Errorf("dinner beneficiaries = %v", got.Expenses[0].Participants)
		}
		if !reflect.DeepEqual(got.Expenses[1].Participants, []string{"p-dave", "p-alice"}) {
			t.Errorf("snacks beneficiaries = %v", got.Expenses[1].Participants)
		}
	})

	t.Run("failed update leaves state unchanged", func(t *testing.T) {
		store := newStore(t)
		boom := errors.New("boom")
		err := store.Update(ctx, func(current models.State) (models.State, error) {
			current.Participants = append(current.Participants, models.Participant{ID: "x", Name: "X"})
			return current, boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("Update error = %v, want %v", err, boom)
		}

		state, err := store.Snapshot(ctx)
		if err != nil {
			t.Fatalf("Snapshot failed: %v", err)
		}
		if len(state.Participants) != 0 {
			t.Errorf("expected no participants, got %+v", state.Participants)
		}
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		store := newStore(t)
		if err := store.Update(ctx, func(models.State) (models.State, error) {
			return sampleState(), nil
		}); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		first, _ := store.Snapshot(ctx)
		first.Expenses[0].Participants[0] = "mutated"
		second, _ := store.Snapshot(ctx)
		if second.Expenses[0].Participants[0] == "mutated" {
			t.Error("snapshot shares memory with the store")
		}
	})

	t.Run("concurrent updates are serialized", func(t *testing.T) {
		store := newStore(t)
		const writers = 10

		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				err := store.Update(ctx, func(current models.State) (models.State, error) {
					current.Participants = append(current.Participants, models.Participant{
						ID:   "p-" + string(rune('a'+i)),
						Name: string(rune('A' + i)),
					})
					return current, nil
				})
				if err != nil {
					t.Errorf("Update failed: %v", err)
				}
			}(i)
		}
		wg.Wait()

		state, err := store.Snapshot(ctx)
		if err != nil {
			t.Fatalf("Snapshot failed: %v", err)
		}
		if len(state.Participants) != writers {
			t.Errorf("expected %d participants, got %d", writers, len(state.Participants))
		}
	})
}

func sampleState() models.State {
	return models.State{
		Participants: []models.Participant{
			{ID: "p-alice", Name: "Alice"},
			{ID: "p-bob", Name: "Bob"},
			{ID: "p-carol", Name: "Carol"},
		},
		Expenses: []models.Expense{
			{
				ID: "e-dinner", Description: "Dinner", Amount: 90, PaidBy: "p-alice",
				Participants: []string{"p-alice", "p-bob", "p-carol"}, CreatedAt: 1700000000,
			},
			{
				ID: "e-taxi", Description: "Taxi", Amount: 25.5, PaidBy: "p-bob",
				Participants: []string{"p-carol", "p-bob"}, CreatedAt: 1700000100,
			},
		},
	}
}
