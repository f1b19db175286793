package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/evensplit/internal/models"
	"github.com/mmynk/evensplit/internal/storage"
	"github.com/mmynk/evensplit/internal/storage/storagetest"
)

func TestMemoryStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		return New()
	})
}

func TestFileBackedStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		store, err := Open(filepath.Join(t.TempDir(), "snapshot.json"))
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		return store
	})
}

func TestSnapshotSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "snapshot.json")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	err = store.Update(ctx, func(current models.State) (models.State, error) {
		current.Participants = append(current.Participants, models.Participant{ID: "p1", Name: "Alice"})
		current.Expenses = append(current.Expenses, models.Expense{
			ID: "e1", Description: "Lunch", Amount: 12, PaidBy: "p1", Participants: []string{"p1"},
		})
		return current, nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	store.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	state, err := reopened.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(state.Participants) != 1 || state.Participants[0].Name != "Alice" {
		t.Errorf("participants = %+v", state.Participants)
	}
	if len(state.Expenses) != 1 || state.Expenses[0].Amount != 12 {
		t.Errorf("expenses = %+v", state.Expenses)
	}
}

func TestOpenCorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Error("expected error for corrupt snapshot")
	}
}

func TestClosedStore(t *testing.T) {
	store := New()
	store.Close()

	if _, err := store.Snapshot(context.Background()); err != storage.ErrClosed {
		t.Errorf("Snapshot error = %v, want ErrClosed", err)
	}
	err := store.Update(context.Background(), func(s models.State) (models.State, error) { return s, nil })
	if err != storage.ErrClosed {
		t.Errorf("Update error = %v, want ErrClosed", err)
	}
}
