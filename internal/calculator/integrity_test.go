package calculator

import (
	"math"
	"reflect"
	"testing"

	"github.com/mmynk/evensplit/internal/models"
)

func expenseIDs(expenses []models.Expense) []string {
	ids := make([]string, len(expenses))
	for i, e := range expenses {
		ids[i] = e.ID
	}
	return ids
}

func TestRemoveParticipant(t *testing.T) {
	participants := people("A", "B", "C")
	expenses := []models.Expense{
		{ID: "paid-by-b", Amount: 30, PaidBy: "B", Participants: []string{"A", "B"}},
		{ID: "b-shares", Amount: 90, PaidBy: "A", Participants: []string{"A", "B", "C"}},
		{ID: "b-only", Amount: 10, PaidBy: "C", Participants: []string{"B"}},
		{ID: "untouched", Amount: 5, PaidBy: "C", Participants: []string{"A", "C"}},
	}

	gotParticipants, gotExpenses := RemoveParticipant(participants, expenses, "B")

	t.Run("participant is removed", func(t *testing.T) {
		if len(gotParticipants) != 2 || gotParticipants[0].ID != "A" || gotParticipants[1].ID != "C" {
			t.Errorf("participants = %v, want [A C]", gotParticipants)
		}
	})

	t.Run("payer and sole-beneficiary expenses are dropped in order", func(t *testing.T) {
		want := []string{"b-shares", "untouched"}
		if got := expenseIDs(gotExpenses); !reflect.DeepEqual(got, want) {
			t.Errorf("expenses = %v, want %v", got, want)
		}
	})

	t.Run("shared expense shrinks", func(t *testing.T) {
		e := gotExpenses[0]
		if !reflect.DeepEqual(e.Participants, []string{"A", "C"}) {
			t.Errorf("beneficiaries = %v, want [A C]", e.Participants)
		}
		if e.Amount != 90 || e.PaidBy != "A" {
			t.Errorf("other fields changed: %+v", e)
		}
	})

	t.Run("unaffected expense shares its beneficiary slice", func(t *testing.T) {
		if &gotExpenses[1].Participants[0] != &expenses[3].Participants[0] {
			t.Error("expected unchanged expense to keep the same beneficiary slice")
		}
	})

	t.Run("inputs are not modified", func(t *testing.T) {
		if len(participants) != 3 || len(expenses) != 4 {
			t.Fatal("input lengths changed")
		}
		if !reflect.DeepEqual(expenses[1].Participants, []string{"A", "B", "C"}) {
			t.Errorf("input beneficiaries modified: %v", expenses[1].Participants)
		}
	})

	t.Run("balances after removal", func(t *testing.T) {
		sheet, err := ComputeBalances(gotParticipants, gotExpenses[:1])
		if err != nil {
			t.Fatalf("ComputeBalances() error = %v", err)
		}
		if math.Abs(sheet["A"]-45) > tolerance || math.Abs(sheet["C"]+45) > tolerance {
			t.Errorf("balances = %v, want A=45 C=-45", sheet)
		}
		if _, ok := sheet["B"]; ok {
			t.Error("removed participant still has a balance entry")
		}
	})
}

func TestRemoveParticipantScenario(t *testing.T) {
	participants := people("A", "B", "C")
	expenses := []models.Expense{
		{ID: "e1", Amount: 90, PaidBy: "A", Participants: []string{"A", "B", "C"}},
	}

	ps, es := RemoveParticipant(participants, expenses, "B")
	if len(es) != 1 || !reflect.DeepEqual(es[0].Participants, []string{"A", "C"}) {
		t.Fatalf("expenses = %+v, want one expense split between A and C", es)
	}

	sheet, err := ComputeBalances(ps, es)
	if err != nil {
		t.Fatalf("ComputeBalances() error = %v", err)
	}
	want := models.BalanceSheet{"A": 45, "C": -45}
	if len(sheet) != len(want) {
		t.Fatalf("sheet = %v, want %v", sheet, want)
	}
	for id, v := range want {
		if math.Abs(sheet[id]-v) > tolerance {
			t.Errorf("balance[%s] = %v, want %v", id, sheet[id], v)
		}
	}
}

func TestRemoveParticipantDropsEmptyExpenses(t *testing.T) {
	tests := []struct {
		name     string
		expenses []models.Expense
		target   string
		want     []string
	}{
		{
			name:     "no beneficiaries, non-payer removed",
			expenses: []models.Expense{{ID: "e0", Amount: 10, PaidBy: "A", Participants: []string{}}},
			target:   "B",
			want:     []string{},
		},
		{
			name:     "nil beneficiaries, non-payer removed",
			expenses: []models.Expense{{ID: "e0", Amount: 10, PaidBy: "A"}},
			target:   "B",
			want:     []string{},
		},
		{
			name: "only the empty expense is dropped",
			expenses: []models.Expense{
				{ID: "e0", Amount: 10, PaidBy: "A", Participants: []string{}},
				{ID: "e1", Amount: 20, PaidBy: "A", Participants: []string{"A", "B"}},
			},
			target: "B",
			want:   []string{"e1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := RemoveParticipant(people("A", "B"), tt.expenses, tt.target)
			if ids := expenseIDs(got); !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("expenses = %v, want %v", ids, tt.want)
			}
			for _, e := range got {
				if len(e.Participants) == 0 {
					t.Errorf("expense %s kept with no beneficiaries", e.ID)
				}
			}
		})
	}
}

func TestRemoveParticipantIdempotent(t *testing.T) {
	participants := people("A", "B")
	expenses := []models.Expense{
		{ID: "e1", Amount: 10, PaidBy: "A", Participants: []string{"A", "B"}},
		{ID: "e2", Amount: 20, PaidBy: "B", Participants: []string{"A"}},
	}

	ps1, es1 := RemoveParticipant(participants, expenses, "B")
	ps2, es2 := RemoveParticipant(ps1, es1, "B")

	if !reflect.DeepEqual(ps1, ps2) {
		t.Errorf("participants changed on second removal: %v vs %v", ps1, ps2)
	}
	if !reflect.DeepEqual(es1, es2) {
		t.Errorf("expenses changed on second removal: %v vs %v", es1, es2)
	}
}

func TestRemoveParticipantUnknownID(t *testing.T) {
	participants := people("A")
	expenses := []models.Expense{
		{ID: "e1", Amount: 10, PaidBy: "A", Participants: []string{"A"}},
	}

	ps, es := RemoveParticipant(participants, expenses, "nobody")
	if !reflect.DeepEqual(ps, participants) || !reflect.DeepEqual(es, expenses) {
		t.Errorf("unknown id changed state: %v %v", ps, es)
	}
}

func TestRemoveParticipantNilInput(t *testing.T) {
	ps, es := RemoveParticipant(nil, nil, "A")
	if ps == nil || es == nil {
		t.Error("expected empty non-nil collections")
	}
	if _, err := ComputeBalances(ps, es); err != nil {
		t.Errorf("ComputeBalances() on removal output error = %v", err)
	}
}
