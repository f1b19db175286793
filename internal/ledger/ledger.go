// Package ledger is the write/read boundary in front of the calculator.
//
// It validates input, assigns ids and timestamps, and keeps the stored
// participants and expenses consistent by running the calculator's removal
// cascade inside a single store update.
package ledger

import (
	"context"

	"github.com/mmynk/evensplit/internal/models"
)

// Ledger is the contract shared by the local service and remote clients,
// so the same callers work against either.
type Ledger interface {
	// AddParticipant creates a participant with a fresh id.
	AddParticipant(ctx context.Context, name string) (models.Participant, error)

	// RemoveParticipant deletes a participant and cascades to its expenses.
	// Removing an unknown id succeeds and changes nothing.
	RemoveParticipant(ctx context.Context, id string) error

	// AddExpense records an expense split evenly among its beneficiaries.
	AddExpense(ctx context.Context, in NewExpense) (models.Expense, error)

	Participants(ctx context.Context) ([]models.Participant, error)
	Expenses(ctx context.Context) ([]models.Expense, error)

	// Balances computes the balance sheet from the current state.
	Balances(ctx context.Context) (models.BalanceSheet, error)

	// Summary returns balances together with settle-up suggestions and totals.
	Summary(ctx context.Context) (Summary, error)
}

// NewExpense is the input for AddExpense.
type NewExpense struct {
	Description  string   `json:"description"`
	Amount       float64  `json:"amount"`
	PaidBy       string   `json:"paidBy"`
	Participants []string `json:"participants"`
}

// Summary is the balance view of the ledger.
type Summary struct {
	Balances    models.BalanceSheet `json:"balances"`
	Settlements []models.Settlement `json:"settlements"`
	TotalSpent  float64             `json:"totalSpent"`
	PaidBy      map[string]float64  `json:"paidBy"`
}
