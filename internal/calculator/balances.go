package calculator

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/mmynk/evensplit/internal/models"
)

// ErrInvalidInput is returned when a required collection is missing.
var ErrInvalidInput = errors.New("invalid input")

// SettleThreshold is the smallest balance that still needs settling. It
// absorbs floating point noise when matching debts.
const SettleThreshold = 0.01

// ComputeBalances computes every participant's net balance from scratch.
//
// Algorithm:
//   - Seed 0 for every participant, so settled people still show up
//   - For each expense: each beneficiary owes amount/len(beneficiaries)
//   - The payer is credited the full amount they fronted
//
// Expenses that reference ids missing from participants still contribute;
// those ids get their own entry. Expenses with no beneficiaries are skipped
// entirely, and non-finite amounts count as 0.
//
// A nil participants or expenses slice returns ErrInvalidInput. Empty
// slices are fine.
func ComputeBalances(participants []models.Participant, expenses []models.Expense) (models.BalanceSheet, error) {
	if participants == nil {
		return nil, fmt.Errorf("%w: participants collection is nil", ErrInvalidInput)
	}
	if expenses == nil {
		return nil, fmt.Errorf("%w: expenses collection is nil", ErrInvalidInput)
	}

	balances := make(models.BalanceSheet, len(participants))
	for _, p := range participants {
		balances[p.ID] = 0
	}

	for _, e := range expenses {
		if len(e.Participants) == 0 {
			continue
		}
		amount := sanitizeAmount(e.Amount)
		share := amount / float64(len(e.Participants))
		for _, id := range e.Participants {
			balances[id] -= share
		}
		balances[e.PaidBy] += amount
	}

	return balances, nil
}

// StaleReferences returns the ids referenced by expenses (as payer or
// beneficiary) that are not in participants, sorted.
func StaleReferences(participants []models.Participant, expenses []models.Expense) []string {
	known := make(map[string]bool, len(participants))
	for _, p := range participants {
		known[p.ID] = true
	}

	stale := make(map[string]bool)
	for _, e := range expenses {
		if !known[e.PaidBy] {
			stale[e.PaidBy] = true
		}
		for _, id := range e.Participants {
			if !known[id] {
				stale[id] = true
			}
		}
	}

	ids := make([]string, 0, len(stale))
	for id := range stale {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Totals returns the total amount spent and the amount fronted by each payer.
func Totals(expenses []models.Expense) (float64, map[string]float64) {
	var total float64
	byPayer := make(map[string]float64)
	for _, e := range expenses {
		amount := sanitizeAmount(e.Amount)
		total += amount
		byPayer[e.PaidBy] += amount
	}
	return total, byPayer
}

// SuggestSettlements turns a balance sheet into a short list of transfers
// that settles it, using greedy matching: the largest debtor pays the
// largest creditor until one of them is settled.
func SuggestSettlements(sheet models.BalanceSheet) []models.Settlement {
	type entry struct {
		id     string
		amount float64
	}

	// Create lists of creditors (owed money) and debtors (owe money)
	var creditors, debtors []entry
	for id, bal := range sheet {
		if bal > SettleThreshold {
			creditors = append(creditors, entry{id, bal})
		} else if bal < -SettleThreshold {
			debtors = append(debtors, entry{id, -bal}) // Make positive
		}
	}
	byAmount := func(list []entry) func(i, j int) bool {
		return func(i, j int) bool {
			if list[i].amount != list[j].amount {
				return list[i].amount > list[j].amount
			}
			return list[i].id < list[j].id
		}
	}
	sort.Slice(creditors, byAmount(creditors))
	sort.Slice(debtors, byAmount(debtors))

	settlements := []models.Settlement{}
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		// Amount to settle is minimum of what debtor owes and creditor is owed
		amount := math.Min(debtor.amount, creditor.amount)
		if amount > SettleThreshold {
			settlements = append(settlements, models.Settlement{
				From:   debtor.id,
				To:     creditor.id,
				Amount: amount,
			})
		}

		debtor.amount -= amount
		creditor.amount -= amount

		// Move to next debtor/creditor if fully settled
		if debtor.amount < SettleThreshold {
			i++
		}
		if creditor.amount < SettleThreshold {
			j++
		}
	}

	return settlements
}

func sanitizeAmount(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return amount
}
