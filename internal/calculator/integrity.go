package calculator

import "github.com/mmynk/evensplit/internal/models"

// RemoveParticipant returns the participant and expense collections with
// targetID removed and every expense kept consistent:
//   - expenses paid by targetID are dropped
//   - targetID is removed from beneficiary lists; an expense left with no
//     beneficiaries is dropped, including one that had none to begin with
//   - expenses that never referenced targetID are returned unchanged
//
// Relative order is preserved. Removing an unknown id is a no-op. The inputs
// are never modified; unchanged expenses share their beneficiary slice with
// the input.
func RemoveParticipant(participants []models.Participant, expenses []models.Expense, targetID string) ([]models.Participant, []models.Expense) {
	keptParticipants := make([]models.Participant, 0, len(participants))
	for _, p := range participants {
		if p.ID != targetID {
			keptParticipants = append(keptParticipants, p)
		}
	}

	keptExpenses := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.PaidBy == targetID || len(e.Participants) == 0 {
			continue
		}
		if !e.HasBeneficiary(targetID) {
			keptExpenses = append(keptExpenses, e)
			continue
		}

		remaining := make([]string, 0, len(e.Participants)-1)
		for _, id := range e.Participants {
			if id != targetID {
				remaining = append(remaining, id)
			}
		}
		if len(remaining) == 0 {
			continue
		}
		e.Participants = remaining
		keptExpenses = append(keptExpenses, e)
	}

	return keptParticipants, keptExpenses
}
