package models

// Expense represents money fronted by one participant and split evenly among
// the beneficiaries listed in Participants.
type Expense struct {
	// ID is the unique identifier for the expense.
	ID string `json:"id"`

	// Description is the human-readable label (e.g., "Groceries").
	Description string `json:"description"`

	// Amount is the total paid. Always positive for stored expenses.
	Amount float64 `json:"amount"`

	// PaidBy is the participant ID of the payer.
	PaidBy string `json:"paidBy"`

	// Participants is the set of participant IDs the amount is split among.
	// Never empty while the expense exists.
	Participants []string `json:"participants"`

	// CreatedAt is the Unix timestamp when the expense was created.
	// Informational only.
	CreatedAt int64 `json:"createdAt"`
}

// HasBeneficiary reports whether id is one of the expense's beneficiaries.
func (e Expense) HasBeneficiary(id string) bool {
	for _, p := range e.Participants {
		if p == id {
			return true
		}
	}
	return false
}

// Clone returns a copy of the expense that shares no memory with e.
func (e Expense) Clone() Expense {
	c := e
	if e.Participants != nil {
		c.Participants = append([]string(nil), e.Participants...)
	}
	return c
}
