package models

// Settlement represents a suggested payment between participants that clears
// (part of) their balances.
type Settlement struct {
	// From is the participant who owes money.
	From string `json:"from"`

	// To is the participant who is owed money.
	To string `json:"to"`

	Amount float64 `json:"amount"`
}
