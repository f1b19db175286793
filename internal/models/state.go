package models

// State is the complete set of participant and expense collections owned by
// a store. Both slices keep insertion order.
type State struct {
	Participants []Participant `json:"participants"`
	Expenses     []Expense     `json:"expenses"`
}

// NewState returns a state with empty, non-nil collections.
func NewState() State {
	return State{
		Participants: []Participant{},
		Expenses:     []Expense{},
	}
}

// Clone returns a deep copy of the state. Nil collections come back empty.
func (s State) Clone() State {
	c := State{
		Participants: make([]Participant, len(s.Participants)),
		Expenses:     make([]Expense, len(s.Expenses)),
	}
	copy(c.Participants, s.Participants)
	for i, e := range s.Expenses {
		c.Expenses[i] = e.Clone()
	}
	return c
}

// Participant looks up a participant by ID.
func (s State) Participant(id string) (Participant, bool) {
	for _, p := range s.Participants {
		if p.ID == id {
			return p, true
		}
	}
	return Participant{}, false
}
