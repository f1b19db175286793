package models

// Participant represents a person who can pay for or benefit from expenses.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format on the
	// server, "local-" prefixed UUID when created offline).
	ID string `json:"id"`

	// Name is the display name, trimmed of surrounding whitespace.
	Name string `json:"name"`
}
