package models

// Expense represents a shared expense recorded inside a group.
//
// Payer and every participant are validated against the group's member
// set at creation time; the record is immutable afterwards.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"expense_id"`

	// GroupID references the owning Group.
	GroupID string `json:"group_id"`

	// Description is the human-readable label (e.g., "Lunch at the beach").
	Description string `json:"description"`

	// Amount is the total expense amount, strictly positive.
	Amount float64 `json:"amount"`

	// Payer is the name of the group member who paid.
	Payer string `json:"payer"`

	// Participants is the non-empty set of member names splitting
	// this expense.
	Participants []string `json:"participants"`

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64 `json:"created_at"`
}
