package models

import "github.com/shopspring/decimal"

// Expense represents a single expense fronted by one payer and split
// among a set of participants.
//
// Invariant: the sum of Splits over Participants equals Amount exactly.
// Participants absent from Splits contribute zero to the sum.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// PayerID references the user who fronted the total amount.
	// Must resolve to an existing User at creation time.
	PayerID string

	// Amount is the exact decimal total of the expense.
	Amount decimal.Decimal

	// Participants is the ordered list of user IDs splitting the
	// expense. Participants are not required to exist as Users; only
	// the payer is checked.
	Participants []string

	// Splits maps a user ID to the exact decimal amount that user owes.
	Splits map[string]decimal.Decimal

	// Description is a free-text note for the expense. Required.
	Description string

	// CreatedAt is the UTC creation time in RFC 3339 form.
	CreatedAt string
}

// HasParticipant reports whether userID appears in the participant list.
func (e *Expense) HasParticipant(userID string) bool {
	for _, p := range e.Participants {
		if p == userID {
			return true
		}
	}
	return false
}
