package models

import "github.com/shopspring/decimal"

// Expense is a single shared cost logged against a group. Expenses are
// immutable once created and are always split equally across the whole
// group, not just the people named in the description.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// GroupID is the group this expense belongs to.
	GroupID string `json:"group_id"`

	// Payer is the username of the participant who paid.
	Payer string `json:"payer"`

	// Amount is the full amount paid. Must be positive.
	Amount decimal.Decimal `json:"amount"`

	// Description is a human-readable label (e.g., "dinner").
	Description string `json:"description"`

	// CreatedAt is the Unix timestamp when the expense was logged.
	CreatedAt int64 `json:"created_at"`
}
