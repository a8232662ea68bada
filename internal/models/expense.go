package models

// Expense is a single payment made by one person on behalf of several.
// Expenses are immutable once recorded; they are only ever deleted wholesale.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// OwnerID is the user whose ledger this expense belongs to.
	OwnerID string `json:"ownerId,omitempty"`

	// Description is what the money was spent on (e.g., "Groceries").
	Description string `json:"description"`

	// Amount is the total paid, always positive.
	Amount float64 `json:"amount"`

	// PaidBy is the ID of the person who paid.
	PaidBy string `json:"paidBy"`

	// Splits are the per-person shares of Amount, in the order they were entered.
	// Person IDs are unique within one expense. The shares are expected to sum
	// to Amount, but that is checked on input, not when computing balances.
	Splits []ExpenseSplit `json:"splits"`

	// Category is one of the fixed expense categories (e.g., "Travel").
	Category string `json:"category,omitempty"`

	// Tag is an optional free-form label.
	Tag string `json:"tag,omitempty"`

	// Intent is an optional note on why the expense was made.
	Intent string `json:"intent,omitempty"`

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64 `json:"createdAt,omitempty"`
}

// ExpenseSplit is the portion of one expense owed by one person.
type ExpenseSplit struct {
	PersonID string  `json:"personId"`
	Amount   float64 `json:"amount"` // non-negative
}
