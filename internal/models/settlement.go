package models

// Settlement is a payment that moves money from a debtor to a creditor.
// Settlements are computed from balances and are not persisted.
type Settlement struct {
	// From is the person who pays (debtor).
	From string `json:"from"`

	// To is the person who receives the payment (creditor).
	To string `json:"to"`

	// Amount is the payment amount, rounded to cents.
	Amount float64 `json:"amount"`
}
