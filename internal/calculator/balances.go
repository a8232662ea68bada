package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// Tolerance is the magnitude below which a balance counts as settled.
// It absorbs floating point noise left over from summing currency amounts.
const Tolerance = 0.01

// Balance is one person's net position.
type Balance struct {
	PersonID string
	Amount   float64 // Positive = owed money, Negative = owes money
}

// Balances is an ordered, read-only mapping from person ID to net balance.
// The zero value is an empty set of balances.
type Balances struct {
	ids     []string
	amounts map[string]float64
}

// Len returns the number of people with a balance entry.
func (b Balances) Len() int {
	return len(b.ids)
}

// Get returns the balance for a person and whether they have an entry.
func (b Balances) Get(personID string) (float64, bool) {
	amount, ok := b.amounts[personID]
	return amount, ok
}

// IDs returns the person IDs in iteration order.
func (b Balances) IDs() []string {
	ids := make([]string, len(b.ids))
	copy(ids, b.ids)
	return ids
}

// Entries returns a copy of every balance in iteration order.
func (b Balances) Entries() []Balance {
	entries := make([]Balance, len(b.ids))
	for i, id := range b.ids {
		entries[i] = Balance{PersonID: id, Amount: b.amounts[id]}
	}
	return entries
}

// Sum adds up all balances. For consistent books it is zero up to rounding noise.
func (b Balances) Sum() float64 {
	var sum float64
	for _, id := range b.ids {
		sum += b.amounts[id]
	}
	return sum
}

// AggregateBalances computes each person's net balance across all expenses.
//
// Every person in people gets an entry, starting at zero, in the order given.
// The payer of an expense is credited with its full amount and each split is
// debited from its person. IDs that do not belong to any known person still
// get an entry, appended in order of first appearance, so a dangling
// reference never drops money from the books.
func AggregateBalances(expenses []models.Expense, people []models.Person) Balances {
	b := Balances{
		ids:     make([]string, 0, len(people)),
		amounts: make(map[string]float64, len(people)),
	}

	add := func(personID string, delta float64) {
		if _, exists := b.amounts[personID]; !exists {
			b.ids = append(b.ids, personID)
		}
		b.amounts[personID] += delta
	}

	for _, p := range people {
		add(p.ID, 0)
	}

	for _, expense := range expenses {
		add(expense.PaidBy, expense.Amount)
		for _, split := range expense.Splits {
			add(split.PersonID, -split.Amount)
		}
	}

	return b
}

// party is a creditor or debtor with the amount still outstanding.
type party struct {
	id     string
	amount float64
}

// ComputeSettlements derives the payments that bring every balance back to zero.
//
// Algorithm (greedy two-pointer matching):
//   - creditors are balances above Tolerance, debtors below -Tolerance (sign flipped),
//     both kept in balance order
//   - each step pays the smaller of the current creditor's and debtor's amounts,
//     which fully discharges at least one of them
//   - a side advances once its remaining amount drops below Tolerance
//
// This yields at most len(creditors)+len(debtors)-1 payments. Each emitted
// amount is rounded to cents on its own, so a creditor's received total can
// differ from their balance by a few cents in many-way splits.
func ComputeSettlements(balances Balances) []models.Settlement {
	var creditors, debtors []party
	for _, id := range balances.ids {
		amount := balances.amounts[id]
		if amount > Tolerance {
			creditors = append(creditors, party{id: id, amount: amount})
		} else if amount < -Tolerance {
			debtors = append(debtors, party{id: id, amount: -amount})
		}
	}

	var settlements []models.Settlement
	i, j := 0, 0
	for i < len(creditors) && j < len(debtors) {
		creditor := &creditors[i]
		debtor := &debtors[j]

		amount := min(creditor.amount, debtor.amount)
		if amount > Tolerance {
			settlements = append(settlements, models.Settlement{
				From:   debtor.id,
				To:     creditor.id,
				Amount: roundCents(amount),
			})
		}

		creditor.amount -= amount
		debtor.amount -= amount

		if creditor.amount < Tolerance {
			i++
		}
		if debtor.amount < Tolerance {
			j++
		}
	}

	return settlements
}

// Settle aggregates balances and computes the settlements in one call.
func Settle(expenses []models.Expense, people []models.Person) []models.Settlement {
	return ComputeSettlements(AggregateBalances(expenses, people))
}

// roundCents rounds to two decimal places by scaling to cents first and then
// rounding half toward positive infinity. The scaling happens in float64, so
// 1.005 (stored just below) becomes 1.00.
func roundCents(amount float64) float64 {
	cents := decimal.NewFromFloat(amount * 100)
	return cents.Add(decimal.NewFromFloat(0.5)).Floor().Shift(-2).InexactFloat64()
}
