package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// DefaultCategory is used for expenses recorded without a category.
const DefaultCategory = "Other"

// Categories lists the expense categories, in display order.
var Categories = []string{
	"Food & Dining",
	"Transportation",
	"Entertainment",
	"Shopping",
	"Bills & Utilities",
	"Healthcare",
	"Travel",
	DefaultCategory,
}

// IsCategory reports whether name is one of the known categories.
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// MemberBalance represents the balance information for one person.
type MemberBalance struct {
	PersonID   string
	NetBalance float64 // Positive = owed money, Negative = owes money
	TotalPaid  float64 // Total amount paid across all expenses
	TotalOwed  float64 // Total of this person's shares
}

// CategoryTotal is the amount spent in one category.
type CategoryTotal struct {
	Category string
	Total    float64
	Count    int
}

// Summary is the totals view over a ledger.
type Summary struct {
	TotalSpent   float64
	ExpenseCount int
	Categories   []CategoryTotal
	Members      []MemberBalance
}

// Summarize computes spending totals and per-member paid/owed figures.
// Members are listed in the same order as AggregateBalances, and each
// NetBalance equals that person's aggregated balance.
func Summarize(expenses []models.Expense, people []models.Person) Summary {
	balances := AggregateBalances(expenses, people)

	paid := make(map[string]float64, balances.Len())
	owed := make(map[string]float64, balances.Len())

	total := decimal.Zero
	categoryIndex := make(map[string]int)
	var categories []CategoryTotal

	for _, expense := range expenses {
		amount := decimal.NewFromFloat(expense.Amount)
		total = total.Add(amount)

		category := expense.Category
		if category == "" {
			category = DefaultCategory
		}
		idx, ok := categoryIndex[category]
		if !ok {
			idx = len(categories)
			categoryIndex[category] = idx
			categories = append(categories, CategoryTotal{Category: category})
		}
		categories[idx].Total += expense.Amount
		categories[idx].Count++

		paid[expense.PaidBy] += expense.Amount
		for _, split := range expense.Splits {
			owed[split.PersonID] += split.Amount
		}
	}

	for i := range categories {
		categories[i].Total = roundCents(categories[i].Total)
	}

	members := make([]MemberBalance, 0, balances.Len())
	for _, b := range balances.Entries() {
		members = append(members, MemberBalance{
			PersonID:   b.PersonID,
			NetBalance: b.Amount,
			TotalPaid:  paid[b.PersonID],
			TotalOwed:  owed[b.PersonID],
		})
	}

	return Summary{
		TotalSpent:   total.Round(2).InexactFloat64(),
		ExpenseCount: len(expenses),
		Categories:   categories,
		Members:      members,
	}
}
