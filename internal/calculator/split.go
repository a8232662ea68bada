package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

var (
	ErrSplitMismatch    = errors.New("split amounts don't match total amount")
	ErrNegativeSplit    = errors.New("split amount cannot be negative")
	ErrDuplicateSplit   = errors.New("person appears more than once in splits")
	ErrNoParticipants   = errors.New("must have at least one participant")
	ErrNonPositiveTotal = errors.New("amount must be greater than zero")
	ErrFractionalCents  = errors.New("amount has a fraction of a cent")
)

// WholeCents reports whether amount has at most two decimal places.
func WholeCents(amount float64) bool {
	d := decimal.NewFromFloat(amount)
	return d.Equal(d.Round(2))
}

// ValidateAmount checks an expense total: positive and in whole cents.
func ValidateAmount(total float64) error {
	if total <= 0 {
		return ErrNonPositiveTotal
	}
	if !WholeCents(total) {
		return fmt.Errorf("%w: %v", ErrFractionalCents, total)
	}
	return nil
}

// EqualSplit divides total equally among personIDs at cent precision.
// Cents that do not divide evenly go one each to the first people in order,
// so the shares always sum to the rounded total.
func EqualSplit(total float64, personIDs []string) []models.ExpenseSplit {
	if len(personIDs) == 0 {
		return nil
	}

	cents := decimal.NewFromFloat(total).Round(2).Shift(2).IntPart()
	n := int64(len(personIDs))
	share, remainder := cents/n, cents%n

	splits := make([]models.ExpenseSplit, len(personIDs))
	for i, id := range personIDs {
		c := share
		if int64(i) < remainder {
			c++
		}
		splits[i] = models.ExpenseSplit{
			PersonID: id,
			Amount:   decimal.New(c, -2).InexactFloat64(),
		}
	}
	return splits
}

// ValidateSplits checks custom splits entered for an expense of the given total.
// Shares must be non-negative, name each person once, and add up to the total
// within Tolerance. The total and every share must be in whole cents.
func ValidateSplits(total float64, splits []models.ExpenseSplit) error {
	if err := ValidateAmount(total); err != nil {
		return err
	}
	if len(splits) == 0 {
		return ErrNoParticipants
	}

	seen := make(map[string]bool, len(splits))
	sum := decimal.Zero
	for _, s := range splits {
		if s.Amount < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeSplit, s.PersonID)
		}
		if !WholeCents(s.Amount) {
			return fmt.Errorf("%w: %s owes %v", ErrFractionalCents, s.PersonID, s.Amount)
		}
		if seen[s.PersonID] {
			return fmt.Errorf("%w: %s", ErrDuplicateSplit, s.PersonID)
		}
		seen[s.PersonID] = true
		sum = sum.Add(decimal.NewFromFloat(s.Amount))
	}

	want := decimal.NewFromFloat(total)
	if sum.Sub(want).Abs().GreaterThan(decimal.NewFromFloat(Tolerance)) {
		return fmt.Errorf("%w: splits sum to %s, total is %s",
			ErrSplitMismatch, sum.StringFixed(2), want.StringFixed(2))
	}
	return nil
}
