package calculator

import (
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/mmynk/splitledger/internal/models"
)

func people(ids ...string) []models.Person {
	ps := make([]models.Person, len(ids))
	for i, id := range ids {
		ps[i] = models.Person{ID: id, Name: id}
	}
	return ps
}

func TestAggregateBalances(t *testing.T) {
	tests := []struct {
		name     string
		expenses []models.Expense
		people   []models.Person
		want     []Balance
	}{
		{
			name: "two people, one expense",
			expenses: []models.Expense{
				{Amount: 100, PaidBy: "A", Splits: []models.ExpenseSplit{{PersonID: "A", Amount: 50}, {PersonID: "B", Amount: 50}}},
			},
			people: people("A", "B"),
			want:   []Balance{{"A", 50}, {"B", -50}},
		},
		{
			name: "three-way split",
			expenses: []models.Expense{
				{Amount: 90, PaidBy: "A", Splits: []models.ExpenseSplit{{PersonID: "A", Amount: 30}, {PersonID: "B", Amount: 30}, {PersonID: "C", Amount: 30}}},
			},
			people: people("A", "B", "C"),
			want:   []Balance{{"A", 60}, {"B", -30}, {"C", -30}},
		},
		{
			name:   "no expenses - everyone at zero",
			people: people("A", "B", "C"),
			want:   []Balance{{"A", 0}, {"B", 0}, {"C", 0}},
		},
		{
			name: "person without expenses still reported",
			expenses: []models.Expense{
				{Amount: 20, PaidBy: "B", Splits: []models.ExpenseSplit{{PersonID: "A", Amount: 10}, {PersonID: "B", Amount: 10}}},
			},
			people: people("A", "B", "C"),
			want:   []Balance{{"A", -10}, {"B", 10}, {"C", 0}},
		},
		{
			name: "unknown ids appended in order of first appearance",
			expenses: []models.Expense{
				{Amount: 30, PaidBy: "X", Splits: []models.ExpenseSplit{{PersonID: "A", Amount: 15}, {PersonID: "Y", Amount: 15}}},
			},
			people: people("A"),
			want:   []Balance{{"A", -15}, {"X", 30}, {"Y", -15}},
		},
		{
			name: "splits not summing to total flow through",
			expenses: []models.Expense{
				{Amount: 10, PaidBy: "A", Splits: []models.ExpenseSplit{{PersonID: "B", Amount: 9}}},
			},
			people: people("A", "B"),
			want:   []Balance{{"A", 10}, {"B", -9}},
		},
		{
			name: "empty input",
			want: []Balance{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateBalances(tt.expenses, tt.people).Entries()
			if len(got) != len(tt.want) {
				t.Fatalf("AggregateBalances() returned %d entries, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if got[i].PersonID != tt.want[i].PersonID {
					t.Errorf("entry %d: person = %s, want %s", i, got[i].PersonID, tt.want[i].PersonID)
				}
				if math.Abs(got[i].Amount-tt.want[i].Amount) > 1e-9 {
					t.Errorf("entry %d (%s): amount = %v, want %v", i, got[i].PersonID, got[i].Amount, tt.want[i].Amount)
				}
			}
		})
	}
}

func TestBalancesAreCopies(t *testing.T) {
	b := AggregateBalances(nil, people("A", "B"))

	ids := b.IDs()
	ids[0] = "mutated"
	entries := b.Entries()
	entries[0].Amount = 99

	if got := b.IDs()[0]; got != "A" {
		t.Errorf("IDs() leaked internal slice: first id = %s", got)
	}
	if amount, _ := b.Get("A"); amount != 0 {
		t.Errorf("Entries() leaked internal state: A = %v", amount)
	}
	if _, ok := b.Get("mutated"); ok {
		t.Error("unexpected entry for mutated id")
	}
}

func TestComputeSettlements(t *testing.T) {
	tests := []struct {
		name     string
		expenses []models.Expense
		people   []models.Person
		want     []models.Settlement
	}{
		{
			name: "one debtor pays one creditor",
			expenses: []models.Expense{
				{Amount: 100, PaidBy: "A", Splits: []models.ExpenseSplit{{PersonID: "A", Amount: 50}, {PersonID: "B", Amount: 50}}},
			},
			people: people("A", "B"),
			want:   []models.Settlement{{From: "B", To: "A", Amount: 50}},
		},
		{
			name: "two debtors pay one creditor in balance order",
			expenses: []models.Expense{
				{Amount: 90, PaidBy: "A", Splits: []models.ExpenseSplit{{PersonID: "A", Amount: 30}, {PersonID: "B", Amount: 30}, {PersonID: "C", Amount: 30}}},
			},
			people: people("A", "B", "C"),
			want: []models.Settlement{
				{From: "B", To: "A", Amount: 30},
				{From: "C", To: "A", Amount: 30},
			},
		},
		{
			name:   "no expenses - nothing to settle",
			people: people("A", "B"),
			want:   nil,
		},
		{
			name: "debtor split across two creditors",
			expenses: []models.Expense{
				{Amount: 60, PaidBy: "A", Splits: []models.ExpenseSplit{{PersonID: "C", Amount: 60}}},
				{Amount: 40, PaidBy: "B", Splits: []models.ExpenseSplit{{PersonID: "C", Amount: 40}}},
			},
			people: people("A", "B", "C"),
			want: []models.Settlement{
				{From: "C", To: "A", Amount: 60},
				{From: "C", To: "B", Amount: 40},
			},
		},
		{
			name: "thirds are rounded to cents",
			expenses: []models.Expense{
				{Amount: 100, PaidBy: "A", Splits: []models.ExpenseSplit{{PersonID: "A", Amount: 100.0 / 3}, {PersonID: "B", Amount: 100.0 / 3}, {PersonID: "C", Amount: 100.0 / 3}}},
			},
			people: people("A", "B", "C"),
			want: []models.Settlement{
				{From: "B", To: "A", Amount: 33.33},
				{From: "C", To: "A", Amount: 33.33},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Settle(tt.expenses, tt.people)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Settle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeSettlements_WithinTolerance(t *testing.T) {
	// Balances are built directly so that the amounts are exact.
	b := Balances{
		ids:     []string{"A", "B"},
		amounts: map[string]float64{"A": 0.005, "B": -0.005},
	}
	if got := ComputeSettlements(b); len(got) != 0 {
		t.Errorf("expected no settlements for balances within tolerance, got %v", got)
	}
}

func TestComputeSettlements_DoesNotMutateInput(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 90, PaidBy: "A", Splits: []models.ExpenseSplit{{PersonID: "A", Amount: 30}, {PersonID: "B", Amount: 30}, {PersonID: "C", Amount: 30}}},
	}
	b := AggregateBalances(expenses, people("A", "B", "C"))
	before := b.Entries()

	ComputeSettlements(b)

	if after := b.Entries(); !reflect.DeepEqual(before, after) {
		t.Errorf("balances changed: before %v, after %v", before, after)
	}
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{33.333333, 33.33},
		{66.666666, 66.67},
		{2.675, 2.68},
		{1.005, 1.00},
		{1.015, 1.01},
		{0.125, 0.13},
		{50, 50},
	}
	for _, tt := range tests {
		if got := roundCents(tt.in); got != tt.want {
			t.Errorf("roundCents(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestComputeSettlements_HalfCentAmounts(t *testing.T) {
	tests := []struct {
		amount float64
		want   float64
	}{
		{1.005, 1.00},
		{1.015, 1.01},
		{0.125, 0.13},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.amount), func(t *testing.T) {
			expenses := []models.Expense{{
				ID:     "e1",
				Amount: tt.amount,
				PaidBy: "A",
				Splits: []models.ExpenseSplit{{PersonID: "B", Amount: tt.amount}},
			}}
			got := Settle(expenses, people("A", "B"))
			if len(got) != 1 {
				t.Fatalf("expected 1 settlement, got %v", got)
			}
			if got[0].Amount != tt.want {
				t.Errorf("settlement amount = %v, want %v", got[0].Amount, tt.want)
			}
		})
	}
}

// randomLedger builds a ledger whose amounts are multiples of 0.25, which
// float64 represents exactly, so every property can be checked precisely.
func randomLedger(r *rand.Rand) ([]models.Expense, []models.Person) {
	ids := []string{"ann", "bob", "cat", "dan", "eve", "fay", "gus"}
	ps := people(ids[:2+r.Intn(len(ids)-1)]...)

	var expenses []models.Expense
	for n := r.Intn(12); n > 0; n-- {
		payer := ps[r.Intn(len(ps))].ID
		var splits []models.ExpenseSplit
		var total float64
		for _, p := range ps {
			if r.Intn(3) == 0 {
				continue
			}
			share := float64(r.Intn(400)) * 0.25
			splits = append(splits, models.ExpenseSplit{PersonID: p.ID, Amount: share})
			total += share
		}
		if total == 0 {
			continue
		}
		expenses = append(expenses, models.Expense{Amount: total, PaidBy: payer, Splits: splits})
	}
	return expenses, ps
}

func TestSettlementProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for iter := 0; iter < 500; iter++ {
		expenses, ps := randomLedger(r)
		balances := AggregateBalances(expenses, ps)

		if sum := balances.Sum(); math.Abs(sum) > 1e-6 {
			t.Fatalf("iteration %d: balances sum to %v, want 0", iter, sum)
		}

		if again := AggregateBalances(expenses, ps); !reflect.DeepEqual(balances.Entries(), again.Entries()) {
			t.Fatalf("iteration %d: aggregation is not repeatable", iter)
		}

		settlements := ComputeSettlements(balances)
		if again := ComputeSettlements(balances); !reflect.DeepEqual(settlements, again) {
			t.Fatalf("iteration %d: settlements are not deterministic", iter)
		}

		var creditors, debtors int
		remaining := make(map[string]float64)
		for _, b := range balances.Entries() {
			remaining[b.PersonID] = b.Amount
			if b.Amount > Tolerance {
				creditors++
			} else if b.Amount < -Tolerance {
				debtors++
			}
		}

		if limit := max(0, creditors+debtors-1); len(settlements) > limit {
			t.Errorf("iteration %d: %d settlements, want at most %d", iter, len(settlements), limit)
		}

		for _, s := range settlements {
			if s.From == s.To {
				t.Errorf("iteration %d: self payment %v", iter, s)
			}
			if s.Amount <= 0 {
				t.Errorf("iteration %d: non-positive settlement %v", iter, s)
			}
			remaining[s.From] += s.Amount
			remaining[s.To] -= s.Amount
		}

		for id, amount := range remaining {
			if math.Abs(amount) > Tolerance {
				t.Errorf("iteration %d: %s left with %v after settling", iter, id, amount)
			}
		}
	}
}
