package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage/sqlite"
)

const dinnerLedger = `{
  "people": [
    {"id": "a", "name": "Alice", "color": "#ff6b6b"},
    {"id": "b", "name": "Bob", "color": "#4ecdc4"}
  ],
  "expenses": [
    {
      "id": "e1", "description": "Dinner", "amount": 90, "paidBy": "a",
      "date": "2024-03-01", "time": "19:30",
      "splits": [
        {"personId": "a", "amount": 30},
        {"personId": "b", "amount": 30},
        {"personId": "gone", "amount": 30}
      ]
    }
  ]
}`

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	t.Cleanup(func() { jsonOutput = false })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("splitctl %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestSettleTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	if err := os.WriteFile(path, []byte(dinnerLedger), 0o644); err != nil {
		t.Fatalf("write ledger: %v", err)
	}

	out := run(t, "", "settle", path)

	for _, want := range []string{"90.00", "Alice", "60.00", "-30.00", "Bob -> Alice", "Unknown -> Alice"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSettleJSONFromStdin(t *testing.T) {
	out := run(t, dinnerLedger, "settle", "-", "--json")

	var r report
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if r.AllSettled {
		t.Error("expected outstanding settlements")
	}
	if len(r.Balances) != 3 || r.Balances[2].PersonID != "gone" || r.Balances[2].Name != "Unknown" {
		t.Errorf("balances = %+v", r.Balances)
	}
	want := []settlementLine{
		{From: "b", FromName: "Bob", To: "a", ToName: "Alice", Amount: 30},
		{From: "gone", FromName: "Unknown", To: "a", ToName: "Alice", Amount: 30},
	}
	if len(r.Settlements) != len(want) {
		t.Fatalf("settlements = %+v", r.Settlements)
	}
	for i := range want {
		if r.Settlements[i] != want[i] {
			t.Errorf("settlement %d = %+v, want %+v", i, r.Settlements[i], want[i])
		}
	}
}

func TestTotalsFromDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ledger.db")
	store, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	ctx := context.Background()
	alice := &models.Person{OwnerID: "owner", Name: "Alice", Color: "#ff6b6b"}
	bob := &models.Person{OwnerID: "owner", Name: "Bob", Color: "#4ecdc4"}
	for _, p := range []*models.Person{alice, bob} {
		if err := store.CreatePerson(ctx, p); err != nil {
			t.Fatalf("create person: %v", err)
		}
	}
	err = store.CreateExpense(ctx, &models.Expense{
		OwnerID:     "owner",
		Description: "Cab",
		Amount:      20,
		PaidBy:      bob.ID,
		Category:    "Transportation",
		Splits:      []models.ExpenseSplit{{PersonID: alice.ID, Amount: 10}, {PersonID: bob.ID, Amount: 10}},
	})
	if err != nil {
		t.Fatalf("create expense: %v", err)
	}
	store.Close()

	out := run(t, "", "totals", "--db", dbPath, "--owner", "owner")
	if !strings.Contains(out, "Alice -> Bob") || !strings.Contains(out, "10.00") {
		t.Errorf("unexpected output:\n%s", out)
	}

	empty := run(t, "", "totals", "--db", dbPath, "--owner", "nobody")
	if !strings.Contains(empty, "All settled up") {
		t.Errorf("expected empty ledger to be settled:\n%s", empty)
	}
}
