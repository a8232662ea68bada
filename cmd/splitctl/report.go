package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
)

type balanceLine struct {
	PersonID string  `json:"personId"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
}

type settlementLine struct {
	From     string  `json:"from"`
	FromName string  `json:"fromName"`
	To       string  `json:"to"`
	ToName   string  `json:"toName"`
	Amount   float64 `json:"amount"`
}

type report struct {
	TotalSpent  float64          `json:"totalSpent"`
	Balances    []balanceLine    `json:"balances"`
	Settlements []settlementLine `json:"settlements"`
	AllSettled  bool             `json:"allSettled"`
}

// buildReport runs the balance and settlement computation over a ledger.
func buildReport(people []models.Person, expenses []models.Expense) report {
	names := make(map[string]string, len(people))
	for _, p := range people {
		names[p.ID] = p.Name
	}
	name := func(id string) string {
		if n, ok := names[id]; ok {
			return n
		}
		return models.UnknownPersonName
	}

	summary := calculator.Summarize(expenses, people)
	settlements := calculator.Settle(expenses, people)

	r := report{
		TotalSpent:  summary.TotalSpent,
		Balances:    make([]balanceLine, len(summary.Members)),
		Settlements: make([]settlementLine, len(settlements)),
		AllSettled:  len(settlements) == 0,
	}
	for i, m := range summary.Members {
		r.Balances[i] = balanceLine{PersonID: m.PersonID, Name: name(m.PersonID), Amount: m.NetBalance}
	}
	for i, s := range settlements {
		r.Settlements[i] = settlementLine{
			From:     s.From,
			FromName: name(s.From),
			To:       s.To,
			ToName:   name(s.To),
			Amount:   s.Amount,
		}
	}
	return r
}

func money(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// writeReport prints r as a table, or as indented JSON when asJSON is set.
func writeReport(w io.Writer, r report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Total spent\t%s\t\n\n", money(r.TotalSpent))

	fmt.Fprintln(tw, "Balances\t\t")
	for _, b := range r.Balances {
		fmt.Fprintf(tw, "%s\t%s\t\n", b.Name, money(b.Amount))
	}

	fmt.Fprintln(tw, "\t\t")
	if r.AllSettled {
		fmt.Fprintln(tw, "All settled up\t\t")
		return tw.Flush()
	}
	fmt.Fprintln(tw, "Settlements\t\t")
	for _, s := range r.Settlements {
		fmt.Fprintf(tw, "%s -> %s\t%s\t\n", s.FromName, s.ToName, money(s.Amount))
	}
	return tw.Flush()
}
