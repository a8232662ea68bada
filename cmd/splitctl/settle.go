package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/splitledger/internal/models"
)

// ledgerExport is the JSON shape read by the settle command.
type ledgerExport struct {
	People   []models.Person  `json:"people"`
	Expenses []models.Expense `json:"expenses"`
}

func readExport(r io.Reader) (ledgerExport, error) {
	var export ledgerExport
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return ledgerExport{}, fmt.Errorf("decode ledger: %w", err)
	}
	return export, nil
}

// settleCmd represents the settle command
var settleCmd = &cobra.Command{
	Use:   "settle <ledger.json|->",
	Short: "Print balances and settlements for an exported ledger",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open ledger: %w", err)
			}
			defer f.Close()
			in = f
		}

		export, err := readExport(in)
		if err != nil {
			return err
		}

		return writeReport(cmd.OutOrStdout(), buildReport(export.People, export.Expenses), jsonOutput)
	},
}

func init() {
	rootCmd.AddCommand(settleCmd)
}
