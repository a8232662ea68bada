package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/splitledger/internal/storage/sqlite"
)

var dbPath, ownerID string

// totalsCmd represents the totals command
var totalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Print balances and settlements for a ledger in the server database",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if ownerID == "" {
			return fmt.Errorf("--owner is required")
		}

		store, err := sqlite.New(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := cmd.Context()
		people, err := store.ListPeople(ctx, ownerID)
		if err != nil {
			return err
		}
		expenses, err := store.ListExpenses(ctx, ownerID)
		if err != nil {
			return err
		}
		slog.Debug("Loaded ledger", "owner", ownerID, "people", len(people), "expenses", len(expenses))

		return writeReport(cmd.OutOrStdout(), buildReport(people, expenses), jsonOutput)
	},
}

func init() {
	rootCmd.AddCommand(totalsCmd)

	totalsCmd.Flags().StringVar(&dbPath, "db", "./data/ledger.db", "Path to the SQLite database.")
	totalsCmd.Flags().StringVar(&ownerID, "owner", "", "User ID whose ledger to report.")
}
