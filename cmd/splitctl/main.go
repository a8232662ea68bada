// Command splitctl computes balances and settlements from the command line.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/splitledger/pkg/logging"
)

var jsonOutput bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "splitctl",
	Short:        "Work out who owes whom in a shared expense ledger",
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Setup()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print the report as JSON.")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
