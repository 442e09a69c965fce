// Package cmd implements the quotectl command line interface, a way to
// price service requests against the built-in tables without running
// the server.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quotectl",
	Short: "Price tiered service quotes from the command line",
	Long: `quotectl prices a service request against the built-in rate, tax,
and region tables and prints the Basic, Standard, and Premium packages.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
