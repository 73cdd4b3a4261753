// Package cli implements the Pacely command-line interface using Cobra.
// Each subcommand is one file: add, list, done, reopen, rm, show, stats, serve.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pacely",
	Short: "Pacely — Track tasks, learn your pace",
	Long: `Pacely is a personal task tracker with productivity analytics.
Add tasks with time estimates, complete them, and see monthly completion
rates, estimation accuracy, and trends — in your terminal or the web client.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
