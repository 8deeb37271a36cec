package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zing-batch",
		Short: "Run the zing automaton without a window",
		Long: `zing-batch steps the six-state automaton headlessly.

Use "run" to advance one grid and print its death tally, or "sweep" to
compare many seeds in parallel.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("log-level", "info", "Log level: info, debug or trace")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable ANSI colors")

	rootCmd.AddCommand(
		newRunCmd(),
		newSweepCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "zing-batch version %s\n", version)
		},
	}
}
