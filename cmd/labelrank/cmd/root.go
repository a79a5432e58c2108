// Package cmd implements the labelrank CLI: flag/env/config wiring via
// cobra and viper, one "run" subcommand over package mtx and package
// labelrank.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "labelrank",
	Short: "Detect communities in a graph with the LabelRank algorithm",
	Long: `labelrank loads a Matrix-Market graph file, symmetrizes and
self-loops it, runs the LabelRank community-detection kernel, and prints
the resulting membership alongside a modularity score and timing.`,
}

// Execute runs the root command, exiting the process with status 1 on
// error — the only output a CLI entry point needs beyond what cobra
// already prints.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
