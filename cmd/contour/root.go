package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contour",
	Short: "Extract structured outlines from PDF documents",
	Long: `contour reads PDF documents and produces a JSON artifact per document:
a best-guess title plus a hierarchical H1/H2/H3 outline with page numbers.

Usage:
  contour extract [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
