package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "commitsmith",
	Short: "Conventional commit workflow automation",
	Long: `Commitsmith analyzes staged git changes to suggest conventional commit
messages, validates commit messages, and generates changelogs and semantic
version bumps from commit history.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
