package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emt/commitsmith/pkg/conventional"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a commit message against the conventional format",
	Long: `Validate a commit message against the conventional commit format.
Reads the message from a file argument, the --message flag, or stdin, so it
can serve directly as a commit-msg git hook.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var validateMessage string

func init() {
	validateCmd.Flags().StringVar(&validateMessage, "message", "", "Validate this message instead of reading a file")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	var message string

	switch {
	case validateMessage != "":
		message = validateMessage
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read commit message file: %w", err)
		}
		message = string(data)
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read commit message from stdin: %w", err)
		}
		message = string(data)
	}

	if err := conventional.Validate(strings.TrimSpace(message)); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "✗ %v\n", err)
		return fmt.Errorf("invalid commit message")
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ Valid commit message")
	return nil
}
