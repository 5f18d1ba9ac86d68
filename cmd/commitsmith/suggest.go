package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emt/commitsmith/pkg/classifier"
	"github.com/emt/commitsmith/pkg/conventional"
	"github.com/emt/commitsmith/pkg/git"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Analyze staged changes and suggest a commit message",
	Long: `Analyze the currently staged git changes and suggest a conventional
commit message with an inferred type, scope, and description. Low-confidence
suggestions and possible breaking changes are flagged for review.`,
	Args: cobra.NoArgs,
	RunE: runSuggest,
}

var (
	suggestFormat     string
	suggestConfigFile string
	suggestCommit     bool
)

func init() {
	suggestCmd.Flags().StringVar(&suggestFormat, "format", "table", "Output format: table, json")
	suggestCmd.Flags().StringVar(&suggestConfigFile, "config", "", "Classifier config file (YAML)")
	suggestCmd.Flags().BoolVar(&suggestCommit, "commit", false, "Create the commit with the suggested message")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client := git.New("")
	if _, err := client.Root(ctx); err != nil {
		return err
	}

	changes, err := client.Staged(ctx)
	if err != nil {
		return err
	}
	if changes.Empty() {
		return fmt.Errorf("no staged changes found (use: git add <files>)")
	}

	clf := classifier.Default()
	if suggestConfigFile != "" {
		config, err := classifier.LoadConfig(suggestConfigFile)
		if err != nil {
			return err
		}
		if clf, err = classifier.New(config); err != nil {
			return err
		}
	}

	result, err := clf.Classify(changes.Files, changes.Diff)
	if err != nil {
		return err
	}

	message := conventional.Message{
		Type:        string(result.Type),
		Scope:       result.Scope,
		Breaking:    result.Breaking,
		Description: result.Description,
	}.Format()

	switch suggestFormat {
	case "json":
		if err := outputSuggestionJSON(cmd, result, message); err != nil {
			return err
		}
	case "table":
		outputSuggestionTable(cmd, result, changes, message)
	default:
		return fmt.Errorf("unsupported format: %s (supported: table, json)", suggestFormat)
	}

	if suggestCommit {
		if err := client.Commit(ctx, message); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Committed!\n")
	}

	return nil
}

func outputSuggestionJSON(cmd *cobra.Command, result *classifier.Result, message string) error {
	output := map[string]interface{}{
		"suggestion": result,
		"message":    message,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func outputSuggestionTable(cmd *cobra.Command, result *classifier.Result, changes *git.StagedChanges, message string) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "📊 Analyzed your changes:\n\n")
	fmt.Fprintf(out, "Files changed: %d\n", result.FilesChanged)
	if changes.Stat != "" {
		fmt.Fprintf(out, "%s\n", changes.Stat)
	}
	fmt.Fprintf(out, "\n")

	fmt.Fprintf(out, "💡 Suggested commit:\n\n")
	fmt.Fprintf(out, "  %s\n\n", message)

	if result.Confidence < 0.5 {
		fmt.Fprintf(out, "⚠️  Low confidence - please review and adjust\n\n")
	}

	if result.Breaking {
		fmt.Fprintf(out, "⚠️  Possible breaking change detected: %s\n", result.BreakingReason)
		fmt.Fprintf(out, "   Consider adding BREAKING CHANGE: in the commit body\n\n")
	}

	if !suggestCommit {
		fmt.Fprintf(out, "To commit:\n")
		fmt.Fprintf(out, "  git commit -m \"%s\"\n", message)
	}
}
