package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/emt/commitsmith/pkg/changelog"
	"github.com/emt/commitsmith/pkg/git"
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Generate a Markdown changelog from conventional commits",
	Long: `Generate a grouped Markdown changelog from the conventional commits in
the repository history. Defaults to the commits since the latest tag.`,
	Args: cobra.NoArgs,
	RunE: runChangelog,
}

var (
	changelogFrom        string
	changelogVersion     string
	changelogDate        string
	changelogIncludeHash bool
	changelogOutput      string
)

func init() {
	changelogCmd.Flags().StringVar(&changelogFrom, "from", "", "Start from this ref (default: latest tag)")
	changelogCmd.Flags().StringVar(&changelogVersion, "version", "", "Version for the changelog header")
	changelogCmd.Flags().StringVar(&changelogDate, "date", "", "Date for the changelog header (default: today)")
	changelogCmd.Flags().BoolVar(&changelogIncludeHash, "include-hash", false, "Include commit hashes")
	changelogCmd.Flags().StringVar(&changelogOutput, "output", "", "Output file (default: stdout)")
	rootCmd.AddCommand(changelogCmd)
}

func runChangelog(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client := git.New("")
	if _, err := client.Root(ctx); err != nil {
		return err
	}

	fromRef := changelogFrom
	if fromRef == "" {
		if tag := client.LatestTag(ctx); tag != "" {
			fromRef = tag
			fmt.Fprintf(cmd.ErrOrStderr(), "Generating changelog since %s\n", tag)
		}
	}

	commits, err := client.Messages(ctx, fromRef)
	if err != nil {
		return err
	}

	date := changelogDate
	if date == "" && changelogVersion != "" {
		date = time.Now().Format("2006-01-02")
	}

	output := changelog.Generate(commits, changelog.Options{
		Version:     changelogVersion,
		Date:        date,
		IncludeHash: changelogIncludeHash,
	})

	if changelogOutput != "" {
		if err := os.WriteFile(changelogOutput, []byte(output+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write changelog: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Changelog written to %s\n", changelogOutput)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
