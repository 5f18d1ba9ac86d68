package main

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
	"github.com/spf13/cobra"

	"github.com/emt/commitsmith/pkg/git"
	"github.com/emt/commitsmith/pkg/release"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Calculate the next semantic version from commits",
	Long: `Calculate the next semantic version by classifying the conventional
commits since the last release: breaking changes bump the major version,
features and fixes the minor version, everything else the patch version.`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

var (
	versionCurrent string
	versionFrom    string
	versionVerbose bool
)

func init() {
	versionCmd.Flags().StringVar(&versionCurrent, "current", "", "Current version (default: latest tag)")
	versionCmd.Flags().StringVar(&versionFrom, "from", "", "Analyze commits from this ref")
	versionCmd.Flags().BoolVar(&versionVerbose, "verbose", false, "Show detailed analysis")
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client := git.New("")
	if _, err := client.Root(ctx); err != nil {
		return err
	}

	var current *goversion.Version
	fromRef := versionFrom

	switch {
	case versionCurrent != "":
		parsed, err := goversion.NewVersion(versionCurrent)
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", versionCurrent, err)
		}
		current = parsed
		if fromRef == "" {
			fromRef = "v" + current.String()
		}
	default:
		if tag := client.LatestTag(ctx); tag != "" {
			parsed, err := goversion.NewVersion(tag)
			if err != nil {
				return fmt.Errorf("latest tag %q is not a version: %w", tag, err)
			}
			current = parsed
			if fromRef == "" {
				fromRef = tag
			}
		} else {
			current = goversion.Must(goversion.NewVersion("0.0.0"))
		}
	}

	subjects, err := client.Subjects(ctx, fromRef)
	if err != nil {
		return err
	}

	analysis := release.Analyze(subjects)
	next, bump, reason := analysis.NextVersion(current)

	out := cmd.OutOrStdout()

	if !versionVerbose {
		fmt.Fprintln(out, next)
		return nil
	}

	fmt.Fprintf(out, "📊 Version Analysis\n\n")
	fmt.Fprintf(out, "Current version: %s\n", current)
	if fromRef != "" {
		fmt.Fprintf(out, "Analyzing since: %s\n", fromRef)
	}
	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, "Commits found:\n")
	fmt.Fprintf(out, "  • %d breaking change(s)\n", len(analysis.Breaking))
	fmt.Fprintf(out, "  • %d feature(s)\n", len(analysis.Features))
	fmt.Fprintf(out, "  • %d fix(es)\n", len(analysis.Fixes))
	fmt.Fprintf(out, "  • %d other change(s)\n", len(analysis.Other))
	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, "Bump type: %s\n", string(bump))
	fmt.Fprintf(out, "Reason: %s\n", reason)
	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, "Next version: %s\n", next)

	if len(analysis.Breaking) > 0 {
		fmt.Fprintf(out, "\nBreaking commits:\n")
		for i, subject := range analysis.Breaking {
			if i == 5 {
				break
			}
			fmt.Fprintf(out, "  • %s\n", subject)
		}
	}

	return nil
}
