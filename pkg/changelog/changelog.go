// Package changelog renders conventional commits as a grouped Markdown
// changelog.
package changelog

import (
	"strings"

	"github.com/emt/commitsmith/pkg/conventional"
	"github.com/emt/commitsmith/pkg/git"
)

// typeOrder fixes the section order of the generated changelog.
var typeOrder = []string{
	"feat", "fix", "perf", "refactor",
	"docs", "style", "test", "build", "ops", "chore",
}

var typeHeaders = map[string]string{
	"feat":     "### ✨ Features",
	"fix":      "### 🐛 Bug Fixes",
	"perf":     "### ⚡ Performance",
	"refactor": "### ♻️  Refactoring",
	"docs":     "### 📚 Documentation",
	"style":    "### 💄 Styling",
	"test":     "### ✅ Tests",
	"build":    "### 📦 Build",
	"ops":      "### 🔧 Operations",
	"chore":    "### 🏗️  Chores",
}

const breakingHeader = "### ⚠️  BREAKING CHANGES"

// Options controls changelog rendering.
type Options struct {
	Version     string // adds a "## [version]" header when set
	Date        string // appended to the version header when set
	IncludeHash bool   // appends abbreviated commit hashes to entries
}

type entry struct {
	hash    string
	message string
	parsed  conventional.Message
}

// Generate renders commits as Markdown. Commits that do not follow the
// conventional format are skipped. Breaking changes are listed in their own
// leading section and additionally under their type.
func Generate(commits []git.Commit, opts Options) string {
	var breaking []entry
	byType := make(map[string][]entry)

	for _, commit := range commits {
		parsed, ok := conventional.Parse(commit.Message)
		if !ok {
			continue
		}

		e := entry{hash: commit.Hash, message: commit.Message, parsed: parsed}
		if parsed.Breaking {
			breaking = append(breaking, e)
		}
		byType[parsed.Type] = append(byType[parsed.Type], e)
	}

	if len(breaking) == 0 && len(byType) == 0 {
		return "No commits found."
	}

	var lines []string

	if opts.Version != "" {
		header := "## [" + opts.Version + "]"
		if opts.Date != "" {
			header += " - " + opts.Date
		}
		lines = append(lines, header, "")
	}

	if len(breaking) > 0 {
		lines = append(lines, breakingHeader, "")
		for _, e := range breaking {
			lines = append(lines, formatEntry(e, opts.IncludeHash))
			lines = append(lines, breakingDetails(e.message)...)
		}
		lines = append(lines, "")
	}

	for _, commitType := range typeOrder {
		entries := byType[commitType]
		if len(entries) == 0 {
			continue
		}

		lines = append(lines, typeHeaders[commitType], "")
		for _, e := range entries {
			lines = append(lines, formatEntry(e, opts.IncludeHash))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func formatEntry(e entry, includeHash bool) string {
	var parts []string

	if e.parsed.Scope != "" {
		parts = append(parts, "**"+e.parsed.Scope+"**:")
	}
	parts = append(parts, e.parsed.Description)

	if includeHash {
		hash := e.hash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		parts = append(parts, "([`"+hash+"`])")
	}

	return "- " + strings.Join(parts, " ")
}

// breakingDetails extracts BREAKING CHANGE body lines as indented bullets.
func breakingDetails(message string) []string {
	var details []string
	for _, line := range strings.Split(message, "\n") {
		if !strings.HasPrefix(line, "BREAKING CHANGE:") {
			continue
		}
		detail := strings.TrimSpace(strings.TrimPrefix(line, "BREAKING CHANGE:"))
		if detail != "" {
			details = append(details, "  - "+detail)
		}
	}
	return details
}
