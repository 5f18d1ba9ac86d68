// Package classifier infers conventional commit messages from staged git
// changes. Classification is a pure computation over the changed file list
// and the unified diff text: it performs no I/O and is safe to call
// concurrently for independent inputs.
package classifier

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrNoChanges is returned by Classify when both the file list and the diff
// are empty. Any other input, however uninformative, classifies to the
// low-confidence chore default instead of failing.
var ErrNoChanges = errors.New("no changes to classify")

// uncertainConfidence is the confidence assigned when no type signal is
// found. It is deliberately below 0.5 so callers can use it as a "require
// human review" threshold.
const uncertainConfidence = 0.3

// entityPatterns extract identifier names from added diff lines. The
// definition keywords cover the common cases across languages; the first
// capture group is the identifier.
var entityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+.*def (\w+)`),
	regexp.MustCompile(`\+.*function (\w+)`),
	regexp.MustCompile(`\+.*class (\w+)`),
	regexp.MustCompile(`\+.*const (\w+)`),
}

// breakingIndicators are checked in order; the first match determines the
// reason. The line-scoped indicators only consider removed lines.
var breakingIndicators = []struct {
	removedLine string // substring of a removed line, empty for whole-diff markers
	marker      string // substring anywhere in the diff
	reason      string
}{
	{removedLine: "public ", reason: "removed public API"},
	{removedLine: "export ", reason: "removed exports"},
	{marker: "breaking change", reason: "explicitly marked"},
	{removedLine: "@deprecated", reason: "removed deprecated feature"},
}

type scopeRule struct {
	re    *regexp.Regexp
	scope string
}

// Classifier holds compiled classification rules. Construct with New or
// Default; a Classifier is immutable and safe for concurrent use.
type Classifier struct {
	scopeRules []scopeRule
	keywords   map[CommitType][]string
}

// New builds a classifier from the given config, compiling its scope
// patterns.
func New(config *Config) (*Classifier, error) {
	rules := make([]scopeRule, 0, len(config.Scopes))
	for _, rule := range config.Scopes {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid scope pattern %q: %w", rule.Pattern, err)
		}
		rules = append(rules, scopeRule{re: re, scope: rule.Scope})
	}

	keywords := make(map[CommitType][]string, len(config.Keywords))
	for commitType, words := range config.Keywords {
		keywords[commitType] = append([]string(nil), words...)
	}

	return &Classifier{scopeRules: rules, keywords: keywords}, nil
}

// Default returns a classifier using the built-in rules.
func Default() *Classifier {
	c, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return c
}

// Classify infers commit message components for the given staged changes.
// It fails only when both inputs are empty.
func (c *Classifier) Classify(files []ChangedFile, diff string) (*Result, error) {
	if len(files) == 0 && diff == "" {
		return nil, ErrNoChanges
	}

	commitType, confidence := c.inferType(files, diff)
	breaking, reason := detectBreaking(diff)

	return &Result{
		Type:           commitType,
		Scope:          c.inferScope(files),
		Description:    c.generateDescription(files, diff, commitType),
		Confidence:     confidence,
		Breaking:       breaking,
		BreakingReason: reason,
		FilesChanged:   len(files),
	}, nil
}

// inferScope derives a scope from the changed file paths. Each file takes
// the first scope rule matching its lowercased path; the most frequent
// scope wins, with ties broken by encounter order. When no rule matches any
// file, the first path segment of a nested file serves as the scope,
// skipping the generic src/lib/app segments.
func (c *Classifier) inferScope(files []ChangedFile) string {
	var scopes []string
	for _, file := range files {
		path := strings.ToLower(file.Path)
		for _, rule := range c.scopeRules {
			if rule.re.MatchString(path) {
				scopes = append(scopes, rule.scope)
				break
			}
		}
	}

	if len(scopes) == 0 {
		for _, file := range files {
			segments := strings.Split(file.Path, "/")
			if len(segments) < 2 {
				continue
			}
			segment := segments[0]
			if segment == "src" || segment == "lib" || segment == "app" {
				continue
			}
			if len(segment) > 20 {
				segment = segment[:20]
			}
			return segment
		}
		return ""
	}

	counts := make(map[string]int, len(scopes))
	for _, scope := range scopes {
		counts[scope]++
	}

	best := ""
	bestCount := 0
	for _, scope := range scopes {
		if counts[scope] > bestCount {
			best = scope
			bestCount = counts[scope]
		}
	}
	return best
}

// inferType scores each commit type against the diff and returns the winner
// with a confidence in [0, 1].
func (c *Classifier) inferType(files []ChangedFile, diff string) (CommitType, float64) {
	hasAdded := false
	hasDeleted := false
	onlyTests := len(files) > 0
	onlyDocs := len(files) > 0

	for _, file := range files {
		switch file.Status {
		case StatusAdded:
			hasAdded = true
		case StatusDeleted:
			hasDeleted = true
		}

		path := strings.ToLower(file.Path)
		if !strings.Contains(path, "test") {
			onlyTests = false
		}
		if !isDocFile(path) {
			onlyDocs = false
		}
	}

	if onlyTests {
		return TypeTest, 0.9
	}
	if onlyDocs {
		return TypeDocs, 0.9
	}

	addedLines := addedDiffLines(diff)

	scores := make(map[CommitType]int)
	for commitType, keywords := range c.keywords {
		for _, keyword := range keywords {
			for _, line := range addedLines {
				if strings.Contains(line, keyword) {
					scores[commitType]++
				}
			}
		}
	}

	if hasAdded {
		scores[TypeFeat] += 5
	}
	if hasDeleted && !hasAdded {
		scores[TypeRefactor] += 2
	}

	best := TypeChore
	bestScore := 0
	for _, commitType := range typePriority {
		if scores[commitType] > bestScore {
			best = commitType
			bestScore = scores[commitType]
		}
	}

	if bestScore == 0 {
		return TypeChore, uncertainConfidence
	}

	return best, math.Min(float64(bestScore)/10, 1.0)
}

// generateDescription produces a short imperative description for the
// inferred type. Types without a dedicated template fall through to the
// filename-based default.
func (c *Classifier) generateDescription(files []ChangedFile, diff string, commitType CommitType) string {
	entities := extractEntities(diff)
	lower := strings.ToLower(diff)

	switch commitType {
	case TypeFeat:
		if len(entities) > 0 {
			return "add " + entities[0]
		}
	case TypeFix:
		if strings.Contains(lower, "null") && strings.Contains(lower, "check") {
			return "prevent null pointer exception"
		}
		if strings.Contains(lower, "error") {
			return "fix error handling"
		}
		return "fix bug"
	case TypeRefactor:
		if len(entities) > 0 {
			return "extract " + entities[0] + " logic"
		}
		return "restructure code"
	case TypePerf:
		if strings.Contains(lower, "cache") {
			return "add caching"
		}
		if strings.Contains(lower, "index") {
			return "optimize database queries"
		}
		return "improve performance"
	case TypeDocs:
		return "update documentation"
	case TypeTest:
		if len(entities) > 0 {
			return "add tests for " + entities[0]
		}
		return "add tests"
	}

	action := "update"
	for _, file := range files {
		if file.Status == StatusAdded {
			action = "add"
			break
		}
	}

	if len(files) == 1 {
		base := filepath.Base(files[0].Path)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		return action + " " + stem
	}
	return fmt.Sprintf("%s %d files", action, len(files))
}

// detectBreaking scans the diff for breaking change indicators.
func detectBreaking(diff string) (bool, string) {
	lower := strings.ToLower(diff)

	var removedLines []string
	for _, line := range strings.Split(lower, "\n") {
		if strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---") {
			removedLines = append(removedLines, line)
		}
	}

	for _, indicator := range breakingIndicators {
		if indicator.marker != "" {
			if strings.Contains(lower, indicator.marker) {
				return true, indicator.reason
			}
			continue
		}
		for _, line := range removedLines {
			if strings.Contains(line, indicator.removedLine) {
				return true, indicator.reason
			}
		}
	}

	return false, ""
}

// extractEntities collects up to three identifier names per entity pattern
// from added diff lines, in pattern order.
func extractEntities(diff string) []string {
	var entities []string
	for _, pattern := range entityPatterns {
		matches := pattern.FindAllStringSubmatch(diff, -1)
		for i, match := range matches {
			if i == 3 {
				break
			}
			entities = append(entities, match[1])
		}
	}
	return entities
}

// addedDiffLines returns the lowercased added lines of a unified diff,
// excluding the +++ file header lines.
func addedDiffLines(diff string) []string {
	var added []string
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			added = append(added, strings.ToLower(line))
		}
	}
	return added
}

func isDocFile(path string) bool {
	return strings.HasSuffix(path, ".md") ||
		strings.HasSuffix(path, ".txt") ||
		strings.HasSuffix(path, ".rst")
}
