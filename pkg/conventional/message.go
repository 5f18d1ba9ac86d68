// Package conventional implements the conventional commit message grammar:
// parsing, formatting, and validation of `type(scope)!: description`
// headers.
package conventional

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// ValidTypes are the commit types accepted by Validate. The list includes
// "ops", which the classifier never emits but commit authors may use.
var ValidTypes = []string{
	"feat", "fix", "refactor", "perf", "style",
	"test", "docs", "build", "ops", "chore",
}

var (
	headerRe = regexp.MustCompile(`^(\w+)(?:\(([^)]+)\))?(!)?:\s*(.+)$`)
	validRe  = regexp.MustCompile(
		`^(feat|fix|refactor|perf|style|test|docs|build|ops|chore)` +
			`(\([a-z0-9-]+\))?` +
			`!?` +
			`: ` +
			`.{1,100}$`)
)

// Message is a parsed conventional commit header.
type Message struct {
	Type        string
	Scope       string
	Breaking    bool
	Description string
}

// Format renders the message as a conventional commit header.
func (m Message) Format() string {
	var b strings.Builder
	b.WriteString(m.Type)
	if m.Scope != "" {
		b.WriteString("(")
		b.WriteString(m.Scope)
		b.WriteString(")")
	}
	if m.Breaking {
		b.WriteString("!")
	}
	b.WriteString(": ")
	b.WriteString(m.Description)
	return b.String()
}

// Parse extracts the conventional commit components from a full commit
// message. The header is the first line; a `BREAKING CHANGE:` marker in the
// body also sets the breaking flag. The second return value is false when
// the header does not follow the conventional format.
func Parse(message string) (Message, bool) {
	header, _, _ := strings.Cut(message, "\n")

	match := headerRe.FindStringSubmatch(header)
	if match == nil {
		return Message{}, false
	}

	msg := Message{
		Type:        match[1],
		Scope:       match[2],
		Breaking:    match[3] == "!",
		Description: match[4],
	}
	if strings.Contains(message, "BREAKING CHANGE:") {
		msg.Breaking = true
	}
	return msg, true
}

// Validate checks a commit message against the conventional format and
// returns a descriptive error when it does not conform. Merge and revert
// commits and the initial `chore: init` commit are always accepted.
func Validate(message string) error {
	header, _, _ := strings.Cut(strings.TrimSpace(message), "\n")

	if strings.HasPrefix(header, "Merge branch") ||
		strings.HasPrefix(header, "Revert") ||
		header == "chore: init" {
		return nil
	}

	if !validRe.MatchString(header) {
		return fmt.Errorf(
			"invalid format: %s\n\n"+
				"Expected: <type>(<scope>): <description>\n"+
				"Example:  feat(auth): add login\n\n"+
				"Valid types: %s",
			header, strings.Join(ValidTypes, ", "))
	}

	_, description, _ := strings.Cut(header, ": ")

	if unicode.IsUpper([]rune(description)[0]) {
		return fmt.Errorf("description should start with lowercase")
	}
	if strings.HasSuffix(description, ".") {
		return fmt.Errorf("description should not end with period")
	}

	return nil
}
