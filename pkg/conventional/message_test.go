package conventional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name     string
		message  string
		ok       bool
		expected Message
	}{
		{
			name:    "full header",
			message: "feat(auth)!: add login",
			ok:      true,
			expected: Message{
				Type: "feat", Scope: "auth", Breaking: true, Description: "add login",
			},
		},
		{
			name:     "no scope",
			message:  "fix: handle empty input",
			ok:       true,
			expected: Message{Type: "fix", Description: "handle empty input"},
		},
		{
			name:    "breaking change in body",
			message: "feat: new api\n\nBREAKING CHANGE: removes v1",
			ok:      true,
			expected: Message{
				Type: "feat", Breaking: true, Description: "new api",
			},
		},
		{
			name:    "not conventional",
			message: "updated some stuff",
			ok:      false,
		},
		{
			name:    "missing description",
			message: "feat:",
			ok:      false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg, ok := Parse(tc.message)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, msg)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "feat(auth)!: add login",
		Message{Type: "feat", Scope: "auth", Breaking: true, Description: "add login"}.Format())
	assert.Equal(t, "chore: update 3 files",
		Message{Type: "chore", Description: "update 3 files"}.Format())
}

func TestValidate_Accepts(t *testing.T) {
	valid := []string{
		"feat: add feature",
		"feat(auth): add login",
		"fix(api-v2)!: drop legacy params",
		"chore: init",
		"Merge branch 'main' into feature",
		"Revert \"feat: add feature\"",
		"docs: update readme\n\nLonger body text here.",
	}

	for _, message := range valid {
		assert.NoError(t, Validate(message), "message: %s", message)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name    string
		message string
	}{
		{"unknown type", "feature: add login"},
		{"missing colon", "feat add login"},
		{"uppercase scope", "feat(Auth): add login"},
		{"no space after colon", "feat:add login"},
		{"uppercase description", "feat: Add login"},
		{"trailing period", "feat: add login."},
		{"empty description", "feat: "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, Validate(tc.message))
		})
	}
}
