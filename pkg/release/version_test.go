package release

import (
	"testing"

	goversion "github.com/hashicorp/go-version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_Buckets(t *testing.T) {
	a := Analyze([]string{
		"feat(api)!: drop v1 endpoints",
		"feat: add login",
		"fix(auth): handle empty token",
		"chore: tidy up",
		"not a conventional commit",
	})

	assert.Equal(t, []string{"feat(api)!: drop v1 endpoints"}, a.Breaking)
	assert.Equal(t, []string{"feat: add login"}, a.Features)
	assert.Equal(t, []string{"fix(auth): handle empty token"}, a.Fixes)
	assert.Equal(t, []string{"chore: tidy up", "not a conventional commit"}, a.Other)
}

func TestBumpType(t *testing.T) {
	cases := []struct {
		name     string
		subjects []string
		bump     BumpType
	}{
		{"breaking wins", []string{"feat!: drop api", "feat: add x", "fix: y"}, BumpMajor},
		{"feature is minor", []string{"feat: add x", "chore: z"}, BumpMinor},
		{"fix is minor", []string{"fix: y"}, BumpMinor},
		{"chores are patch", []string{"chore: z", "docs: readme"}, BumpPatch},
		{"nothing is patch", nil, BumpPatch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bump, reason := Analyze(tc.subjects).BumpType()
			assert.Equal(t, tc.bump, bump)
			assert.NotEmpty(t, reason)
		})
	}
}

func TestNextVersion(t *testing.T) {
	cases := []struct {
		name     string
		current  string
		subjects []string
		expected string
	}{
		{"major resets minor and patch", "1.2.3", []string{"feat!: drop api"}, "2.0.0"},
		{"minor resets patch", "1.2.3", []string{"feat: add x"}, "1.3.0"},
		{"patch increments", "1.2.3", []string{"chore: z"}, "1.2.4"},
		{"v prefix accepted", "v0.4.1", []string{"fix: y"}, "0.5.0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			current, err := goversion.NewVersion(tc.current)
			require.NoError(t, err)

			next, _, _ := Analyze(tc.subjects).NextVersion(current)
			assert.Equal(t, tc.expected, next.String())
		})
	}
}
