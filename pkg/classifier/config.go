package classifier

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScopeRule maps a path pattern to a scope name. Rules are evaluated in
// order and the first matching rule wins for each file.
type ScopeRule struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	Scope   string `yaml:"scope" json:"scope"`
}

// Config holds the classification vocabularies. A Config is only read after
// construction; the classifier never mutates it.
type Config struct {
	Scopes   []ScopeRule             `yaml:"scopes" json:"scopes"`
	Keywords map[CommitType][]string `yaml:"keywords" json:"keywords"`
}

// DefaultConfig returns the built-in scope rules and type keyword sets.
func DefaultConfig() *Config {
	return &Config{
		Scopes: []ScopeRule{
			{Pattern: `.*/(auth|login|oauth)`, Scope: "auth"},
			{Pattern: `.*/(api|endpoints|routes)`, Scope: "api"},
			{Pattern: `.*/database|migrations`, Scope: "database"},
			{Pattern: `.*/tests?/`, Scope: "test"},
			{Pattern: `.*/(ui|components|views)`, Scope: "ui"},
			{Pattern: `.*/docs?/`, Scope: "docs"},
			{Pattern: `.*/(config|settings)`, Scope: "config"},
			{Pattern: `.*\.github/`, Scope: "ci"},
			{Pattern: `Dockerfile|docker-compose`, Scope: "docker"},
			{Pattern: `.*/(deploy|infra|terraform)`, Scope: "ops"},
		},
		Keywords: map[CommitType][]string{
			TypeFeat: {
				"add", "create", "implement", "introduce", "new",
				"class", "function", "feature", "endpoint", "component",
			},
			TypeFix: {
				"fix", "bug", "issue", "error", "crash", "correct",
				"resolve", "patch", "repair",
			},
			TypeRefactor: {
				"refactor", "restructure", "reorganize", "extract",
				"rename", "move", "cleanup", "simplify",
			},
			TypePerf: {
				"optimize", "performance", "faster", "speed", "cache",
				"index", "query", "efficient",
			},
			TypeStyle: {
				"format", "lint", "prettier", "whitespace", "indent",
			},
			TypeTest: {
				"test", "spec", "coverage", "mock", "fixture",
			},
			TypeDocs: {
				"readme", "documentation", "comment", "docstring",
			},
			TypeBuild: {
				"package.json", "requirements.txt", "dependencies",
				"dependency", "upgrade", "bump",
			},
		},
	}
}

// LoadConfig reads a YAML config file and merges it with the defaults.
// A provided scopes list replaces the default rules entirely (order matters);
// keyword lists are merged per type so a file can override a single
// vocabulary without restating the rest.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config := DefaultConfig()
	if len(loaded.Scopes) > 0 {
		config.Scopes = loaded.Scopes
	}
	for commitType, keywords := range loaded.Keywords {
		config.Keywords[commitType] = keywords
	}

	return config, nil
}
