package classifier

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if len(config.Scopes) != 10 {
		t.Errorf("Expected 10 scope rules, got %d", len(config.Scopes))
	}

	// The auth rule must come first: rule order is the documented priority
	if config.Scopes[0].Scope != "auth" {
		t.Errorf("Expected first scope rule to be 'auth', got '%s'", config.Scopes[0].Scope)
	}

	for _, commitType := range []CommitType{
		TypeFeat, TypeFix, TypeRefactor, TypePerf,
		TypeStyle, TypeTest, TypeDocs, TypeBuild,
	} {
		if len(config.Keywords[commitType]) == 0 {
			t.Errorf("Expected keywords for type %s", commitType)
		}
	}

	// chore has no keywords: it is the scoreless default, not a candidate
	if len(config.Keywords[TypeChore]) != 0 {
		t.Errorf("Expected no keywords for chore, got %v", config.Keywords[TypeChore])
	}
}

func TestNew_InvalidPattern(t *testing.T) {
	config := &Config{
		Scopes: []ScopeRule{{Pattern: "([", Scope: "broken"}},
	}

	if _, err := New(config); err == nil {
		t.Error("Expected an error for an invalid scope pattern")
	}
}

func TestLoadConfig(t *testing.T) {
	content := `scopes:
  - pattern: ".*/billing/"
    scope: billing
keywords:
  fix:
    - hotfix
`
	path := filepath.Join(t.TempDir(), "commitsmith.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	// Provided scopes replace the defaults
	if len(config.Scopes) != 1 || config.Scopes[0].Scope != "billing" {
		t.Errorf("Expected scopes to be replaced, got %v", config.Scopes)
	}

	// Provided keyword lists replace only their own type
	if len(config.Keywords[TypeFix]) != 1 || config.Keywords[TypeFix][0] != "hotfix" {
		t.Errorf("Expected fix keywords to be overridden, got %v", config.Keywords[TypeFix])
	}
	if len(config.Keywords[TypeFeat]) == 0 {
		t.Error("Expected default feat keywords to be preserved")
	}

	c, err := New(config)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	files := []ChangedFile{{Path: "internal/billing/invoice.go", Status: StatusModified}}
	if scope := c.inferScope(files); scope != "billing" {
		t.Errorf("Expected 'billing' from custom rule, got '%s'", scope)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected an error for a missing config file")
	}
}
