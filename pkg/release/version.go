// Package release computes the next semantic version from conventional
// commit history.
package release

import (
	"fmt"
	"regexp"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// BumpType is the semver component a release should bump.
type BumpType string

const (
	BumpMajor BumpType = "major"
	BumpMinor BumpType = "minor"
	BumpPatch BumpType = "patch"
)

var typePrefixRe = regexp.MustCompile(`^(\w+)(?:\([^)]+\))?:\s*`)

// Analysis buckets commit subjects by their release impact.
type Analysis struct {
	Breaking []string
	Features []string
	Fixes    []string
	Other    []string
}

// Analyze classifies commit subjects. A subject is breaking when a `!`
// appears before the `:` separator; otherwise the conventional type prefix
// decides the bucket.
func Analyze(subjects []string) *Analysis {
	a := &Analysis{}
	for _, subject := range subjects {
		a.classify(subject)
	}
	return a
}

func (a *Analysis) classify(subject string) {
	bang := strings.Index(subject, "!")
	colon := strings.Index(subject, ":")
	if bang >= 0 && colon >= 0 && bang < colon {
		a.Breaking = append(a.Breaking, subject)
		return
	}

	match := typePrefixRe.FindStringSubmatch(subject)
	if match == nil {
		a.Other = append(a.Other, subject)
		return
	}

	switch match[1] {
	case "feat":
		a.Features = append(a.Features, subject)
	case "fix":
		a.Fixes = append(a.Fixes, subject)
	default:
		a.Other = append(a.Other, subject)
	}
}

// BumpType returns the required bump and a human-readable reason. Breaking
// changes force a major bump; features or fixes a minor bump; anything else
// a patch bump.
func (a *Analysis) BumpType() (BumpType, string) {
	if len(a.Breaking) > 0 {
		return BumpMajor, fmt.Sprintf("%d breaking change(s)", len(a.Breaking))
	}

	if len(a.Features) > 0 || len(a.Fixes) > 0 {
		var parts []string
		if len(a.Features) > 0 {
			parts = append(parts, fmt.Sprintf("%d feature(s)", len(a.Features)))
		}
		if len(a.Fixes) > 0 {
			parts = append(parts, fmt.Sprintf("%d fix(es)", len(a.Fixes)))
		}
		return BumpMinor, strings.Join(parts, ", ")
	}

	return BumpPatch, fmt.Sprintf("%d other change(s)", len(a.Other))
}

// NextVersion applies the bump to the current version.
func (a *Analysis) NextVersion(current *goversion.Version) (*goversion.Version, BumpType, string) {
	bump, reason := a.BumpType()

	segments := current.Segments()
	major, minor, patch := segments[0], segments[1], segments[2]

	switch bump {
	case BumpMajor:
		major, minor, patch = major+1, 0, 0
	case BumpMinor:
		minor, patch = minor+1, 0
	case BumpPatch:
		patch++
	}

	next := goversion.Must(goversion.NewVersion(fmt.Sprintf("%d.%d.%d", major, minor, patch)))
	return next, bump, reason
}
