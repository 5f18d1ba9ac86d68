// Package git wraps the git CLI for the commands commitsmith needs: staged
// change inspection, history reading, tag lookup, and committing.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/emt/commitsmith/pkg/classifier"
)

// logEnd separates commit messages in the log stream. Commit bodies are
// multi-line, so a plain newline split is not enough.
const logEnd = "---END---"

// Commit is a raw commit from git log.
type Commit struct {
	Hash    string
	Message string
}

// StagedChanges describes the currently staged work.
type StagedChanges struct {
	Files []classifier.ChangedFile
	Diff  string
	Stat  string
}

// Empty reports whether nothing is staged.
func (s *StagedChanges) Empty() bool {
	return len(s.Files) == 0 && s.Diff == ""
}

// Client runs git commands in a repository directory.
type Client struct {
	Dir string
}

// New creates a client for the given directory. An empty dir uses the
// process working directory.
func New(dir string) *Client {
	return &Client{Dir: dir}
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.Dir

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("git %s: %s", args[0], strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return string(output), nil
}

// Root returns the repository top-level directory, failing when the
// directory is not inside a git work tree.
func (c *Client) Root(ctx context.Context) (string, error) {
	output, err := c.run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %w", err)
	}
	return strings.TrimSpace(output), nil
}

// Staged returns the staged files, the unified diff, and the diffstat. An
// empty staging area yields an empty result, not an error.
func (c *Client) Staged(ctx context.Context) (*StagedChanges, error) {
	nameStatus, err := c.run(ctx, "diff", "--staged", "--name-status")
	if err != nil {
		return nil, err
	}

	diff, err := c.run(ctx, "diff", "--staged")
	if err != nil {
		return nil, err
	}

	stat, err := c.run(ctx, "diff", "--staged", "--stat")
	if err != nil {
		return nil, err
	}

	return &StagedChanges{
		Files: parseNameStatus(nameStatus),
		Diff:  diff,
		Stat:  strings.TrimRight(stat, "\n"),
	}, nil
}

// Subjects returns commit subject lines, newest first, optionally limited
// to fromRef..HEAD.
func (c *Client) Subjects(ctx context.Context, fromRef string) ([]string, error) {
	args := []string{"log", "--format=%s"}
	if fromRef != "" {
		args = append(args, fromRef+"..HEAD")
	}

	output, err := c.run(ctx, args...)
	if err != nil {
		return nil, err
	}

	var subjects []string
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			subjects = append(subjects, line)
		}
	}
	return subjects, nil
}

// Messages returns full commit messages with hashes, newest first,
// optionally limited to fromRef..HEAD.
func (c *Client) Messages(ctx context.Context, fromRef string) ([]Commit, error) {
	args := []string{"log", "--format=%H%n%B%n" + logEnd}
	if fromRef != "" {
		args = append(args, fromRef+"..HEAD")
	}

	output, err := c.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return parseLog(output), nil
}

// LatestTag returns the most recent reachable tag, or empty when the
// repository has no tags.
func (c *Client) LatestTag(ctx context.Context) string {
	output, err := c.run(ctx, "describe", "--tags", "--abbrev=0")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(output)
}

// Commit creates a commit with the given message.
func (c *Client) Commit(ctx context.Context, message string) error {
	_, err := c.run(ctx, "commit", "-m", message)
	return err
}

// parseNameStatus parses `git diff --name-status` output. Rename and copy
// statuses carry a similarity score and two paths; they are treated as
// modifications of the destination path.
func parseNameStatus(output string) []classifier.ChangedFile {
	var files []classifier.ChangedFile
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.Split(line, "\t")
		status := classifier.StatusModified
		switch {
		case strings.HasPrefix(parts[0], "A"):
			status = classifier.StatusAdded
		case strings.HasPrefix(parts[0], "D"):
			status = classifier.StatusDeleted
		}

		path := ""
		if len(parts) > 1 {
			path = parts[len(parts)-1]
		}
		files = append(files, classifier.ChangedFile{Path: path, Status: status})
	}
	return files
}

// parseLog splits the sentinel-delimited log stream into commits.
func parseLog(output string) []Commit {
	var commits []Commit
	var hash string
	var message []string

	for _, line := range strings.Split(output, "\n") {
		switch {
		case hash == "":
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				hash = trimmed
			}
		case line == logEnd:
			commits = append(commits, Commit{
				Hash:    hash,
				Message: strings.TrimRight(strings.Join(message, "\n"), "\n"),
			})
			hash = ""
			message = nil
		default:
			message = append(message, line)
		}
	}
	return commits
}
