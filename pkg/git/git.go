// Package git wraps the source-control operations of the release pipeline.
package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Change a pending working-tree change from git status.
type Change struct {
	Code string
	Path string
}

// Gateway the source-control operations used by the release pipeline.
type Gateway interface {
	Status(ctx context.Context) ([]Change, error)
	CurrentBranch(ctx context.Context) (string, error)
	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	PushBranch(ctx context.Context, branch string) error
	CreateTag(ctx context.Context, name string) error
	PushTag(ctx context.Context, name string) error
	DeleteLocalTag(ctx context.Context, name string) error
}

// CLI a Gateway backed by the git command line tool.
type CLI struct {
	dir    string
	remote string
}

// New create a CLI gateway for the repository at dir, pushing to the given
// remote.
func New(dir, remote string) (*CLI, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	cmd := exec.Command("git", "-C", absDir, "rev-parse", "--git-dir")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("not a git repository: %s", absDir)
	}
	return &CLI{dir: absDir, remote: remote}, nil
}

// Status list pending working-tree changes.
func (g *CLI) Status(ctx context.Context) ([]Change, error) {
	out, err := g.run(ctx, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parsePorcelain(string(out)), nil
}

// CurrentBranch the name of the checked-out branch.
func (g *CLI) CurrentBranch(ctx context.Context) (string, error) {
	out, err := g.run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// StageAll stage all pending local changes. Running it with nothing to stage
// is a no-op.
func (g *CLI) StageAll(ctx context.Context) error {
	if _, err := g.run(ctx, "add", "--all"); err != nil {
		return err
	}
	return nil
}

// Commit commit the staged changes. An empty index is treated as success,
// matching the "nothing to commit" outcome.
func (g *CLI) Commit(ctx context.Context, message string) error {
	out, err := g.run(ctx, "commit", "-m", message)
	if err != nil && strings.Contains(strings.ToLower(string(out)), "nothing to commit") {
		return nil
	}
	return err
}

// PushBranch push the given branch to the remote.
func (g *CLI) PushBranch(ctx context.Context, branch string) error {
	_, err := g.run(ctx, "push", g.remote, branch)
	if err != nil {
		return err
	}
	return nil
}

// CreateTag create a lightweight local tag.
func (g *CLI) CreateTag(ctx context.Context, name string) error {
	_, err := g.run(ctx, "tag", name)
	if err != nil {
		return err
	}
	return nil
}

// PushTag push the given tag to the remote.
func (g *CLI) PushTag(ctx context.Context, name string) error {
	_, err := g.run(ctx, "push", g.remote, name)
	if err != nil {
		return err
	}
	return nil
}

// DeleteLocalTag delete a local tag. The remote is never touched.
func (g *CLI) DeleteLocalTag(ctx context.Context, name string) error {
	_, err := g.run(ctx, "tag", "-d", name)
	if err != nil {
		return err
	}
	return nil
}

func (g *CLI) run(ctx context.Context, args ...string) ([]byte, error) {
	all := append([]string{"-C", g.dir}, args...)
	cmd := exec.CommandContext(ctx, "git", all...)
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return out, newError(args[0], out, err)
	}
	return out, nil
}

func parsePorcelain(out string) []Change {
	var changes []Change
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		changes = append(changes, Change{
			Code: strings.TrimSpace(line[:2]),
			Path: strings.TrimSpace(line[3:]),
		})
	}
	return changes
}
