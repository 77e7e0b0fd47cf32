// Package prompt implements the interactive caller inputs of the release
// pipeline. Prompts go to stderr so that command output stays scriptable.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/bakito/releaser/pkg/semver"
)

// Interactive reports whether stdin is attached to a terminal.
func Interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// Stdio a release.Prompter reading stdin and prompting on stderr.
type Stdio struct {
	in  *bufio.Reader
	out io.Writer
}

// New create a prompter on stdin/stderr.
func New() *Stdio {
	return NewWith(os.Stdin, os.Stderr)
}

// NewWith create a prompter on the given streams.
func NewWith(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{in: bufio.NewReader(in), out: out}
}

// ConfirmRelease ask whether to cut a release after the branch push.
func (p *Stdio) ConfirmRelease() (bool, error) {
	if _, err := fmt.Fprint(p.out, "Cut a release? [y/N] "); err != nil {
		return false, err
	}
	text, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(text) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// ReadVersion offer the computed candidate; an empty answer accepts it.
func (p *Stdio) ReadVersion(proposed semver.Version) (semver.Version, error) {
	if _, err := fmt.Fprintf(p.out, "Enter Release Version: [%s] ", proposed.Tag()); err != nil {
		return semver.Version{}, err
	}
	text, err := p.readLine()
	if err != nil {
		return semver.Version{}, err
	}
	if text == "" {
		return proposed, nil
	}
	return semver.Parse(text)
}

// FirstVersion ask for an explicit starting version; there is no default to
// fall back to.
func (p *Stdio) FirstVersion() (semver.Version, error) {
	if _, err := fmt.Fprint(p.out, "No version recorded yet. Enter the starting version: "); err != nil {
		return semver.Version{}, err
	}
	text, err := p.readLine()
	if err != nil {
		return semver.Version{}, err
	}
	return semver.Parse(text)
}

func (p *Stdio) readLine() (string, error) {
	text, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
