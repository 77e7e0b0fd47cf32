// Package release drives the end-to-end release pipeline: stage, commit, push,
// compute the next version, tag, push the tag and persist the released
// version. The run is all-or-nothing; the only compensated side effect is
// local tag creation.
package release

import (
	"context"
	"fmt"
	"strings"

	"github.com/bakito/releaser/pkg/git"
	"github.com/bakito/releaser/pkg/log"
	"github.com/bakito/releaser/pkg/semver"
	"github.com/bakito/releaser/pkg/store"
)

// DefaultMessage commit message used when the caller supplies none.
const DefaultMessage = "Routine update"

// Prompter supplies the caller decisions the pipeline cannot derive itself.
// The interactive implementation lives in pkg/prompt; tests inject fakes.
type Prompter interface {
	// ConfirmRelease asks whether to cut a release after the branch push.
	ConfirmRelease() (bool, error)
	// ReadVersion offers the computed candidate and returns the version to
	// use, which may be the candidate itself.
	ReadVersion(proposed semver.Version) (semver.Version, error)
	// FirstVersion asks for an explicit starting version when no version
	// record exists yet.
	FirstVersion() (semver.Version, error)
}

// Options caller inputs for one run. Nil pointer fields fall back to the
// Prompter.
type Options struct {
	// Message the commit message; empty is replaced with DefaultMessage.
	Message string
	// Branch the branch to push; empty means the checked-out branch.
	Branch string
	// Release decides the tagging step; nil asks the Prompter.
	Release *bool
	// Override is used verbatim instead of the computed candidate.
	Override *semver.Version
	// First the starting version for the very first release.
	First *semver.Version
}

// Result the outcome of one run.
type Result struct {
	// State the terminal state of the run.
	State State
	// Released true when a tag was pushed and the version persisted.
	Released bool
	// Version the released version; zero unless Released.
	Version semver.Version
	// Err the primary abort reason.
	Err error
	// CleanupErr a secondary diagnostic from best-effort tag cleanup. It
	// never replaces Err.
	CleanupErr error
}

// Orchestrator sequences one release run.
type Orchestrator struct {
	gw     git.Gateway
	store  *store.Store
	prompt Prompter
	l      log.YALI
}

// New create an orchestrator.
func New(gw git.Gateway, s *store.Store, prompt Prompter, l log.YALI) *Orchestrator {
	return &Orchestrator{
		gw:     gw,
		store:  s,
		prompt: prompt,
		l:      l,
	}
}

// Run execute the pipeline. A run that declines the release after a
// successful push ends at StatePushed with no error and no version change.
// The version record is only ever written after the tag push is confirmed.
func (o *Orchestrator) Run(ctx context.Context, opts Options) (*Result, error) {
	run := &Result{State: StateClean}

	if err := o.gw.StageAll(ctx); err != nil {
		return o.abort(run, fmt.Errorf("stage changes: %w", err))
	}
	o.advance(run, StateStaged)

	message := strings.TrimSpace(opts.Message)
	if message == "" {
		message = DefaultMessage
	}
	if err := o.gw.Commit(ctx, message); err != nil {
		return o.abort(run, fmt.Errorf("commit: %w", err))
	}
	o.advance(run, StateCommitted)

	branch := opts.Branch
	if branch == "" {
		var err error
		if branch, err = o.gw.CurrentBranch(ctx); err != nil {
			return o.abort(run, fmt.Errorf("resolve branch: %w", err))
		}
	}
	if err := o.gw.PushBranch(ctx, branch); err != nil {
		return o.abort(run, fmt.Errorf("push %s: %w", branch, err))
	}
	o.advance(run, StatePushed)
	o.l.Checkf("pushed %s\n", branch)

	proceed, err := o.decideRelease(opts)
	if err != nil {
		return o.abort(run, err)
	}
	if !proceed {
		o.l.Printf("release declined, done after push\n")
		return run, nil
	}

	version, err := o.candidate(opts)
	if err != nil {
		return o.abort(run, err)
	}
	o.advance(run, StateVersionComputed)
	run.Version = version

	tag := version.Tag()
	if err := o.gw.CreateTag(ctx, tag); err != nil {
		o.deleteTag(ctx, run, tag)
		return o.abort(run, fmt.Errorf("create tag %s: %w", tag, err))
	}
	o.advance(run, StateTagged)

	if err := o.gw.PushTag(ctx, tag); err != nil {
		o.deleteTag(ctx, run, tag)
		return o.abort(run, fmt.Errorf("push tag %s: %w", tag, err))
	}
	o.advance(run, StateTagPushed)
	o.l.Checkf("pushed tag %s\n", tag)

	if err := o.store.Save(version); err != nil {
		return o.abort(run, fmt.Errorf("persist version %s: %w", version, err))
	}
	o.advance(run, StatePersisted)
	run.Released = true
	o.l.Checkf("released %s\n", version)
	return run, nil
}

func (o *Orchestrator) decideRelease(opts Options) (bool, error) {
	if opts.Release != nil {
		return *opts.Release, nil
	}
	return o.prompt.ConfirmRelease()
}

// candidate fixes the version to release. An explicit override always wins
// over the computed default.
func (o *Orchestrator) candidate(opts Options) (semver.Version, error) {
	if opts.Override != nil {
		return *opts.Override, nil
	}
	current, found, err := o.store.Load()
	if err != nil {
		return semver.Version{}, err
	}
	if !found {
		if opts.First != nil {
			return *opts.First, nil
		}
		return o.prompt.FirstVersion()
	}
	next := semver.Next(current)
	if opts.Release != nil {
		// non-interactive run, take the computed candidate as is
		return next, nil
	}
	return o.prompt.ReadVersion(next)
}

// deleteTag best-effort cleanup of the local tag. Its failure is recorded as
// a secondary diagnostic and logged, never escalated.
func (o *Orchestrator) deleteTag(ctx context.Context, run *Result, tag string) {
	if err := o.gw.DeleteLocalTag(ctx, tag); err != nil {
		run.CleanupErr = err
		o.l.Warnf("could not delete local tag %s: %v\n", tag, err)
	}
}

func (o *Orchestrator) advance(run *Result, to State) {
	if !run.State.CanTransition(to) {
		panic(fmt.Sprintf("illegal release transition %s -> %s", run.State, to))
	}
	run.State = to
}

func (o *Orchestrator) abort(run *Result, err error) (*Result, error) {
	o.advance(run, StateAborted)
	run.Err = err
	return run, err
}
