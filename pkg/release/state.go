package release

// State of a single release run. The pipeline only ever moves forward; Aborted
// is reachable from every non-terminal state.
type State string

const (
	// StateClean nothing has happened yet.
	StateClean = State("Clean")
	// StateStaged all pending changes are staged.
	StateStaged = State("Staged")
	// StateCommitted the staged changes are committed.
	StateCommitted = State("Committed")
	// StatePushed the branch is pushed to the remote.
	StatePushed = State("Pushed")
	// StateVersionComputed the candidate version is fixed.
	StateVersionComputed = State("VersionComputed")
	// StateTagged the local release tag exists.
	StateTagged = State("Tagged")
	// StateTagPushed the release tag is confirmed on the remote.
	StateTagPushed = State("TagPushed")
	// StatePersisted the version record is updated.
	StatePersisted = State("Persisted")
	// StateAborted the run stopped with an error.
	StateAborted = State("Aborted")
)

var transitions = map[State]State{
	StateClean:           StateStaged,
	StateStaged:          StateCommitted,
	StateCommitted:       StatePushed,
	StatePushed:          StateVersionComputed,
	StateVersionComputed: StateTagged,
	StateTagged:          StateTagPushed,
	StateTagPushed:       StatePersisted,
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StatePersisted || s == StateAborted
}

// CanTransition reports whether moving from s to the given state is legal.
func (s State) CanTransition(to State) bool {
	if s.Terminal() {
		return false
	}
	if to == StateAborted {
		return true
	}
	return transitions[s] == to
}
