package git

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failed remote or tag operation.
type Kind string

const (
	// KindRejected the remote refused the push because its history diverged.
	KindRejected = Kind("rejected")
	// KindNetwork the remote could not be reached.
	KindNetwork = Kind("network")
	// KindAuth the remote refused the credentials.
	KindAuth = Kind("auth")
	// KindTagExists the tag name is already taken locally.
	KindTagExists = Kind("tag-exists")
	// KindUnknown none of the known failure patterns matched.
	KindUnknown = Kind("unknown")
)

// Error a failed git operation with the tool diagnostic attached.
type Error struct {
	Op         string
	Kind       Kind
	Diagnostic string
	Err        error
}

// Error implements error.
func (e *Error) Error() string {
	if e.Diagnostic != "" {
		return fmt.Sprintf("git %s failed (%s): %s", e.Op, e.Kind, e.Diagnostic)
	}
	return fmt.Sprintf("git %s failed (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap the underlying exec error.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a git Error of the given kind.
func IsKind(err error, k Kind) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Kind == k
}

func classify(output string) Kind {
	out := strings.ToLower(output)
	switch {
	case strings.Contains(out, "already exists"):
		return KindTagExists
	case strings.Contains(out, "non-fast-forward"),
		strings.Contains(out, "[rejected]"),
		strings.Contains(out, "fetch first"):
		return KindRejected
	case strings.Contains(out, "authentication failed"),
		strings.Contains(out, "permission denied"),
		strings.Contains(out, "could not read username"),
		strings.Contains(out, "403"):
		return KindAuth
	case strings.Contains(out, "could not resolve host"),
		strings.Contains(out, "unable to access"),
		strings.Contains(out, "could not read from remote"),
		strings.Contains(out, "connection"),
		strings.Contains(out, "timed out"):
		return KindNetwork
	}
	return KindUnknown
}

func newError(op string, output []byte, err error) *Error {
	diag := strings.TrimSpace(string(output))
	return &Error{
		Op:         op,
		Kind:       classify(diag),
		Diagnostic: diag,
		Err:        err,
	}
}
