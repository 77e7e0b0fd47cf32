// Package semver wraps the version arithmetic used for release tags.
package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	gosemver "github.com/coreos/go-semver/semver"
)

// TagPrefix prefix of release tag names.
const TagPrefix = "v"

// ErrMalformedVersion is returned when a version string is not exactly three
// dot-separated non-negative integers.
var ErrMalformedVersion = errors.New("malformed version")

// plain major.minor.patch, no pre-release or build metadata
var plain = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Version a released version.
type Version struct {
	Major int64
	Minor int64
	Patch int64
}

// Parse parse the given text as major.minor.patch.
func Parse(text string) (Version, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, TagPrefix)
	if !plain.MatchString(text) {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersion, text)
	}
	v, err := gosemver.NewVersion(text)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: %v", ErrMalformedVersion, text, err)
	}
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}, nil
}

// Next the next patch version, major and minor unchanged.
func Next(v Version) Version {
	sv := v.core()
	sv.BumpPatch()
	return Version{Major: sv.Major, Minor: sv.Minor, Patch: sv.Patch}
}

// Less reports whether v orders before o.
func Less(v, o Version) bool {
	return v.core().LessThan(*o.core())
}

// String the canonical major.minor.patch form.
func (v Version) String() string {
	return v.core().String()
}

// Tag the release tag name for v.
func (v Version) Tag() string {
	return TagPrefix + v.String()
}

func (v Version) core() *gosemver.Version {
	return &gosemver.Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}
}
