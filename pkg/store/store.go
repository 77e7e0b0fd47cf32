// Package store owns the persisted version record.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bakito/releaser/pkg/semver"
)

// DefaultFileName default name of the version record beside the project root.
const DefaultFileName = "version.txt"

// ErrCorruptState is returned when the on-disk record exists but does not hold
// a valid version.
var ErrCorruptState = errors.New("corrupt version record")

// Store reads and writes the single persisted version record.
type Store struct {
	path string
}

// New create a store for the record at the given path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path the location of the record.
func (s *Store) Path() string {
	return s.path
}

// Load read the persisted version. The second return value is false when no
// record exists yet; a record with unparsable content fails with
// ErrCorruptState, it is never guessed around.
func (s *Store) Load() (semver.Version, bool, error) {
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return semver.Version{}, false, nil
	}
	if err != nil {
		return semver.Version{}, false, err
	}
	v, err := semver.Parse(string(b))
	if err != nil {
		return semver.Version{}, false, fmt.Errorf("%w: %s: %v", ErrCorruptState, s.path, err)
	}
	return v, true, nil
}

// Save overwrite the record with the given version. The new value is written
// to a temp file in the same directory and renamed over the record, so a crash
// mid-write never leaves a truncated value behind.
func (s *Store) Save(v semver.Version) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.WriteString(v.String() + "\n"); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
