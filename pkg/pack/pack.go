// Package pack produces the distributable installer archive from a staging
// tree and the install-time bootstrap script.
package pack

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bakito/releaser/pkg/log"
	"github.com/bakito/releaser/pkg/semver"
	"github.com/bakito/releaser/pkg/types"
)

// bootstrapName name of the bootstrap script inside the installer.
const bootstrapName = "setup.py"

// Packager assembles the installer artifact.
type Packager struct {
	config *types.Config
	l      log.YALI
}

// New create a packager.
func New(config *types.Config) (*Packager, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Packager{
		config: config,
		l:      config.Logger(),
	}, nil
}

// Package zip the staging tree plus the bootstrap script into the installer
// archive and return its path. The whole step is all or nothing: a partial
// archive is removed on failure.
func (p *Packager) Package(version semver.Version, staging string) (string, error) {
	if _, err := os.Stat(staging); err != nil {
		return "", fmt.Errorf("staging tree: %w", err)
	}
	name, err := p.config.InstallerName(version)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(p.config.Package.Target, 0o755); err != nil {
		return "", err
	}
	artifact := filepath.Join(p.config.Package.Target, name)

	p.l.Printf("creating installer %s\n", artifact)
	if err := p.write(artifact, staging); err != nil {
		_ = os.Remove(artifact)
		return "", err
	}
	p.l.Checkf("created installer %s\n", artifact)
	return artifact, nil
}

func (p *Packager) write(artifact, staging string) error {
	out, err := os.Create(artifact)
	if err != nil {
		return err
	}
	defer closeIgnoreError(out)()

	w := zip.NewWriter(out)
	defer closeIgnoreError(w)()

	walker := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(staging, path)
		if err != nil {
			return err
		}
		return addFile(w, path, filepath.ToSlash(rel))
	}
	if err := filepath.Walk(staging, walker); err != nil {
		return err
	}

	if p.config.Package.Bootstrap != "" {
		if err := addFile(w, p.config.Package.Bootstrap, bootstrapName); err != nil {
			return fmt.Errorf("bootstrap script: %w", err)
		}
	}
	return w.Close()
}

func addFile(w *zip.Writer, path, name string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer closeIgnoreError(file)()

	f, err := w.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(f, file)
	return err
}

func closeIgnoreError(f io.Closer) func() {
	return func() {
		_ = f.Close()
	}
}
