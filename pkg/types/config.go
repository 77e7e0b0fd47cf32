// Package types holds the releaser configuration.
package types

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig"

	"github.com/bakito/releaser/pkg/log"
	"github.com/bakito/releaser/pkg/semver"
)

// EnvS3Secret environment variable carrying the storage secret key.
const EnvS3Secret = "RELEASER_S3_SECRET"

const (
	// DefaultBranch default branch to push.
	DefaultBranch = "main"
	// DefaultRemote default remote name.
	DefaultRemote = "origin"
	// DefaultVersionFile default version record beside the project root.
	DefaultVersionFile = "version.txt"
	// DefaultStagingDir default build-root staging directory.
	DefaultStagingDir = "build-root"
	// DefaultDistDir default installer output directory.
	DefaultDistDir = "dist"
	// DefaultInstallerNameTemplate default name of the installer artifact.
	DefaultInstallerNameTemplate = `{{.Name}}-setup-{{.Version}}.zip`
	// DefaultUpdateIntervalHours default hours between update checks.
	DefaultUpdateIntervalHours = 24
)

// NewConfig create a new config.
func NewConfig() *Config {
	return &Config{
		Branch:      DefaultBranch,
		Remote:      DefaultRemote,
		VersionFile: DefaultVersionFile,
		Assemble: Assemble{
			Target: DefaultStagingDir,
			Worker: 1,
		},
		Package: Package{
			NameTemplate: DefaultInstallerNameTemplate,
			Target:       DefaultDistDir,
		},
		Update: Update{
			IntervalHours: DefaultUpdateIntervalHours,
		},
	}
}

// Config releaser config.
type Config struct {
	Name        string    `yaml:"name"`
	WorkDir     string    `yaml:"workDir"`
	Branch      string    `yaml:"branch"`
	Remote      string    `yaml:"remote"`
	VersionFile string    `yaml:"versionFile"`
	Quiet       bool      `yaml:"quiet"`
	Simple      bool      `yaml:"simple"`
	Assemble    Assemble  `yaml:"assemble"`
	Package     Package   `yaml:"package"`
	S3          *S3Config `yaml:"s3"`
	Update      Update    `yaml:"update"`

	log log.YALI
}

// Assemble build-root assembly params.
type Assemble struct {
	Paths      []string `yaml:"paths"`
	RuntimeURL string   `yaml:"runtimeURL"`
	Target     string   `yaml:"target"`
	Worker     int      `yaml:"worker"`
}

// Package installer packaging params.
type Package struct {
	NameTemplate string `yaml:"nameTemplate"`
	Bootstrap    string `yaml:"bootstrap"`
	Target       string `yaml:"target"`
}

// S3Config artifact upload params.
type S3Config struct {
	Endpoint        string `yaml:"endpoint"`
	Bucket          string `yaml:"bucket"`
	AccessKeyID     string `yaml:"accessKeyID"`
	SecretAccessKey string `yaml:"secretAccessKey"`
	Token           string `yaml:"token"`
	Secure          bool   `yaml:"secure"`
	RetentionDays   int    `yaml:"retentionDays"`
}

// Update update manifest check params.
type Update struct {
	ManifestURL   string `yaml:"manifestURL"`
	CacheDir      string `yaml:"cacheDir"`
	IntervalHours int    `yaml:"intervalHours"`
}

// Validate validate the config.
func (c *Config) Validate() error {
	if c.Branch == "" {
		return fmt.Errorf("branch must not be empty")
	}
	if c.Remote == "" {
		return fmt.Errorf("remote must not be empty")
	}
	if c.VersionFile == "" {
		return fmt.Errorf("versionFile must not be empty")
	}
	if c.Assemble.Worker < 1 {
		return fmt.Errorf("assemble worker must be >= 1")
	}
	if _, err := c.installerTemplate(); err != nil {
		return fmt.Errorf("invalid installer name template: %w", err)
	}
	return nil
}

// Logger get the configured logger.
func (c *Config) Logger() log.YALI {
	if c.log == nil {
		c.log = log.New(c.Quiet, c.Simple)
	}
	return c.log
}

// InstallerName render the installer artifact name for the given version.
func (c *Config) InstallerName(v semver.Version) (string, error) {
	t, err := c.installerTemplate()
	if err != nil {
		return "", err
	}
	var b bytes.Buffer
	err = t.Execute(&b, map[string]string{
		"Name":    c.Name,
		"Version": v.String(),
		"Tag":     v.Tag(),
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func (c *Config) installerTemplate() (*template.Template, error) {
	name := c.Package.NameTemplate
	if name == "" {
		name = DefaultInstallerNameTemplate
	}
	return template.New("installer").Funcs(sprig.TxtFuncMap()).Parse(name)
}
