// Package update checks a published manifest for a newer released version.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/bakito/releaser/pkg/semver"
	"github.com/bakito/releaser/pkg/types"
)

const (
	// EnvNoUpdateCheck kill switch for the update check.
	EnvNoUpdateCheck = "RELEASER_NO_UPDATE_CHECK"
	// cacheFileName name of the check timestamp cache.
	cacheFileName = "update.json"
	// requestTimeout the manifest fetch must never stall the caller.
	requestTimeout = 2 * time.Second
)

// Manifest the published update manifest.
type Manifest struct {
	Version     string `json:"version"`
	PageURL     string `json:"page_url,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
	Changelog   string `json:"changelog,omitempty"`
}

type cacheEntry struct {
	TS     int64  `json:"ts"`
	Latest string `json:"latest"`
}

// Checker fetches and compares the update manifest.
type Checker struct {
	config *types.Config
	client *http.Client
	now    func() time.Time
}

// New create a checker.
func New(config *types.Config) (*Checker, error) {
	if config.Update.ManifestURL == "" {
		return nil, fmt.Errorf("no manifest URL defined")
	}
	return &Checker{
		config: config,
		client: &http.Client{Timeout: requestTimeout},
		now:    time.Now,
	}, nil
}

// Check fetch the manifest and return it when it advertises a version newer
// than current. Returns nil when up to date, when the check is disabled via
// environment, or when the last check is still fresh.
func (c *Checker) Check(ctx context.Context, current semver.Version) (*Manifest, error) {
	if os.Getenv(EnvNoUpdateCheck) != "" {
		return nil, nil
	}
	cache := c.cachePath()
	if !c.shouldCheck(cache) {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Update.ManifestURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch manifest: unexpected status %s", resp.Status)
	}

	var m Manifest
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	latest, err := semver.Parse(m.Version)
	if err != nil {
		return nil, err
	}

	c.writeCache(cache, m.Version)

	if semver.Less(current, latest) {
		return &m, nil
	}
	return nil, nil
}

func (c *Checker) cachePath() string {
	dir := c.config.Update.CacheDir
	if dir == "" {
		if base, err := os.UserCacheDir(); err == nil {
			dir = filepath.Join(base, c.config.Name)
		} else {
			dir = os.TempDir()
		}
	}
	return filepath.Join(dir, cacheFileName)
}

func (c *Checker) shouldCheck(cache string) bool {
	b, err := os.ReadFile(cache)
	if err != nil {
		return true
	}
	var entry cacheEntry
	if err := json.Unmarshal(b, &entry); err != nil {
		return true
	}
	interval := time.Duration(c.config.Update.IntervalHours) * time.Hour
	return c.now().Sub(time.Unix(entry.TS, 0)) > interval
}

// writeCache best-effort, a failed cache write never fails the check.
func (c *Checker) writeCache(cache, latest string) {
	if err := os.MkdirAll(filepath.Dir(cache), 0o755); err != nil {
		return
	}
	b, err := json.Marshal(cacheEntry{TS: c.now().Unix(), Latest: latest})
	if err != nil {
		return
	}
	_ = os.WriteFile(cache, b, 0o644)
}
