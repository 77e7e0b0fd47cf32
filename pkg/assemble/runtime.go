package assemble

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// runtimeDir name of the interpreter runtime inside the staging tree.
const runtimeDir = "python"

// fetchRuntime downloads the pinned runtime archive and unpacks it into the
// staging tree.
func (a *Assembler) fetchRuntime(ctx context.Context, staging string) error {
	url := a.config.Assemble.RuntimeURL
	a.l.Printf("downloading runtime %s\n", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download runtime: unexpected status %s for %s", resp.Status, url)
	}

	archive, err := os.CreateTemp("", "runtime-*.zip")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(archive.Name()) }()
	defer func() { _ = archive.Close() }()

	body := resp.Body
	if !a.config.Quiet && !a.config.Simple && resp.ContentLength > 0 {
		prog := mpb.New()
		bar := prog.AddBar(resp.ContentLength,
			mpb.PrependDecorators(
				decor.Name("Runtime", decor.WC{W: len("Runtime") + 1, C: decor.DindentRight}),
			),
			mpb.AppendDecorators(
				decor.CountersKibiByte("% .2f / % .2f"),
			),
		)
		body = bar.ProxyReader(resp.Body)
		defer prog.Wait()
	}

	if _, err := io.Copy(archive, body); err != nil {
		return err
	}
	return unzip(archive.Name(), filepath.Join(staging, runtimeDir))
}

// unzip unpacks the archive below target, refusing entries that would escape
// it.
func unzip(archive, target string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	for _, f := range r.File {
		path := filepath.Join(target, f.Name)
		if !strings.HasPrefix(path, filepath.Clean(target)+string(os.PathSeparator)) {
			return fmt.Errorf("illegal archive path: %s", f.Name)
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(path, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := extract(f, path); err != nil {
			return err
		}
	}
	return nil
}

func extract(f *zip.File, path string) error {
	in, err := f.Open()
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	_, err = io.Copy(out, in)
	return err
}
