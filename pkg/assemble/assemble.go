// Package assemble builds the installer staging tree: a pinned set of source
// paths plus the unpacked interpreter runtime.
package assemble

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	wp "github.com/vardius/worker-pool/v2"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/bakito/releaser/pkg/log"
	"github.com/bakito/releaser/pkg/types"
)

// Assembler copies the pinned source paths into a staging tree and fetches
// the pinned interpreter runtime archive.
type Assembler struct {
	config *types.Config
	l      log.YALI
}

// New create an assembler.
func New(config *types.Config) (*Assembler, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(config.Assemble.Paths) == 0 {
		return nil, fmt.Errorf("no paths to assemble")
	}
	return &Assembler{
		config: config,
		l:      config.Logger(),
	}, nil
}

// Assemble build a fresh staging tree and return its path. Every run uses a
// new directory so a failed run never leaves a half-usable tree in place.
func (a *Assembler) Assemble(ctx context.Context) (string, error) {
	staging := filepath.Join(a.config.Assemble.Target, uuid.NewString())
	if err := os.MkdirAll(staging, 0o755); err != nil {
		return "", err
	}

	a.l.Printf("assembling %d files into %s\n", len(a.config.Assemble.Paths), staging)
	if err := a.copyPaths(staging); err != nil {
		return "", err
	}
	a.l.Checkf("copied application files\n")

	if a.config.Assemble.RuntimeURL != "" {
		if err := a.fetchRuntime(ctx, staging); err != nil {
			return "", err
		}
		a.l.Checkf("unpacked runtime\n")
	}
	return staging, nil
}

// copyPaths copies the pinned paths concurrently.
func (a *Assembler) copyPaths(staging string) error {
	paths := a.config.Assemble.Paths

	var bar *mpb.Bar
	var prog *mpb.Progress
	if !a.config.Quiet && !a.config.Simple {
		prog = mpb.New()
		bar = prog.AddBar(int64(len(paths)),
			mpb.PrependDecorators(
				decor.Name("Files", decor.WC{W: len("Files") + 1, C: decor.DindentRight}),
			),
			mpb.AppendDecorators(
				decor.CurrentNoUnit(""),
				decor.Name("/"),
				decor.TotalNoUnit(""),
				decor.Name(" "),
				decor.Percentage(),
			),
		)
	}

	var wg sync.WaitGroup
	pool := wp.New(len(paths))
	errs := make(chan error, len(paths))

	work := func(path string) {
		defer wg.Done()
		if err := a.copyOne(staging, path); err != nil {
			errs <- fmt.Errorf("copy %s: %w", path, err)
		}
		if bar != nil {
			bar.Increment()
		}
	}
	for i := 0; i < a.config.Assemble.Worker; i++ {
		if err := pool.AddWorker(work); err != nil {
			return err
		}
	}

	wg.Add(len(paths))
	for _, p := range paths {
		if err := pool.Delegate(p); err != nil {
			return err
		}
	}

	wg.Wait()
	pool.Stop()
	close(errs)
	if prog != nil {
		prog.Wait()
	}

	for err := range errs {
		return err
	}
	return nil
}

func (a *Assembler) copyOne(staging, path string) error {
	src := filepath.Join(a.config.WorkDir, path)
	dst := filepath.Join(staging, path)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_RDWR|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	_, err = io.Copy(out, in)
	return err
}
