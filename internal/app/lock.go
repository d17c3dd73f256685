package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Daisey666/envfile/internal/core/domain"
	"github.com/Daisey666/envfile/internal/ui/style"
	"go.trai.ch/zerr"
)

// LockOptions configuration for the Lock method.
type LockOptions struct {
	// Verify compares the manifest against the existing lock file
	// instead of writing a new one.
	Verify bool
}

// Lock writes the canonical digest and the fully-enumerated entries of a
// manifest to environment.lock.json next to it. With Verify it recomputes
// the digest and returns ErrLockDrift if the manifest changed since the
// lock was written.
func (a *App) Lock(_ context.Context, path string, opts LockOptions) error {
	resolved, m, err := a.load(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(resolved)
	current := domain.NewLock(m)

	if opts.Verify {
		return a.verifyLock(dir, resolved, current)
	}

	if err := a.store.Put(dir, current); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("locked %s (digest %s)", resolved, current.Digest))
	return nil
}

func (a *App) verifyLock(dir, resolved string, current domain.Lock) error {
	stored, err := a.store.Get(dir)
	if err != nil {
		return err
	}
	if stored == nil {
		return zerr.With(domain.ErrLockNotFound, "path", domain.LockPath(dir))
	}

	if stored.Digest != current.Digest {
		err := zerr.With(domain.ErrLockDrift, "locked_digest", stored.Digest)
		err = zerr.With(err, "current_digest", current.Digest)
		return zerr.With(err, "path", resolved)
	}

	fmt.Fprintf(a.out, "%s %s matches lock (digest %s)\n",
		style.SuccessText.Render(style.Check), resolved, current.Digest)
	return nil
}
