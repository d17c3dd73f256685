package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/Daisey666/envfile/internal/core/domain"
)

// Watch revalidates a manifest whenever it changes on disk, until the
// context is cancelled. Validation failures are reported and watching
// continues; only watcher failures end the loop early.
func (a *App) Watch(ctx context.Context, path string) error {
	resolved, err := a.resolvePath(path)
	if err != nil {
		return err
	}

	a.revalidate(ctx, resolved)

	if err := a.watcher.Start(ctx, resolved); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	a.logger.Info(fmt.Sprintf("watching %s", resolved))

	// The event stream ends when the context is cancelled; interruption
	// is the normal way to leave watch mode, not an error.
	for range a.watcher.Events() {
		a.revalidate(ctx, resolved)
	}

	return nil
}

func (a *App) revalidate(ctx context.Context, path string) {
	err := a.Validate(ctx, []string{path}, ValidateOptions{})
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrValidationFailed):
		// Findings were already printed; keep watching.
	default:
		a.logger.Error(err)
	}
}
