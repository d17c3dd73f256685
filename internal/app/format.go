package app

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/Daisey666/envfile/internal/core/domain"
	"go.trai.ch/zerr"
)

// FormatOptions configuration for the Format method.
type FormatOptions struct {
	// Write rewrites the file in place instead of printing to stdout.
	Write bool
	// Check exits non-zero when the file is not already canonical.
	Check bool
}

// Format rewrites a manifest into canonical form: dependency groups
// sorted by normalized name with exact duplicates dropped. Channel order
// is priority and is never reordered.
func (a *App) Format(_ context.Context, path string, opts FormatOptions) error {
	resolved, m, err := a.load(path)
	if err != nil {
		return err
	}

	m.Canonicalize()
	formatted, err := a.encoder.Encode(m)
	if err != nil {
		return err
	}

	if opts.Check {
		// #nosec G304 -- resolved comes from CLI arguments or Discover
		original, readErr := os.ReadFile(resolved)
		if readErr != nil {
			readErr = zerr.Wrap(readErr, domain.ErrManifestReadFailed.Error())
			return zerr.With(readErr, "path", resolved)
		}
		if !bytes.Equal(original, formatted) {
			return zerr.With(domain.ErrNotCanonical, "path", resolved)
		}
		return nil
	}

	if opts.Write {
		if err := a.encoder.WriteFile(resolved, m); err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("formatted %s", resolved))
		return nil
	}

	_, err = a.out.Write(formatted)
	return err
}
