// Package app implements the application layer for envfile.
package app

import (
	"io"
	"os"
	"path/filepath"

	"github.com/Daisey666/envfile/internal/adapters/manifest"
	"github.com/Daisey666/envfile/internal/core/domain"
	"github.com/Daisey666/envfile/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader  ports.ManifestLoader
	encoder *manifest.Encoder
	logger  ports.Logger
	store   ports.LockStore
	watcher ports.Watcher
	out     io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ManifestLoader,
	log ports.Logger,
	store ports.LockStore,
	watcher ports.Watcher,
) *App {
	return &App{
		loader:  loader,
		encoder: manifest.NewEncoder(),
		logger:  log,
		store:   store,
		watcher: watcher,
		out:     os.Stdout,
	}
}

// WithOutput redirects report output. This is primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Components bundles the wired application for the CLI entry point.
type Components struct {
	App    *App
	Logger ports.Logger
}

// resolvePath returns the manifest path to operate on: the explicit
// argument when given, otherwise the nearest manifest above cwd.
func (a *App) resolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to get working directory")
	}

	found, err := a.loader.Discover(cwd)
	if err != nil {
		return "", err
	}

	rel, relErr := filepath.Rel(cwd, found)
	if relErr != nil {
		return found, nil
	}
	return rel, nil
}

// load resolves and parses a manifest.
func (a *App) load(path string) (string, *domain.Manifest, error) {
	resolved, err := a.resolvePath(path)
	if err != nil {
		return "", nil, err
	}

	m, err := a.loader.Load(resolved)
	if err != nil {
		return "", nil, err
	}
	return resolved, m, nil
}
