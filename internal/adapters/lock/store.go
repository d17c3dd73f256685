// Package lock implements lock file storage next to the manifest.
package lock

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/Daisey666/envfile/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.LockStore using one JSON file per manifest directory.
type Store struct{}

// NewStore creates a new lock Store.
func NewStore() (*Store, error) {
	return &Store{}, nil
}

// Get retrieves the lock record for the manifest in dir.
// Returns nil, nil if no lock file exists.
func (s *Store) Get(dir string) (*domain.Lock, error) {
	path := domain.LockPath(dir)
	//nolint:gosec // Path is constructed from the manifest's own directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrLockReadFailed.Error())
	}

	var lock domain.Lock
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockUnmarshalFailed.Error())
	}

	return &lock, nil
}

// Put stores the lock record for the manifest in dir.
func (s *Store) Put(dir string, lock domain.Lock) error {
	data, err := json.MarshalIndent(lock, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrLockMarshalFailed.Error())
	}
	data = append(data, '\n')

	path := domain.LockPath(dir)
	//nolint:gosec // Path is constructed from the manifest's own directory
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrLockWriteFailed.Error())
	}

	return nil
}
