package ports

import "github.com/Daisey666/envfile/internal/core/domain"

// LockStore defines the interface for persisting manifest lock records.
//
//go:generate mockgen -source=lock_store.go -destination=mocks/mock_lock_store.go -package=mocks
type LockStore interface {
	// Get retrieves the lock record stored next to the manifest in dir.
	// Returns nil, nil if no lock file exists.
	Get(dir string) (*domain.Lock, error)

	// Put stores the lock record next to the manifest in dir.
	Put(dir string, lock domain.Lock) error
}
