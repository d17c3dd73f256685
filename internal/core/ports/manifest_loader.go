package ports

import "github.com/Daisey666/envfile/internal/core/domain"

// ManifestLoader defines the interface for reading environment manifests.
//
//go:generate mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads and parses the manifest at the given path.
	Load(path string) (*domain.Manifest, error)

	// Discover walks up from cwd and returns the path of the nearest
	// environment.yml or environment.yaml.
	Discover(cwd string) (string, error)
}
