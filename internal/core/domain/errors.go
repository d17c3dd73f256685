package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestNotFound is returned when no environment manifest can be found.
	ErrManifestNotFound = zerr.New("could not find environment manifest")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest file")

	// ErrManifestParseFailed is returned when the manifest file cannot be parsed as YAML.
	ErrManifestParseFailed = zerr.New("failed to parse manifest file")

	// ErrMalformedDependencies is returned when the dependencies field is not a sequence.
	ErrMalformedDependencies = zerr.New("dependencies must be a sequence")

	// ErrMalformedPipGroup is returned when the pip sub-list is not a sequence of strings.
	ErrMalformedPipGroup = zerr.New("pip group must be a sequence of requirement strings")

	// ErrUnsupportedEntry is returned when a dependency entry is neither a scalar spec nor a pip sub-list.
	ErrUnsupportedEntry = zerr.New("unsupported dependency entry")

	// ErrEmptyDependencyName is returned when a dependency entry has no package name.
	ErrEmptyDependencyName = zerr.New("dependency name is empty")

	// ErrInvalidDependencyName is returned when a package name is not valid for its installer.
	ErrInvalidDependencyName = zerr.New("invalid dependency name")

	// ErrInvalidConstraint is returned when a version constraint does not parse.
	ErrInvalidConstraint = zerr.New("invalid version constraint")

	// ErrConflictingConstraints is returned when a package appears twice in a group with different constraints.
	ErrConflictingConstraints = zerr.New("conflicting constraints for dependency")

	// ErrNoChannels is returned when the manifest declares no channels.
	ErrNoChannels = zerr.New("channel list is empty")

	// ErrValidationFailed is returned when a manifest has at least one error-level finding.
	ErrValidationFailed = zerr.New("manifest validation failed")

	// ErrManifestsDiffer is returned by diff when the two manifests are not equivalent.
	ErrManifestsDiffer = zerr.New("manifests differ")

	// ErrNotCanonical is returned by fmt --check when the manifest is not in canonical form.
	ErrNotCanonical = zerr.New("manifest is not in canonical form")

	// ErrEncodeFailed is returned when the manifest cannot be serialized back to YAML.
	ErrEncodeFailed = zerr.New("failed to encode manifest")

	// ErrLockNotFound is returned when lock verification runs without an existing lock file.
	ErrLockNotFound = zerr.New("lock file not found")

	// ErrLockDrift is returned when the manifest no longer matches its lock file.
	ErrLockDrift = zerr.New("manifest drifted from lock file")

	// ErrLockReadFailed is returned when the lock file cannot be read.
	ErrLockReadFailed = zerr.New("failed to read lock file")

	// ErrLockWriteFailed is returned when the lock file cannot be written.
	ErrLockWriteFailed = zerr.New("failed to write lock file")

	// ErrLockMarshalFailed is returned when the lock data cannot be marshaled.
	ErrLockMarshalFailed = zerr.New("failed to marshal lock data")

	// ErrLockUnmarshalFailed is returned when the lock data cannot be unmarshaled.
	ErrLockUnmarshalFailed = zerr.New("failed to unmarshal lock data")
)
