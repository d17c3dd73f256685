package domain

import "path/filepath"

const (
	// EnvFileName is the primary name of the environment manifest file.
	EnvFileName = "environment.yml"

	// EnvFileNameAlt is the alternate spelling of the manifest file name.
	EnvFileNameAlt = "environment.yaml"

	// LockFileName is the name of the lock file written next to the manifest.
	LockFileName = "environment.lock.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// LockPath returns the lock file path for a manifest located in dir.
func LockPath(dir string) string {
	return filepath.Join(dir, LockFileName)
}
