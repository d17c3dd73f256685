// Package build records version metadata injected at link time.
package build

// Version metadata. Overridden via -ldflags at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
