// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/Daisey666/envfile/internal/adapters/lock"
	_ "github.com/Daisey666/envfile/internal/adapters/logger"
	_ "github.com/Daisey666/envfile/internal/adapters/manifest"
	_ "github.com/Daisey666/envfile/internal/adapters/watcher"
	// Register the app node.
	_ "github.com/Daisey666/envfile/internal/app"
)
