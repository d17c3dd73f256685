package app

import (
	"context"

	"github.com/Daisey666/envfile/internal/adapters/lock"
	"github.com/Daisey666/envfile/internal/adapters/logger"
	"github.com/Daisey666/envfile/internal/adapters/manifest"
	"github.com/Daisey666/envfile/internal/adapters/watcher"
	"github.com/Daisey666/envfile/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{manifest.NodeID, logger.NodeID, lock.NodeID, watcher.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.LockStore](ctx)
			if err != nil {
				return nil, err
			}
			fsWatcher, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(loader, log, store, fsWatcher),
				Logger: log,
			}, nil
		},
	})
}
