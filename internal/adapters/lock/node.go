package lock

import (
	"context"

	"github.com/Daisey666/envfile/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the lock store Graft node.
const NodeID graft.ID = "adapter.lock_store"

func init() {
	graft.Register(graft.Node[ports.LockStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockStore, error) {
			return NewStore()
		},
	})
}
