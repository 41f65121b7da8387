package lockfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gom/internal/adapters/settings"
	"go.trai.ch/gom/internal/core/domain"
	"go.trai.ch/gom/internal/core/ports"
)

// NodeID is the unique identifier for the lockfile manager Graft node.
const NodeID graft.ID = "adapter.lockfile"

func init() {
	graft.Register(graft.Node[ports.LockfileManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.LockfileManager, error) {
			s, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(s), nil
		},
	})
}
