package logger

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/gom/internal/adapters/settings" //nolint:depguard // Logger format comes from settings
	"go.trai.ch/gom/internal/core/domain"
	"go.trai.ch/gom/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			s, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return newLogger(os.Stderr, s.LogFormat == domain.LogFormatJSON), nil
		},
	})
}
