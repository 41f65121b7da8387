package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gom/internal/adapters/settings" //nolint:depguard // Progress output is a setting
	"go.trai.ch/gom/internal/core/domain"
	"go.trai.ch/gom/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			s, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			if s.Progress {
				return NewRecorder(NewPrinter(nil)), nil
			}
			return New(), nil
		},
	})
}
