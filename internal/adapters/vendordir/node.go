package vendordir

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gom/internal/adapters/fs"
	"go.trai.ch/gom/internal/adapters/lockfile"
	"go.trai.ch/gom/internal/adapters/logger"
	"go.trai.ch/gom/internal/adapters/settings"
	"go.trai.ch/gom/internal/adapters/telemetry/progrock"
	"go.trai.ch/gom/internal/core/domain"
	"go.trai.ch/gom/internal/core/ports"
)

const (
	// ReconcilerNodeID is the unique identifier for the reconciler Graft node.
	ReconcilerNodeID graft.ID = "adapter.vendor.reconciler"
	// CopierNodeID is the unique identifier for the package copier Graft node.
	CopierNodeID graft.ID = "adapter.vendor.copier"
)

func init() {
	graft.Register(graft.Node[ports.Reconciler]{
		ID:        ReconcilerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{lockfile.NodeID, logger.NodeID, settings.NodeID},
		Run: func(ctx context.Context) (ports.Reconciler, error) {
			lockfiles, err := graft.Dep[ports.LockfileManager](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			s, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewReconciler(lockfiles, log, s), nil
		},
	})

	graft.Register(graft.Node[ports.PackageCopier]{
		ID:        CopierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.WalkerNodeID,
			fs.CopierNodeID,
			fs.HasherNodeID,
			progrock.NodeID,
			logger.NodeID,
			settings.NodeID,
		},
		Run: func(ctx context.Context) (ports.PackageCopier, error) {
			walker, err := graft.Dep[ports.SourceWalker](ctx)
			if err != nil {
				return nil, err
			}
			files, err := graft.Dep[ports.FileCopier](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			s, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewCopier(walker, files, hasher, tel, log, s), nil
		},
	})
}
