package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gom/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/gom/internal/adapters/linear"             //nolint:depguard // Wired in app layer
	"go.trai.ch/gom/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/gom/internal/adapters/settings"           //nolint:depguard // Wired in app layer
	"go.trai.ch/gom/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/gom/internal/adapters/vendordir"          //nolint:depguard // Wired in app layer
	"go.trai.ch/gom/internal/core/domain"
	"go.trai.ch/gom/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			vendordir.ReconcilerNodeID,
			vendordir.CopierNodeID,
			linear.NodeID,
			logger.NodeID,
			settings.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	reconciler, err := graft.Dep[ports.Reconciler](ctx)
	if err != nil {
		return nil, err
	}
	copier, err := graft.Dep[ports.PackageCopier](ctx)
	if err != nil {
		return nil, err
	}
	reporter, err := graft.Dep[ports.Reporter](ctx)
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
	return New(loader, reconciler, copier, reporter, log, s), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{App: a, Logger: log, Telemetry: tel}, nil
}
