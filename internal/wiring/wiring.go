// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gom/internal/adapters/config"
	_ "go.trai.ch/gom/internal/adapters/fs"
	_ "go.trai.ch/gom/internal/adapters/linear"
	_ "go.trai.ch/gom/internal/adapters/lockfile"
	_ "go.trai.ch/gom/internal/adapters/logger"
	_ "go.trai.ch/gom/internal/adapters/settings"
	_ "go.trai.ch/gom/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/gom/internal/adapters/vendordir"
	// Register app nodes.
	_ "go.trai.ch/gom/internal/app"
)
