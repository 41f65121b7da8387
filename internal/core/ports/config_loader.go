package ports

import "go.trai.ch/gom/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the project configuration from the given working directory.
	// A missing, unreadable or malformed file is an error.
	Load(cwd string) (*domain.Config, error)
}
