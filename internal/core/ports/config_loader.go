package ports

import "go.trai.ch/fixit/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers fixit.yaml from the given working directory and returns the resolved config.
	// A missing file yields the defaults.
	Load(cwd string) (*domain.Config, error)
}
