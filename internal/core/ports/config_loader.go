package ports

import "go.trai.ch/glance/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path. An empty path resolves the default location.
	// A missing file yields domain.DefaultConfig.
	Load(path string) (domain.Config, error)
}
