package ports

import "go.trai.ch/unexpire/internal/core/domain"

// ConfigLoader defines the interface for loading the generator configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path, merged over the defaults.
	// An empty path returns the defaults.
	Load(path string) (domain.Config, error)
}
