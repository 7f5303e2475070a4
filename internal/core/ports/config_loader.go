package ports

import "go.trai.ch/rscript/internal/core/domain"

// ConfigLoader defines the interface for loading user settings.
type ConfigLoader interface {
	// Load reads settings from defaults, the config file and the environment.
	Load() (*domain.Settings, error)
}
