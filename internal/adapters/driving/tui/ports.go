// Package tui provides an interactive terminal user interface for mapguess.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/mapguess/mapguess-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Game runs guessing sessions.
	Game driving.GameService

	// Dataset manages the country dataset.
	Dataset driving.DatasetService

	// Stats reports on recorded sessions.
	Stats driving.StatsService

	// Settings manages application settings.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	game driving.GameService,
	dataset driving.DatasetService,
	stats driving.StatsService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Game:     game,
		Dataset:  dataset,
		Stats:    stats,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Game == nil {
		return ErrMissingGameService
	}
	if p.Stats == nil {
		return ErrMissingStatsService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
