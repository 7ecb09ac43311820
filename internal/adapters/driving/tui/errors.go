package tui

import "errors"

// ErrMissingGameService is returned when the game service is not provided.
var ErrMissingGameService = errors.New("tui: game service is required")

// ErrMissingStatsService is returned when the stats service is not provided.
var ErrMissingStatsService = errors.New("tui: stats service is required")

// ErrMissingSettingsService is returned when the settings service is not provided.
var ErrMissingSettingsService = errors.New("tui: settings service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
