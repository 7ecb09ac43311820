// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/mapguess/mapguess-cli/internal/core/domain"
	"github.com/mapguess/mapguess-cli/internal/core/ports/driving"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewGame is the guessing view with the highlighted country.
	ViewGame
	// ViewStats is the lifetime statistics view.
	ViewStats
	// ViewSettings is the settings configuration view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewGame:
		return "game"
	case ViewStats:
		return "stats"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// SessionStarted carries the initial state of a new game session.
type SessionStarted struct {
	State *driving.SessionState
	Err   error
}

// GuessCompleted carries the outcome of a submitted guess.
type GuessCompleted struct {
	Guess  string
	Result *driving.GuessResult
	Err    error
}

// StatsLoaded carries the lifetime summary and recent history.
type StatsLoaded struct {
	Summary *domain.StatsSummary
	History []domain.SessionRecord
	Err     error
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
