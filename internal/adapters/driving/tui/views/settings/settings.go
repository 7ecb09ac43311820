// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mapguess/mapguess-cli/internal/adapters/driving/tui/messages"
	"github.com/mapguess/mapguess-cli/internal/adapters/driving/tui/styles"
	"github.com/mapguess/mapguess-cli/internal/core/domain"
	"github.com/mapguess/mapguess-cli/internal/core/ports/driving"
)

// Row indices in the settings list.
const (
	rowDifficulty = iota
	rowRegion
	rowShowMap
	rowCount
)

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.AppSettings
	err      error

	selected int

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:          s,
		settingsService: settingsService,
		width:           80,
		height:          24,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: fmt.Errorf("settings service not available")}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		// Reload settings after save
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}

	case "down", "j":
		if v.selected < rowCount-1 {
			v.selected++
		}

	case "left", "h":
		return v, v.cycle(-1)

	case "right", "l", "enter", " ":
		return v, v.cycle(1)
	}

	return v, nil
}

// cycle moves the selected setting to its previous or next value and
// persists the change.
func (v *View) cycle(delta int) tea.Cmd {
	if v.settings == nil {
		return nil
	}

	switch v.selected {
	case rowDifficulty:
		all := domain.AllDifficulties()
		next := all[cycleIndex(indexOfDifficulty(all, v.settings.Game.Difficulty), delta, len(all))]
		return v.save(func(s driving.SettingsService) error {
			return s.SetDifficulty(next)
		})

	case rowRegion:
		all := domain.AllRegions()
		next := all[cycleIndex(indexOfRegion(all, v.settings.Game.Region), delta, len(all))]
		return v.save(func(s driving.SettingsService) error {
			return s.SetRegion(next)
		})

	case rowShowMap:
		show := !v.settings.Game.ShowMap
		return v.save(func(s driving.SettingsService) error {
			return s.SetShowMap(show)
		})
	}

	return nil
}

// save wraps a settings mutation into a SettingsSaved command.
func (v *View) save(mutate func(driving.SettingsService) error) tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: fmt.Errorf("settings service not available")}
		}
		return messages.SettingsSaved{Err: mutate(v.settingsService)}
	}
}

func cycleIndex(current, delta, length int) int {
	return ((current+delta)%length + length) % length
}

func indexOfDifficulty(all []domain.Difficulty, d domain.Difficulty) int {
	for i, candidate := range all {
		if candidate == d {
			return i
		}
	}
	return 0
}

func indexOfRegion(all []domain.Region, r domain.Region) int {
	for i, candidate := range all {
		if candidate == r {
			return i
		}
	}
	return 0
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	showMap := "off"
	if v.settings.Game.ShowMap {
		showMap = "on"
	}

	rows := []struct {
		label string
		value string
	}{
		{"Difficulty", v.settings.Game.Difficulty.Description()},
		{"Region", v.settings.Game.Region.Description()},
		{"Show map", showMap},
	}

	for i, row := range rows {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}

		line := fmt.Sprintf("%s%s: %s", indicator, row.label, row.value)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Dataset: %s", v.settings.Dataset.URL)))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] navigate  [h/l] change  [esc] back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset resets the view to initial state.
func (v *View) Reset() {
	v.selected = 0
	v.err = nil
}
