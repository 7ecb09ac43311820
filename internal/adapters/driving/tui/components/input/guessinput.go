// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mapguess/mapguess-cli/internal/adapters/driving/tui/styles"
)

// GuessInput wraps a bubbles textinput for typing country guesses.
type GuessInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewGuessInput creates a new guess input component.
func NewGuessInput(s *styles.Styles) *GuessInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Type a country name (empty to skip)..."
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 44

	return &GuessInput{
		textinput: ti,
		styles:    s,
		width:     44,
	}
}

// Init initialises the guess input.
func (g *GuessInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (g *GuessInput) Update(msg tea.Msg) (*GuessInput, tea.Cmd) {
	var cmd tea.Cmd
	g.textinput, cmd = g.textinput.Update(msg)
	return g, cmd
}

// View renders the guess input.
func (g *GuessInput) View() string {
	label := g.styles.Title.Render("Guess: ")
	input := g.styles.InputField.Render(g.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input)
}

// Value returns the current input value.
func (g *GuessInput) Value() string {
	return g.textinput.Value()
}

// SetValue sets the input value.
func (g *GuessInput) SetValue(value string) {
	g.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (g *GuessInput) Focus() tea.Cmd {
	return g.textinput.Focus()
}

// Blur removes focus from the input.
func (g *GuessInput) Blur() {
	g.textinput.Blur()
}

// Focused returns whether the input is focused.
func (g *GuessInput) Focused() bool {
	return g.textinput.Focused()
}

// SetWidth sets the width of the input.
func (g *GuessInput) SetWidth(width int) {
	g.width = width
	// Account for label and padding
	inputWidth := width - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	g.textinput.Width = inputWidth
}

// Width returns the current width.
func (g *GuessInput) Width() int {
	return g.width
}

// Reset clears the input.
func (g *GuessInput) Reset() {
	g.textinput.Reset()
}
