// Package game provides the guessing view for the TUI.
//
// The view shows the highlighted country's silhouette, a text input for
// the guess and a running score. Submitting an empty guess skips the
// round and reveals the answer.
package game

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mapguess/mapguess-cli/internal/adapters/driving/tui/components/input"
	"github.com/mapguess/mapguess-cli/internal/adapters/driving/tui/components/mapview"
	"github.com/mapguess/mapguess-cli/internal/adapters/driving/tui/components/status"
	"github.com/mapguess/mapguess-cli/internal/adapters/driving/tui/keymap"
	"github.com/mapguess/mapguess-cli/internal/adapters/driving/tui/messages"
	"github.com/mapguess/mapguess-cli/internal/adapters/driving/tui/styles"
	"github.com/mapguess/mapguess-cli/internal/core/domain"
	"github.com/mapguess/mapguess-cli/internal/core/ports/driving"
)

// Phase tracks what the game view is currently doing.
type Phase int

const (
	// PhaseLoading means a session is being started.
	PhaseLoading Phase = iota
	// PhasePlaying means a round is in progress.
	PhasePlaying
	// PhaseFinished means the session played through every country.
	PhaseFinished
	// PhaseError means the session could not be started.
	PhaseError
)

// View is the guessing view.
type View struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	gameService driving.GameService

	phase    Phase
	current  *domain.Country
	feedback string
	err      error

	input   *input.GuessInput
	mapView *mapview.Model
	bar     *status.Bar
	showMap bool

	width  int
	height int
	ready  bool
}

// NewView creates a new game view.
func NewView(s *styles.Styles, km *keymap.KeyMap, gameService driving.GameService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:      s,
		keymap:      km,
		gameService: gameService,
		phase:       PhaseLoading,
		input:       input.NewGuessInput(s),
		mapView:     mapview.New(s),
		bar:         status.NewBar(s, km),
		showMap:     true,
		width:       80,
		height:      24,
	}
}

// Init initialises the view and starts a session.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.startSession())
}

// SetShowMap controls whether the silhouette is rendered.
func (v *View) SetShowMap(show bool) {
	v.showMap = show
}

// Phase returns the current phase.
func (v *View) Phase() Phase {
	return v.phase
}

// startSession returns a command that begins a new session.
func (v *View) startSession() tea.Cmd {
	return func() tea.Msg {
		if v.gameService == nil {
			return messages.SessionStarted{Err: fmt.Errorf("game service not available")}
		}
		state, err := v.gameService.Start(context.Background())
		return messages.SessionStarted{State: state, Err: err}
	}
}

// submitGuess returns a command that submits the typed guess.
func (v *View) submitGuess(guess string) tea.Cmd {
	return func() tea.Msg {
		if v.gameService == nil {
			return messages.GuessCompleted{Err: fmt.Errorf("game service not available")}
		}
		result, err := v.gameService.Guess(context.Background(), guess)
		return messages.GuessCompleted{Guess: guess, Result: result, Err: err}
	}
}

// abandonSession returns a command that discards the session and returns
// to the menu.
func (v *View) abandonSession() tea.Cmd {
	return func() tea.Msg {
		if v.gameService != nil {
			_ = v.gameService.Abandon(context.Background())
		}
		return messages.ViewChanged{View: messages.ViewMenu}
	}
}

// Update handles messages for the game view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.bar.SetWidth(msg.Width)
		v.input.SetWidth(msg.Width - 4)
		mapHeight := msg.Height - 8
		if mapHeight < 5 {
			mapHeight = 5
		}
		v.mapView.SetDimensions(msg.Width-4, mapHeight)
		return v, nil

	case messages.SessionStarted:
		return v.handleSessionStarted(msg)

	case messages.GuessCompleted:
		return v.handleGuessCompleted(msg)

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleSessionStarted(msg messages.SessionStarted) (*View, tea.Cmd) {
	if msg.Err != nil {
		v.phase = PhaseError
		v.err = msg.Err
		v.bar.SetState(status.StateError)
		v.bar.SetMessage(msg.Err.Error())
		return v, nil
	}

	v.phase = PhasePlaying
	v.err = nil
	v.feedback = ""
	v.current = msg.State.Current
	v.mapView.SetCountry(msg.State.Current)
	v.input.Reset()
	v.bar.SetState(status.StatePlaying)
	v.bar.SetScore(status.Score{Remaining: msg.State.Remaining})
	return v, v.input.Focus()
}

func (v *View) handleGuessCompleted(msg messages.GuessCompleted) (*View, tea.Cmd) {
	if msg.Err != nil {
		v.err = msg.Err
		v.bar.SetState(status.StateError)
		v.bar.SetMessage(msg.Err.Error())
		return v, nil
	}

	result := msg.Result
	switch result.Outcome {
	case domain.OutcomeCorrect:
		v.feedback = v.styles.Success.Render(fmt.Sprintf("Correct! It was %s.", result.Answer))
	case domain.OutcomeWrong:
		v.feedback = v.styles.Error.Render(fmt.Sprintf("Wrong. It was %s.", result.Answer))
	case domain.OutcomeSkipped:
		v.feedback = v.styles.Warning.Render(fmt.Sprintf("Skipped. It was %s.", result.Answer))
	}

	v.input.Reset()
	v.refreshScore()

	if result.Finished {
		v.phase = PhaseFinished
		v.current = nil
		v.mapView.SetCountry(nil)
		v.bar.SetState(status.StateFinished)
		return v, nil
	}

	v.current = result.Next
	v.mapView.SetCountry(result.Next)
	return v, nil
}

// refreshScore pulls the latest tally from the service into the bar.
func (v *View) refreshScore() {
	if v.gameService == nil {
		return
	}
	state, err := v.gameService.State(context.Background())
	if err != nil {
		return
	}
	v.bar.SetScore(status.Score{
		Correct:   state.Correct,
		Wrong:     state.Wrong,
		Skipped:   state.Skipped,
		Remaining: state.Remaining,
	})
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	if keymap.Matches(keyStr, v.keymap.Back) {
		return v, v.abandonSession()
	}

	switch v.phase {
	case PhasePlaying:
		if keymap.Matches(keyStr, v.keymap.Submit) {
			return v, v.submitGuess(v.input.Value())
		}
		if keymap.Matches(keyStr, v.keymap.Skip) {
			return v, v.submitGuess("")
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd

	case PhaseFinished, PhaseError:
		if keymap.Matches(keyStr, v.keymap.NewGame) {
			v.phase = PhaseLoading
			return v, v.startSession()
		}
		if keymap.Matches(keyStr, v.keymap.Quit) {
			return v, tea.Quit
		}
	case PhaseLoading:
		// Waiting for SessionStarted; ignore input.
	}

	return v, nil
}

// View renders the game view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("MapGuess"))
	b.WriteString("\n\n")

	switch v.phase {
	case PhaseLoading:
		b.WriteString(v.styles.Muted.Render("Starting a new game..."))
		b.WriteString("\n")

	case PhaseError:
		if v.err != nil {
			b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
			b.WriteString("\n\n")
		}
		b.WriteString(v.styles.Help.Render("[n] retry  [esc] menu  [q] quit"))
		b.WriteString("\n")

	case PhaseFinished:
		score := v.bar.Score()
		b.WriteString(v.styles.Subtitle.Render("Game over!"))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Normal.Render(fmt.Sprintf(
			"Correct: %d   Wrong: %d   Skipped: %d",
			score.Correct, score.Wrong, score.Skipped)))
		b.WriteString("\n")
		if v.feedback != "" {
			b.WriteString(v.feedback)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(v.styles.Help.Render("[n] new game  [esc] menu  [q] quit"))
		b.WriteString("\n")

	case PhasePlaying:
		if v.showMap {
			b.WriteString(v.mapView.View())
			b.WriteString("\n\n")
		} else if v.current != nil {
			hint := fmt.Sprintf("Continent: %s", v.current.Continent)
			b.WriteString(v.styles.Muted.Render(hint))
			b.WriteString("\n\n")
		}
		if v.feedback != "" {
			b.WriteString(v.feedback)
			b.WriteString("\n")
		}
		b.WriteString(v.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.bar.View())

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.bar.SetWidth(width)
}

// Feedback returns the last round's feedback line.
func (v *View) Feedback() string {
	return v.feedback
}
