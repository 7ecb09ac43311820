package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mapguess/mapguess-cli/internal/adapters/driving/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive guessing game",
	Long: `Launch the interactive terminal UI and start guessing countries.

A country silhouette is shown and you type its name. Matching is
forgiving by default; adjust it with 'mapguess settings difficulty'.

Controls:
  (type)   - Enter your guess
  Enter    - Submit guess (empty skips and reveals)
  ctrl+s   - Skip the current country
  n        - New game after game over
  Esc      - Abandon game, back to menu
  q        - Quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play requires an interactive terminal")
	}

	ports := tui.NewPorts(gameService, datasetService, statsService, settingsService)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
