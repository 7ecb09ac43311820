// Package stats provides the statistics view for the TUI.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mapguess/mapguess-cli/internal/adapters/driving/tui/messages"
	"github.com/mapguess/mapguess-cli/internal/adapters/driving/tui/styles"
	"github.com/mapguess/mapguess-cli/internal/core/domain"
	"github.com/mapguess/mapguess-cli/internal/core/ports/driving"
)

// historyLimit caps how many recent sessions the view shows.
const historyLimit = 10

// View is the lifetime statistics view.
type View struct {
	styles       *styles.Styles
	statsService driving.StatsService

	summary *domain.StatsSummary
	history []domain.SessionRecord
	err     error

	width  int
	height int
	ready  bool
}

// NewView creates a new stats view.
func NewView(s *styles.Styles, statsService driving.StatsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:       s,
		statsService: statsService,
		width:        80,
		height:       24,
	}
}

// Init initialises the view and loads statistics.
func (v *View) Init() tea.Cmd {
	return v.loadStats()
}

// loadStats returns a command that loads the summary and recent history.
func (v *View) loadStats() tea.Cmd {
	return func() tea.Msg {
		if v.statsService == nil {
			return messages.StatsLoaded{Err: fmt.Errorf("stats service not available")}
		}
		ctx := context.Background()
		summary, err := v.statsService.Summary(ctx)
		if err != nil {
			return messages.StatsLoaded{Err: err}
		}
		history, err := v.statsService.History(ctx, historyLimit)
		if err != nil {
			return messages.StatsLoaded{Err: err}
		}
		return messages.StatsLoaded{Summary: summary, History: history}
	}
}

// Update handles messages for the stats view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.StatsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.summary = msg.Summary
			v.history = msg.History
			v.err = nil
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "r":
			return v, v.loadStats()
		}
	}

	return v, nil
}

// View renders the stats view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Statistics"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
		return b.String()
	}

	if v.summary == nil {
		b.WriteString(v.styles.Muted.Render("Loading statistics..."))
		return b.String()
	}

	if v.summary.GamesPlayed == 0 {
		b.WriteString(v.styles.Muted.Render("No games played yet."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back"))
		return b.String()
	}

	b.WriteString(v.styles.Normal.Render(fmt.Sprintf("Games played:   %d", v.summary.GamesPlayed)))
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render(fmt.Sprintf("Rounds played:  %d", v.summary.TotalRounds)))
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render(fmt.Sprintf("Correct:        %d", v.summary.TotalCorrect)))
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render(fmt.Sprintf("Accuracy:       %.1f%%", v.summary.Accuracy()*100)))
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render(fmt.Sprintf("Best game:      %d correct", v.summary.BestCorrect)))
	b.WriteString("\n")
	if !v.summary.LastPlayed.IsZero() {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Last played:    %s", v.summary.LastPlayed.Format("2006-01-02 15:04"))))
		b.WriteString("\n")
	}

	if len(v.history) > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("Recent games"))
		b.WriteString("\n")
		for _, rec := range v.history {
			line := fmt.Sprintf("  %s  %-13s %-8s  ✓ %-3d ✗ %-3d → %-3d",
				rec.FinishedAt.Format("2006-01-02"),
				rec.Region,
				rec.Difficulty,
				rec.Correct, rec.Wrong, rec.Skipped)
			b.WriteString(v.styles.Normal.Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[r] refresh  [esc] back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}
