package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapguess/mapguess-cli/internal/adapters/driving/tui/messages"
	"github.com/mapguess/mapguess-cli/internal/core/domain"
	"github.com/mapguess/mapguess-cli/internal/core/ports/driving"
)

type stubGameService struct{}

func (s *stubGameService) Start(_ context.Context) (*driving.SessionState, error) {
	return &driving.SessionState{
		Current:   &domain.Country{Name: "Germany", Continent: "Europe"},
		Remaining: 176,
		Total:     177,
	}, nil
}

func (s *stubGameService) Guess(_ context.Context, _ string) (*driving.GuessResult, error) {
	return &driving.GuessResult{Outcome: domain.OutcomeCorrect, Answer: "Germany"}, nil
}

func (s *stubGameService) State(_ context.Context) (*driving.SessionState, error) {
	return &driving.SessionState{Remaining: 176}, nil
}

func (s *stubGameService) Abandon(_ context.Context) error {
	return nil
}

type stubDatasetService struct{}

func (s *stubDatasetService) Sync(_ context.Context) (int, error) {
	return 177, nil
}

func (s *stubDatasetService) Info(_ context.Context) (*driving.DatasetInfo, error) {
	return &driving.DatasetInfo{Count: 177}, nil
}

func (s *stubDatasetService) Describe(_ context.Context, _ string) (*domain.Country, error) {
	return nil, domain.ErrNotFound
}

type stubStatsService struct{}

func (s *stubStatsService) Summary(_ context.Context) (*domain.StatsSummary, error) {
	return &domain.StatsSummary{}, nil
}

func (s *stubStatsService) History(_ context.Context, _ int) ([]domain.SessionRecord, error) {
	return nil, nil
}

type stubSettingsService struct{}

func (s *stubSettingsService) Get() (*domain.AppSettings, error) {
	return domain.DefaultAppSettings(), nil
}

func (s *stubSettingsService) Save(_ *domain.AppSettings) error         { return nil }
func (s *stubSettingsService) SetDifficulty(_ domain.Difficulty) error  { return nil }
func (s *stubSettingsService) SetRegion(_ domain.Region) error          { return nil }
func (s *stubSettingsService) SetShowMap(_ bool) error                  { return nil }
func (s *stubSettingsService) SetDatasetURL(_ string) error             { return nil }

func validPorts() *Ports {
	return NewPorts(&stubGameService{}, &stubDatasetService{}, &stubStatsService{}, &stubSettingsService{})
}

func newTestApp(t *testing.T) *App {
	t.Helper()

	app, err := NewApp(validPorts())
	require.NoError(t, err)
	return app
}

func TestNewApp(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, messages.ViewMenu, app.CurrentView())
	assert.False(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	ports := validPorts()
	ports.Game = nil

	_, err := NewApp(ports)
	assert.ErrorIs(t, err, ErrMissingGameService)
}

func TestApp_Init(t *testing.T) {
	app := newTestApp(t)

	cmd := app.Init()
	assert.NotNil(t, cmd)
}

func TestApp_Update_WindowSize(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	updated, ok := model.(*App)
	require.True(t, ok)

	assert.True(t, updated.Ready())
	assert.Equal(t, 100, updated.width)
	assert.Equal(t, 40, updated.height)
}

func TestApp_Update_CtrlC_Quits(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
}

func TestApp_Update_ViewChanged_Game(t *testing.T) {
	app := newTestApp(t)

	model, cmd := app.Update(messages.ViewChanged{View: messages.ViewGame})
	updated, ok := model.(*App)
	require.True(t, ok)

	assert.Equal(t, messages.ViewGame, updated.CurrentView())
	assert.NotNil(t, cmd)
}

func TestApp_Update_ViewChanged_Stats(t *testing.T) {
	app := newTestApp(t)

	model, cmd := app.Update(messages.ViewChanged{View: messages.ViewStats})
	updated, ok := model.(*App)
	require.True(t, ok)

	assert.Equal(t, messages.ViewStats, updated.CurrentView())
	assert.NotNil(t, cmd)
}

func TestApp_Update_ViewChanged_Settings(t *testing.T) {
	app := newTestApp(t)

	model, cmd := app.Update(messages.ViewChanged{View: messages.ViewSettings})
	updated, ok := model.(*App)
	require.True(t, ok)

	assert.Equal(t, messages.ViewSettings, updated.CurrentView())
	assert.NotNil(t, cmd)
}

func TestApp_Update_EscFromHelp_ReturnsToMenu(t *testing.T) {
	app := newTestApp(t)
	app.currentView = messages.ViewHelp

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated, ok := model.(*App)
	require.True(t, ok)

	assert.Equal(t, messages.ViewMenu, updated.CurrentView())
}

func TestApp_Update_Quit(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.Quit{})
	require.NotNil(t, cmd)
}

func TestApp_Update_ErrorOccurred(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(messages.ErrorOccurred{Err: assert.AnError})
	updated, ok := model.(*App)
	require.True(t, ok)

	assert.Error(t, updated.Err())
}

func TestApp_View_NotReady(t *testing.T) {
	app := newTestApp(t)

	assert.Contains(t, app.View(), "Initialising")
}

func TestApp_View_Menu(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Contains(t, app.View(), "MapGuess")
}

func TestApp_View_Help(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	app.currentView = messages.ViewHelp

	output := app.View()
	assert.Contains(t, output, "Help")
	assert.Contains(t, output, "Submit guess")
}

func TestApp_WithContext(t *testing.T) {
	app := newTestApp(t)

	result := app.WithContext(context.Background())
	assert.Equal(t, app, result)
}
