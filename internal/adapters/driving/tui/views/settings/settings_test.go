package settings

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapguess/mapguess-cli/internal/adapters/driving/tui/messages"
	"github.com/mapguess/mapguess-cli/internal/adapters/driving/tui/styles"
	"github.com/mapguess/mapguess-cli/internal/core/domain"
)

type fakeSettingsService struct {
	settings   *domain.AppSettings
	err        error
	difficulty domain.Difficulty
	region     domain.Region
	showMap    *bool
	datasetURL string
}

func (f *fakeSettingsService) Get() (*domain.AppSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.settings == nil {
		return domain.DefaultAppSettings(), nil
	}
	return f.settings, nil
}

func (f *fakeSettingsService) Save(settings *domain.AppSettings) error {
	f.settings = settings
	return f.err
}

func (f *fakeSettingsService) SetDifficulty(d domain.Difficulty) error {
	f.difficulty = d
	return f.err
}

func (f *fakeSettingsService) SetRegion(r domain.Region) error {
	f.region = r
	return f.err
}

func (f *fakeSettingsService) SetShowMap(show bool) error {
	f.showMap = &show
	return f.err
}

func (f *fakeSettingsService) SetDatasetURL(url string) error {
	f.datasetURL = url
	return f.err
}

func loadedView(svc *fakeSettingsService) *View {
	view := NewView(styles.DefaultStyles(), svc)
	view, _ = view.Update(messages.SettingsLoaded{Settings: domain.DefaultAppSettings()})
	return view
}

func TestNewView(t *testing.T) {
	view := NewView(nil, &fakeSettingsService{})

	require.NotNil(t, view)
	assert.Nil(t, view.settings)
}

func TestView_Init_LoadsSettings(t *testing.T) {
	view := NewView(nil, &fakeSettingsService{})

	msg := view.Init()()
	loaded, ok := msg.(messages.SettingsLoaded)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	assert.Equal(t, domain.DefaultDifficulty, loaded.Settings.Game.Difficulty)
}

func TestView_Init_NilService(t *testing.T) {
	view := NewView(nil, nil)

	msg := view.Init()()
	loaded, ok := msg.(messages.SettingsLoaded)
	require.True(t, ok)
	assert.Error(t, loaded.Err)
}

func TestView_View_Loading(t *testing.T) {
	view := NewView(nil, &fakeSettingsService{})

	assert.Contains(t, view.View(), "Loading")
}

func TestView_View_ShowsSettings(t *testing.T) {
	view := loadedView(&fakeSettingsService{})

	output := view.View()
	assert.Contains(t, output, "Difficulty")
	assert.Contains(t, output, "Region")
	assert.Contains(t, output, "Show map")
	assert.Contains(t, output, "Dataset:")
}

func TestView_Navigation(t *testing.T) {
	view := loadedView(&fakeSettingsService{})

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, view.selected)

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, rowCount-1, view.selected)

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 1, view.selected)
}

func TestView_CycleDifficulty(t *testing.T) {
	svc := &fakeSettingsService{}
	view := loadedView(svc)
	view.selected = rowDifficulty

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	require.NotNil(t, cmd)
	saved, ok := cmd().(messages.SettingsSaved)
	require.True(t, ok)
	require.NoError(t, saved.Err)

	// Default is normal; cycling right selects relaxed.
	assert.Equal(t, domain.DifficultyRelaxed, svc.difficulty)
}

func TestView_CycleDifficulty_WrapsBackwards(t *testing.T) {
	svc := &fakeSettingsService{}
	view := NewView(nil, svc)
	settings := domain.DefaultAppSettings()
	settings.Game.Difficulty = domain.DifficultyStrict
	view, _ = view.Update(messages.SettingsLoaded{Settings: settings})
	view.selected = rowDifficulty

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, domain.DifficultyRelaxed, svc.difficulty)
}

func TestView_CycleRegion(t *testing.T) {
	svc := &fakeSettingsService{}
	view := loadedView(svc)
	view.selected = rowRegion

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, domain.RegionAfrica, svc.region)
}

func TestView_ToggleShowMap(t *testing.T) {
	svc := &fakeSettingsService{}
	view := loadedView(svc)
	view.selected = rowShowMap

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()

	require.NotNil(t, svc.showMap)
	assert.False(t, *svc.showMap)
}

func TestView_SettingsSaved_Reloads(t *testing.T) {
	view := loadedView(&fakeSettingsService{})

	_, cmd := view.Update(messages.SettingsSaved{})
	require.NotNil(t, cmd)

	_, ok := cmd().(messages.SettingsLoaded)
	assert.True(t, ok)
}

func TestView_SettingsSaved_Error(t *testing.T) {
	view := loadedView(&fakeSettingsService{})

	view, cmd := view.Update(messages.SettingsSaved{Err: errors.New("disk full")})
	assert.Nil(t, cmd)
	assert.Contains(t, view.View(), "disk full")
}

func TestView_Escape_ReturnsToMenu(t *testing.T) {
	view := loadedView(&fakeSettingsService{})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_Reset(t *testing.T) {
	view := loadedView(&fakeSettingsService{})
	view.selected = 2
	view.err = errors.New("stale")

	view.Reset()

	assert.Equal(t, 0, view.selected)
	assert.NoError(t, view.err)
}

func TestCycleIndex(t *testing.T) {
	tests := []struct {
		name    string
		current int
		delta   int
		length  int
		want    int
	}{
		{"forward", 0, 1, 3, 1},
		{"wrap forward", 2, 1, 3, 0},
		{"backward", 1, -1, 3, 0},
		{"wrap backward", 0, -1, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cycleIndex(tt.current, tt.delta, tt.length))
		})
	}
}
