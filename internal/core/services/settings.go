package services

import (
	"fmt"

	"github.com/mapguess/mapguess-cli/internal/core/domain"
	"github.com/mapguess/mapguess-cli/internal/core/ports/driven"
	"github.com/mapguess/mapguess-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDifficulty = "game.difficulty"
	keyRegion     = "game.region"
	keyShowMap    = "game.show_map"
	keyDatasetURL = "dataset.url"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Game: domain.GameSettings{
			Difficulty: s.getDifficulty(defaults.Game.Difficulty),
			Region:     s.getRegion(defaults.Game.Region),
			ShowMap:    s.getBool(keyShowMap, defaults.Game.ShowMap),
		},
		Dataset: domain.DatasetSettings{
			URL: s.getString(keyDatasetURL, defaults.Dataset.URL),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyDifficulty, settings.Game.Difficulty.String()); err != nil {
		return fmt.Errorf("save difficulty: %w", err)
	}
	if err := s.configStore.Set(keyRegion, settings.Game.Region.String()); err != nil {
		return fmt.Errorf("save region: %w", err)
	}
	if err := s.configStore.Set(keyShowMap, settings.Game.ShowMap); err != nil {
		return fmt.Errorf("save show_map: %w", err)
	}
	if err := s.configStore.Set(keyDatasetURL, settings.Dataset.URL); err != nil {
		return fmt.Errorf("save dataset url: %w", err)
	}
	return nil
}

// SetDifficulty updates the matching difficulty.
func (s *SettingsService) SetDifficulty(d domain.Difficulty) error {
	if !d.IsValid() {
		return fmt.Errorf("%w: difficulty %q", domain.ErrInvalidInput, d)
	}
	return s.configStore.Set(keyDifficulty, d.String())
}

// SetRegion updates the region filter.
func (s *SettingsService) SetRegion(r domain.Region) error {
	if !r.IsValid() {
		return fmt.Errorf("%w: region %q", domain.ErrInvalidInput, r)
	}
	return s.configStore.Set(keyRegion, r.String())
}

// SetShowMap toggles silhouette rendering.
func (s *SettingsService) SetShowMap(show bool) error {
	return s.configStore.Set(keyShowMap, show)
}

// SetDatasetURL updates the dataset endpoint.
func (s *SettingsService) SetDatasetURL(url string) error {
	if url == "" {
		return fmt.Errorf("%w: empty dataset url", domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyDatasetURL, url)
}

// Helpers with default fallbacks.

func (s *SettingsService) getDifficulty(fallback domain.Difficulty) domain.Difficulty {
	d := domain.Difficulty(s.configStore.GetString(keyDifficulty))
	if !d.IsValid() {
		return fallback
	}
	return d
}

func (s *SettingsService) getRegion(fallback domain.Region) domain.Region {
	r := domain.Region(s.configStore.GetString(keyRegion))
	if !r.IsValid() {
		return fallback
	}
	return r
}

func (s *SettingsService) getString(key, fallback string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return fallback
}

func (s *SettingsService) getBool(key string, fallback bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetBool(key)
}
