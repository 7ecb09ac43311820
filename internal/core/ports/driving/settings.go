package driving

import (
	"github.com/mapguess/mapguess-cli/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetDifficulty updates the matching difficulty.
	SetDifficulty(d domain.Difficulty) error

	// SetRegion updates the region filter.
	SetRegion(r domain.Region) error

	// SetShowMap toggles silhouette rendering.
	SetShowMap(show bool) error

	// SetDatasetURL updates the dataset endpoint.
	SetDatasetURL(url string) error
}
