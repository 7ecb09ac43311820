package driven

import (
	"context"

	"github.com/mapguess/mapguess-cli/internal/core/domain"
)

// CountryStore persists the synced country dataset.
type CountryStore interface {
	// ReplaceAll atomically replaces the stored dataset.
	ReplaceAll(ctx context.Context, countries []domain.Country) error

	// Get retrieves a country by name.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, name string) (*domain.Country, error)

	// List returns all stored countries.
	List(ctx context.Context) ([]domain.Country, error)

	// Count returns the number of stored countries.
	Count(ctx context.Context) (int, error)
}
