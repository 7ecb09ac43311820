package driving

import (
	"context"

	"github.com/mapguess/mapguess-cli/internal/core/domain"
)

// DatasetInfo summarises the stored dataset.
type DatasetInfo struct {
	// Count is the number of stored countries.
	Count int

	// ByContinent maps continent names to country counts.
	ByContinent map[string]int
}

// DatasetService manages the country dataset.
type DatasetService interface {
	// Sync fetches the dataset from its provider and replaces the
	// stored countries. Returns the number of countries synced.
	Sync(ctx context.Context) (int, error)

	// Info reports counts for the stored dataset.
	Info(ctx context.Context) (*DatasetInfo, error)

	// Describe looks up a stored country by name or alias.
	// Returns domain.ErrNotFound when no country matches.
	Describe(ctx context.Context, name string) (*domain.Country, error)
}
