package driven

import (
	"context"

	"github.com/mapguess/mapguess-cli/internal/core/domain"
)

// DatasetProvider fetches the country dataset from an external source
// (the Natural Earth GeoJSON endpoint, or a local file).
type DatasetProvider interface {
	// Fetch retrieves and decodes the dataset.
	Fetch(ctx context.Context) ([]domain.Country, error)

	// Source describes where the dataset comes from, for display.
	Source() string
}
