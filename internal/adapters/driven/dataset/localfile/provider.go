// Package localfile reads the country dataset from a GeoJSON file on disk,
// for offline use or custom datasets.
package localfile

import (
	"context"
	"fmt"
	"os"

	"github.com/mapguess/mapguess-cli/internal/adapters/driven/dataset/geojson"
	"github.com/mapguess/mapguess-cli/internal/core/domain"
	"github.com/mapguess/mapguess-cli/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.DatasetProvider = (*Provider)(nil)

// Provider reads a GeoJSON feature collection from a local file.
type Provider struct {
	path string
}

// NewProvider creates a provider for the given file path.
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// Fetch reads and decodes the dataset file.
func (p *Provider) Fetch(_ context.Context) ([]domain.Country, error) {
	f, err := os.Open(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDatasetUnavailable, p.path)
		}
		return nil, fmt.Errorf("opening dataset file: %w", err)
	}
	defer f.Close()

	countries, err := geojson.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", p.path, err)
	}
	return countries, nil
}

// Source describes where the dataset comes from.
func (p *Provider) Source() string {
	return p.path
}
