// Package naturalearth fetches the country dataset from the Natural Earth
// GeoJSON endpoint over HTTP.
package naturalearth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mapguess/mapguess-cli/internal/adapters/driven/dataset/geojson"
	"github.com/mapguess/mapguess-cli/internal/core/domain"
	"github.com/mapguess/mapguess-cli/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.DatasetProvider = (*Provider)(nil)

// Default configuration values.
const (
	// DefaultTimeout bounds the dataset download.
	DefaultTimeout = 60 * time.Second

	// maxResponseSize caps the downloaded payload at 64 MiB. The 1:110m
	// dataset is well under 1 MiB; anything near the cap is not it.
	maxResponseSize = 64 << 20
)

// Config holds configuration for the Natural Earth provider.
type Config struct {
	// URL is the GeoJSON endpoint (default: domain.DefaultDatasetURL).
	URL string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration
}

// Provider downloads and decodes the Natural Earth countries GeoJSON.
type Provider struct {
	client *http.Client
	url    string
}

// NewProvider creates a new Natural Earth dataset provider.
func NewProvider(cfg Config) *Provider {
	if cfg.URL == "" {
		cfg.URL = domain.DefaultDatasetURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Provider{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		url: cfg.URL,
	}
}

// Fetch retrieves and decodes the dataset.
func (p *Provider) Fetch(ctx context.Context) ([]domain.Country, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatasetUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d from %s", domain.ErrDatasetUnavailable, resp.StatusCode, p.url)
	}

	countries, err := geojson.Decode(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	return countries, nil
}

// Source describes where the dataset comes from.
func (p *Provider) Source() string {
	return p.url
}
