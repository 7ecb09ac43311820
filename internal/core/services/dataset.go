package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mapguess/mapguess-cli/internal/core/domain"
	"github.com/mapguess/mapguess-cli/internal/core/ports/driven"
	"github.com/mapguess/mapguess-cli/internal/core/ports/driving"
	"github.com/mapguess/mapguess-cli/internal/logger"
)

// Ensure DatasetService implements the interface.
var _ driving.DatasetService = (*DatasetService)(nil)

// DatasetService syncs the country dataset from a provider into the store.
type DatasetService struct {
	provider driven.DatasetProvider
	store    driven.CountryStore
}

// NewDatasetService creates a new dataset service.
func NewDatasetService(provider driven.DatasetProvider, store driven.CountryStore) *DatasetService {
	return &DatasetService{
		provider: provider,
		store:    store,
	}
}

// Sync fetches the dataset and replaces the stored countries.
func (s *DatasetService) Sync(ctx context.Context) (int, error) {
	if s.provider == nil {
		return 0, domain.ErrDatasetUnavailable
	}

	logger.Section("dataset sync")
	logger.Info("fetching dataset from %s", s.provider.Source())

	countries, err := s.provider.Fetch(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetching dataset: %w", err)
	}
	if len(countries) == 0 {
		return 0, domain.ErrDatasetEmpty
	}

	if err := s.store.ReplaceAll(ctx, countries); err != nil {
		return 0, fmt.Errorf("storing dataset: %w", err)
	}

	logger.Info("synced %d countries", len(countries))
	return len(countries), nil
}

// Info reports counts for the stored dataset.
func (s *DatasetService) Info(ctx context.Context) (*driving.DatasetInfo, error) {
	countries, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading countries: %w", err)
	}

	info := &driving.DatasetInfo{
		Count:       len(countries),
		ByContinent: make(map[string]int),
	}
	for _, c := range countries {
		continent := c.Continent
		if continent == "" {
			continent = "Unknown"
		}
		info.ByContinent[continent]++
	}
	return info, nil
}

// Describe looks up a stored country by name or alias.
func (s *DatasetService) Describe(ctx context.Context, name string) (*domain.Country, error) {
	country, err := s.store.Get(ctx, name)
	if err == nil {
		return country, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("looking up %q: %w", name, err)
	}

	if canon := domain.CanonicalAlias(name); canon != "" {
		country, err = s.store.Get(ctx, canon)
		if err == nil {
			return country, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("looking up %q: %w", canon, err)
		}
	}

	// Case and punctuation differences should not matter for a lookup.
	norm := domain.NormalizeName(name)
	countries, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading countries: %w", err)
	}
	for i := range countries {
		if domain.NormalizeName(countries[i].Name) == norm {
			return &countries[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
