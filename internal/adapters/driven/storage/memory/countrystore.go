package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mapguess/mapguess-cli/internal/core/domain"
	"github.com/mapguess/mapguess-cli/internal/core/ports/driven"
)

// Ensure CountryStore implements the interface.
var _ driven.CountryStore = (*CountryStore)(nil)

// CountryStore is an in-memory implementation of driven.CountryStore.
type CountryStore struct {
	mu        sync.RWMutex
	countries map[string]domain.Country
}

// NewCountryStore creates a new in-memory country store.
func NewCountryStore() *CountryStore {
	return &CountryStore{
		countries: make(map[string]domain.Country),
	}
}

// ReplaceAll atomically replaces the stored dataset.
func (s *CountryStore) ReplaceAll(_ context.Context, countries []domain.Country) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.countries = make(map[string]domain.Country, len(countries))
	for _, c := range countries {
		s.countries[c.Name] = c
	}
	return nil
}

// Get retrieves a country by name.
func (s *CountryStore) Get(_ context.Context, name string) (*domain.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	country, ok := s.countries[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &country, nil
}

// List returns all stored countries sorted by name.
func (s *CountryStore) List(_ context.Context) ([]domain.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Country, 0, len(s.countries))
	for _, c := range s.countries {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// Count returns the number of stored countries.
func (s *CountryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.countries), nil
}
