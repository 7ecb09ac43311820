package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mapguess/mapguess-cli/internal/core/domain"
	"github.com/mapguess/mapguess-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of driven.SessionStore.
type SessionStore struct {
	mu      sync.RWMutex
	records map[string]domain.SessionRecord
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		records: make(map[string]domain.SessionRecord),
	}
}

// Save stores a session record.
func (s *SessionStore) Save(_ context.Context, record domain.SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.ID] = record
	return nil
}

// Get retrieves a session record by ID.
func (s *SessionStore) Get(_ context.Context, id string) (*domain.SessionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// List returns session records, most recent first, up to limit.
func (s *SessionStore) List(_ context.Context, limit int) ([]domain.SessionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.SessionRecord, 0, len(s.records))
	for _, record := range s.records {
		result = append(result, record)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].FinishedAt.After(result[j].FinishedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Summary aggregates all stored sessions.
func (s *SessionStore) Summary(_ context.Context) (*domain.StatsSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := &domain.StatsSummary{}
	for _, record := range s.records {
		summary.GamesPlayed++
		summary.TotalRounds += record.Total()
		summary.TotalCorrect += record.Correct
		if record.Correct > summary.BestCorrect {
			summary.BestCorrect = record.Correct
		}
		if record.FinishedAt.After(summary.LastPlayed) {
			summary.LastPlayed = record.FinishedAt
		}
	}
	return summary, nil
}
