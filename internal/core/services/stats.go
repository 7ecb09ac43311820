package services

import (
	"context"
	"fmt"

	"github.com/mapguess/mapguess-cli/internal/core/domain"
	"github.com/mapguess/mapguess-cli/internal/core/ports/driven"
	"github.com/mapguess/mapguess-cli/internal/core/ports/driving"
)

// Ensure StatsService implements the interface.
var _ driving.StatsService = (*StatsService)(nil)

// StatsService reports on recorded sessions.
type StatsService struct {
	store driven.SessionStore
}

// NewStatsService creates a new stats service.
func NewStatsService(store driven.SessionStore) *StatsService {
	return &StatsService{store: store}
}

// Summary aggregates all recorded sessions.
func (s *StatsService) Summary(ctx context.Context) (*domain.StatsSummary, error) {
	summary, err := s.store.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading summary: %w", err)
	}
	return summary, nil
}

// History returns recent session records, most recent first.
func (s *StatsService) History(ctx context.Context, limit int) ([]domain.SessionRecord, error) {
	records, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return records, nil
}
