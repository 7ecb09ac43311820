package driving

import (
	"context"

	"github.com/mapguess/mapguess-cli/internal/core/domain"
)

// StatsService reports on recorded sessions.
type StatsService interface {
	// Summary aggregates all recorded sessions.
	Summary(ctx context.Context) (*domain.StatsSummary, error)

	// History returns recent session records, most recent first.
	History(ctx context.Context, limit int) ([]domain.SessionRecord, error)
}
