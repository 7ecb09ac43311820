package driven

import (
	"context"

	"github.com/mapguess/mapguess-cli/internal/core/domain"
)

// SessionStore persists finished game sessions for the stats views.
type SessionStore interface {
	// Save stores a session record.
	Save(ctx context.Context, record domain.SessionRecord) error

	// Get retrieves a session record by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.SessionRecord, error)

	// List returns session records, most recent first, up to limit.
	// A limit of 0 returns all records.
	List(ctx context.Context, limit int) ([]domain.SessionRecord, error)

	// Summary aggregates all stored sessions.
	Summary(ctx context.Context) (*domain.StatsSummary, error)
}
