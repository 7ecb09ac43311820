package driving

import (
	"context"

	"github.com/mapguess/mapguess-cli/internal/core/domain"
)

// GuessResult describes the outcome of one submitted guess.
type GuessResult struct {
	// Outcome classifies the round.
	Outcome domain.GuessOutcome

	// Answer is the name of the country that was highlighted.
	Answer string

	// Next is the next country to guess, nil when the session finished.
	Next *domain.Country

	// Finished is true once every country has been played.
	Finished bool
}

// SessionState is a snapshot of the running session for display.
type SessionState struct {
	// Current is the country being guessed.
	Current *domain.Country

	// Correct, Wrong and Skipped count completed rounds by outcome.
	Correct int
	Wrong   int
	Skipped int

	// Remaining counts countries still in the pool.
	Remaining int

	// Total counts all countries in the session.
	Total int
}

// GameService runs guessing sessions over the synced dataset.
type GameService interface {
	// Start begins a new session using the configured difficulty and
	// region. Returns domain.ErrDatasetEmpty if no countries are stored
	// for the region.
	Start(ctx context.Context) (*SessionState, error)

	// Guess submits a guess for the current country. An empty guess
	// skips the round. Returns domain.ErrNoSession if no session is in
	// progress and domain.ErrSessionFinished after the last round.
	Guess(ctx context.Context, guess string) (*GuessResult, error)

	// State returns a snapshot of the running session.
	// Returns domain.ErrNoSession if no session is in progress.
	State(ctx context.Context) (*SessionState, error)

	// Abandon discards the running session without recording it.
	Abandon(ctx context.Context) error
}
