package domain

import "time"

// SessionRecord is the persisted summary of a finished session.
type SessionRecord struct {
	// ID is the session identifier.
	ID string

	// Difficulty the session was played at.
	Difficulty Difficulty

	// Region the session was played with.
	Region Region

	// Correct, Wrong and Skipped count rounds by outcome.
	Correct int
	Wrong   int
	Skipped int

	// StartedAt and FinishedAt bound the session.
	StartedAt  time.Time
	FinishedAt time.Time
}

// Total returns the number of rounds in the session.
func (r SessionRecord) Total() int {
	return r.Correct + r.Wrong + r.Skipped
}

// Accuracy returns the fraction of rounds guessed correctly, 0 for an
// empty session.
func (r SessionRecord) Accuracy() float64 {
	total := r.Total()
	if total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(total)
}

// Duration returns how long the session took.
func (r SessionRecord) Duration() time.Duration {
	if r.FinishedAt.IsZero() || r.StartedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// NewSessionRecord summarises a finished session.
func NewSessionRecord(s *Session) SessionRecord {
	correct, wrong, skipped := s.Score()
	return SessionRecord{
		ID:         s.ID,
		Difficulty: s.Difficulty,
		Region:     s.Region,
		Correct:    correct,
		Wrong:      wrong,
		Skipped:    skipped,
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
	}
}

// StatsSummary aggregates all recorded sessions.
type StatsSummary struct {
	// GamesPlayed is the number of finished sessions.
	GamesPlayed int

	// TotalRounds sums rounds across all sessions.
	TotalRounds int

	// TotalCorrect sums correct guesses across all sessions.
	TotalCorrect int

	// BestCorrect is the highest correct count in a single session.
	BestCorrect int

	// LastPlayed is the finish time of the most recent session.
	LastPlayed time.Time
}

// Accuracy returns the lifetime fraction of correct guesses.
func (s StatsSummary) Accuracy() float64 {
	if s.TotalRounds == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(s.TotalRounds)
}
