package domain

import "time"

// GuessOutcome classifies the result of one round.
type GuessOutcome string

// Round outcomes.
const (
	// OutcomeCorrect means the guess named the highlighted country.
	OutcomeCorrect GuessOutcome = "correct"

	// OutcomeWrong means the guess named a different country.
	OutcomeWrong GuessOutcome = "wrong"

	// OutcomeSkipped means the round was skipped with an empty guess.
	OutcomeSkipped GuessOutcome = "skipped"
)

// String returns the string representation.
func (o GuessOutcome) String() string {
	return string(o)
}

// IsValid returns true if the outcome is recognised.
func (o GuessOutcome) IsValid() bool {
	switch o {
	case OutcomeCorrect, OutcomeWrong, OutcomeSkipped:
		return true
	default:
		return false
	}
}

// Round records the result of a single completed round.
type Round struct {
	// Country is the name of the highlighted country.
	Country string

	// Guess is the raw text the player entered (empty for skips).
	Guess string

	// Outcome classifies the round.
	Outcome GuessOutcome
}

// Session is a single play-through of the dataset. Each country appears
// exactly once: it leaves the remaining pool when its round completes,
// whatever the outcome. The session finishes when the pool is empty.
type Session struct {
	// ID is the unique session identifier.
	ID string

	// Difficulty is the matching difficulty the session was played at.
	Difficulty Difficulty

	// Region is the region filter the session was played with.
	Region Region

	// Current is the country being guessed, nil once finished.
	Current *Country

	// remaining holds countries not yet played, keyed by name.
	remaining map[string]Country

	// rounds holds completed rounds in play order.
	rounds []Round

	// StartedAt is when the session began.
	StartedAt time.Time

	// FinishedAt is when the last round completed (zero while playing).
	FinishedAt time.Time
}

// NewSession creates a session over the given countries.
// The caller picks the first country via Advance.
func NewSession(id string, difficulty Difficulty, region Region, countries []Country, startedAt time.Time) *Session {
	remaining := make(map[string]Country, len(countries))
	for _, c := range countries {
		remaining[c.Name] = c
	}

	return &Session{
		ID:         id,
		Difficulty: difficulty,
		Region:     region,
		remaining:  remaining,
		StartedAt:  startedAt,
	}
}

// Remaining returns how many countries are still in the pool, not
// counting the current one.
func (s *Session) Remaining() int {
	return len(s.remaining)
}

// RemainingNames returns the names still in the pool.
func (s *Session) RemainingNames() []string {
	names := make([]string, 0, len(s.remaining))
	for name := range s.remaining {
		names = append(names, name)
	}
	return names
}

// Rounds returns the completed rounds in play order.
func (s *Session) Rounds() []Round {
	return s.rounds
}

// Advance takes the named country out of the pool and makes it current.
// Returns ErrNotFound if the name is not in the pool.
func (s *Session) Advance(name string) error {
	country, ok := s.remaining[name]
	if !ok {
		return ErrNotFound
	}
	delete(s.remaining, name)
	s.Current = &country
	return nil
}

// Complete records the outcome of the current round and clears Current.
// Returns ErrNoSession if no round is in progress.
func (s *Session) Complete(guess string, outcome GuessOutcome, now time.Time) error {
	if s.Current == nil {
		return ErrNoSession
	}

	s.rounds = append(s.rounds, Round{
		Country: s.Current.Name,
		Guess:   guess,
		Outcome: outcome,
	})
	s.Current = nil

	if len(s.remaining) == 0 {
		s.FinishedAt = now.UTC()
	}
	return nil
}

// Finished returns true once every country has been played.
func (s *Session) Finished() bool {
	return s.Current == nil && len(s.remaining) == 0 && len(s.rounds) > 0
}

// Score counts rounds by outcome.
func (s *Session) Score() (correct, wrong, skipped int) {
	for _, r := range s.rounds {
		switch r.Outcome {
		case OutcomeCorrect:
			correct++
		case OutcomeWrong:
			wrong++
		case OutcomeSkipped:
			skipped++
		}
	}
	return correct, wrong, skipped
}

// Total returns the number of completed rounds.
func (s *Session) Total() int {
	return len(s.rounds)
}
