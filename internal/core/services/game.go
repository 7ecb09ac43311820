package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mapguess/mapguess-cli/internal/core/domain"
	"github.com/mapguess/mapguess-cli/internal/core/ports/driven"
	"github.com/mapguess/mapguess-cli/internal/core/ports/driving"
	"github.com/mapguess/mapguess-cli/internal/logger"
)

// Ensure GameService implements the interface.
var _ driving.GameService = (*GameService)(nil)

// GameService runs guessing sessions. A single session is in progress at
// a time; the mutex guards it against concurrent TUI commands.
type GameService struct {
	mu sync.Mutex

	countryStore driven.CountryStore
	sessionStore driven.SessionStore
	settings     driving.SettingsService

	session *domain.Session
	matcher *domain.Matcher

	// pick selects a random index in [0, n). Overridable for tests.
	pick func(n int) int

	// now returns the current time. Overridable for tests.
	now func() time.Time
}

// NewGameService creates a new game service.
func NewGameService(
	countryStore driven.CountryStore,
	sessionStore driven.SessionStore,
	settings driving.SettingsService,
) *GameService {
	return &GameService{
		countryStore: countryStore,
		sessionStore: sessionStore,
		settings:     settings,
		pick:         rand.IntN,
		now:          time.Now,
	}
}

// Start begins a new session using the configured difficulty and region.
// Any session already in progress is discarded.
func (s *GameService) Start(ctx context.Context) (*driving.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	difficulty := domain.DefaultDifficulty
	region := domain.DefaultRegion
	if s.settings != nil {
		if settings, err := s.settings.Get(); err == nil {
			difficulty = settings.Game.Difficulty
			region = settings.Game.Region
		}
	}

	countries, err := s.countryStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading countries: %w", err)
	}

	pool := make([]domain.Country, 0, len(countries))
	for _, c := range countries {
		if region.Matches(c) {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		return nil, domain.ErrDatasetEmpty
	}

	session := domain.NewSession(uuid.NewString(), difficulty, region, pool, s.now().UTC())
	if err := session.Advance(pool[s.pick(len(pool))].Name); err != nil {
		return nil, fmt.Errorf("picking first country: %w", err)
	}

	s.session = session
	s.matcher = domain.NewMatcher(difficulty)

	logger.Info("session %s started: %d countries, difficulty=%s region=%s",
		session.ID, len(pool), difficulty, region)

	return s.stateLocked(), nil
}

// Guess submits a guess for the current country. An empty guess skips the
// round, matching the original game's behaviour.
func (s *GameService) Guess(ctx context.Context, guess string) (*driving.GuessResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, domain.ErrNoSession
	}
	if s.session.Finished() {
		return nil, domain.ErrSessionFinished
	}

	current := s.session.Current
	if current == nil {
		return nil, domain.ErrNoSession
	}

	outcome := domain.OutcomeSkipped
	if domain.NormalizeName(guess) != "" {
		if s.matcher.Match(guess, *current) {
			outcome = domain.OutcomeCorrect
		} else {
			outcome = domain.OutcomeWrong
		}
	}

	if err := s.session.Complete(guess, outcome, s.now()); err != nil {
		return nil, fmt.Errorf("completing round: %w", err)
	}
	logger.Debug("round %d: %s -> %s", s.session.Total(), current.Name, outcome)

	result := &driving.GuessResult{
		Outcome: outcome,
		Answer:  current.Name,
	}

	if s.session.Remaining() == 0 {
		result.Finished = true
		if err := s.recordLocked(ctx); err != nil {
			return nil, err
		}
		return result, nil
	}

	names := s.session.RemainingNames()
	if err := s.session.Advance(names[s.pick(len(names))]); err != nil {
		return nil, fmt.Errorf("advancing session: %w", err)
	}
	result.Next = s.session.Current

	return result, nil
}

// State returns a snapshot of the running session.
func (s *GameService) State(_ context.Context) (*driving.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, domain.ErrNoSession
	}
	return s.stateLocked(), nil
}

// Abandon discards the running session without recording it.
func (s *GameService) Abandon(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		logger.Info("session %s abandoned after %d rounds", s.session.ID, s.session.Total())
	}
	s.session = nil
	s.matcher = nil
	return nil
}

// recordLocked persists the finished session. Caller must hold the lock.
func (s *GameService) recordLocked(ctx context.Context) error {
	record := domain.NewSessionRecord(s.session)
	if err := s.sessionStore.Save(ctx, record); err != nil {
		return fmt.Errorf("recording session: %w", err)
	}
	logger.Info("session %s finished: %d/%d correct", record.ID, record.Correct, record.Total())
	return nil
}

// stateLocked builds a display snapshot. Caller must hold the lock.
func (s *GameService) stateLocked() *driving.SessionState {
	correct, wrong, skipped := s.session.Score()

	total := s.session.Total() + s.session.Remaining()
	if s.session.Current != nil {
		total++
	}

	return &driving.SessionState{
		Current:   s.session.Current,
		Correct:   correct,
		Wrong:     wrong,
		Skipped:   skipped,
		Remaining: s.session.Remaining(),
		Total:     total,
	}
}
