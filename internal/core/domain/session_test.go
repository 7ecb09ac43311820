package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCountries() []Country {
	return []Country{
		{Name: "Germany", Continent: "Europe"},
		{Name: "France", Continent: "Europe"},
		{Name: "Japan", Continent: "Asia"},
	}
}

func TestNewSession(t *testing.T) {
	s := NewSession("s1", DifficultyNormal, RegionWorld, testCountries(), time.Now())

	assert.Equal(t, "s1", s.ID)
	assert.Equal(t, 3, s.Remaining())
	assert.Nil(t, s.Current)
	assert.False(t, s.Finished())
	assert.Zero(t, s.Total())
}

func TestSession_Advance(t *testing.T) {
	s := NewSession("s1", DifficultyNormal, RegionWorld, testCountries(), time.Now())

	require.NoError(t, s.Advance("Germany"))
	require.NotNil(t, s.Current)
	assert.Equal(t, "Germany", s.Current.Name)
	assert.Equal(t, 2, s.Remaining())

	// A country leaves the pool exactly once.
	assert.ErrorIs(t, s.Advance("Germany"), ErrNotFound)
	assert.ErrorIs(t, s.Advance("Atlantis"), ErrNotFound)
}

func TestSession_Complete(t *testing.T) {
	s := NewSession("s1", DifficultyNormal, RegionWorld, testCountries(), time.Now())

	// Completing with no current round fails.
	assert.ErrorIs(t, s.Complete("Germany", OutcomeCorrect, time.Now()), ErrNoSession)

	require.NoError(t, s.Advance("Germany"))
	require.NoError(t, s.Complete("Germany", OutcomeCorrect, time.Now()))

	assert.Nil(t, s.Current)
	require.Len(t, s.Rounds(), 1)
	assert.Equal(t, "Germany", s.Rounds()[0].Country)
	assert.Equal(t, OutcomeCorrect, s.Rounds()[0].Outcome)
	assert.False(t, s.Finished())
}

func TestSession_FullPlaythrough(t *testing.T) {
	s := NewSession("s1", DifficultyNormal, RegionWorld, testCountries(), time.Now())

	outcomes := []GuessOutcome{OutcomeCorrect, OutcomeWrong, OutcomeSkipped}
	for i, name := range []string{"Germany", "France", "Japan"} {
		require.NoError(t, s.Advance(name))
		require.NoError(t, s.Complete("", outcomes[i], time.Now()))
	}

	assert.True(t, s.Finished())
	assert.False(t, s.FinishedAt.IsZero())

	correct, wrong, skipped := s.Score()
	assert.Equal(t, 1, correct)
	assert.Equal(t, 1, wrong)
	assert.Equal(t, 1, skipped)

	// Counters sum to completed rounds.
	assert.Equal(t, s.Total(), correct+wrong+skipped)
}

func TestSession_RemainingNames(t *testing.T) {
	s := NewSession("s1", DifficultyNormal, RegionWorld, testCountries(), time.Now())

	names := s.RemainingNames()
	assert.ElementsMatch(t, []string{"Germany", "France", "Japan"}, names)

	require.NoError(t, s.Advance("France"))
	assert.ElementsMatch(t, []string{"Germany", "Japan"}, s.RemainingNames())
}

func TestNewSessionRecord(t *testing.T) {
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s := NewSession("s1", DifficultyStrict, RegionEurope, testCountries()[:1], started)

	require.NoError(t, s.Advance("Germany"))
	require.NoError(t, s.Complete("germany", OutcomeCorrect, started.Add(time.Minute)))
	require.True(t, s.Finished())

	rec := NewSessionRecord(s)
	assert.Equal(t, "s1", rec.ID)
	assert.Equal(t, DifficultyStrict, rec.Difficulty)
	assert.Equal(t, RegionEurope, rec.Region)
	assert.Equal(t, 1, rec.Correct)
	assert.Equal(t, 1, rec.Total())
	assert.InDelta(t, 1.0, rec.Accuracy(), 0.0001)
	assert.Equal(t, time.Minute, rec.Duration())
}
