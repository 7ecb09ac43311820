package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/mapguess/mapguess-cli/internal/core/domain"
	"github.com/mapguess/mapguess-cli/internal/core/ports/driving"
)

// executeCommand runs the root command with the given args and captures
// its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// withServices injects stub services for the duration of a test.
func withServices(
	t *testing.T,
	game driving.GameService,
	dataset driving.DatasetService,
	stats driving.StatsService,
	settings driving.SettingsService,
) {
	t.Helper()

	origGame, origDataset := gameService, datasetService
	origStats, origSettings := statsService, settingsService
	gameService, datasetService = game, dataset
	statsService, settingsService = stats, settings
	t.Cleanup(func() {
		gameService, datasetService = origGame, origDataset
		statsService, settingsService = origStats, origSettings
	})
}

type stubDatasetService struct {
	count       int
	info        *driving.DatasetInfo
	country     *domain.Country
	syncErr     error
	infoErr     error
	describeErr error
}

func (s *stubDatasetService) Sync(_ context.Context) (int, error) {
	return s.count, s.syncErr
}

func (s *stubDatasetService) Info(_ context.Context) (*driving.DatasetInfo, error) {
	return s.info, s.infoErr
}

func (s *stubDatasetService) Describe(_ context.Context, _ string) (*domain.Country, error) {
	if s.describeErr != nil {
		return nil, s.describeErr
	}
	if s.country == nil {
		return nil, domain.ErrNotFound
	}
	return s.country, nil
}

type stubStatsService struct {
	summary *domain.StatsSummary
	history []domain.SessionRecord
	err     error
}

func (s *stubStatsService) Summary(_ context.Context) (*domain.StatsSummary, error) {
	return s.summary, s.err
}

func (s *stubStatsService) History(_ context.Context, _ int) ([]domain.SessionRecord, error) {
	return s.history, s.err
}

type stubSettingsService struct {
	settings   *domain.AppSettings
	difficulty domain.Difficulty
	region     domain.Region
	showMap    *bool
	datasetURL string
	err        error
}

func (s *stubSettingsService) Get() (*domain.AppSettings, error) {
	if s.settings == nil {
		return domain.DefaultAppSettings(), s.err
	}
	return s.settings, s.err
}

func (s *stubSettingsService) Save(settings *domain.AppSettings) error {
	s.settings = settings
	return s.err
}

func (s *stubSettingsService) SetDifficulty(d domain.Difficulty) error {
	s.difficulty = d
	return s.err
}

func (s *stubSettingsService) SetRegion(r domain.Region) error {
	s.region = r
	return s.err
}

func (s *stubSettingsService) SetShowMap(show bool) error {
	s.showMap = &show
	return s.err
}

func (s *stubSettingsService) SetDatasetURL(url string) error {
	s.datasetURL = url
	return s.err
}

// sampleRecord returns a finished session record for display tests.
func sampleRecord() domain.SessionRecord {
	finished := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return domain.SessionRecord{
		ID:         "s1",
		Difficulty: domain.DifficultyNormal,
		Region:     domain.RegionEurope,
		Correct:    12,
		Wrong:      3,
		Skipped:    1,
		StartedAt:  finished.Add(-10 * time.Minute),
		FinishedAt: finished,
	}
}
