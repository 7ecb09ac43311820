package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/mapguess/mapguess-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/mapguess/mapguess-cli/internal/core/domain"
	"github.com/mapguess/mapguess-cli/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to the
// country and session store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.mapguess/data/mapguess.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".mapguess", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "mapguess.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// CountryStore returns a CountryStore interface backed by this store.
func (s *Store) CountryStore() driven.CountryStore {
	return &countryStore{store: s}
}

// SessionStore returns a SessionStore interface backed by this store.
func (s *Store) SessionStore() driven.SessionStore {
	return &sessionStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Country Store ====================

// countryStore implements driven.CountryStore.
type countryStore struct {
	store *Store
}

var _ driven.CountryStore = (*countryStore)(nil)

// ReplaceAll atomically replaces the stored dataset in one transaction.
func (s *countryStore) ReplaceAll(ctx context.Context, countries []domain.Country) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, "DELETE FROM countries"); err != nil {
		return fmt.Errorf("clearing countries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO countries (name, iso_a2, iso_a3, continent, population, geometry)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range countries {
		geometryJSON, err := json.Marshal(c.Polygons)
		if err != nil {
			return fmt.Errorf("marshalling geometry for %s: %w", c.Name, err)
		}
		if _, err := stmt.ExecContext(ctx, c.Name, c.ISOA2, c.ISOA3, c.Continent, c.Population, string(geometryJSON)); err != nil {
			return fmt.Errorf("inserting %s: %w", c.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// Get retrieves a country by name.
func (s *countryStore) Get(ctx context.Context, name string) (*domain.Country, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT name, iso_a2, iso_a3, continent, population, geometry
		FROM countries WHERE name = ?
	`, name)

	country, err := scanCountry(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return country, nil
}

// List returns all stored countries sorted by name.
func (s *countryStore) List(ctx context.Context) ([]domain.Country, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT name, iso_a2, iso_a3, continent, population, geometry
		FROM countries ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying countries: %w", err)
	}
	defer rows.Close()

	var countries []domain.Country //nolint:prealloc // size unknown from query
	for rows.Next() {
		country, err := scanCountry(rows.Scan)
		if err != nil {
			return nil, err
		}
		countries = append(countries, *country)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating countries: %w", err)
	}
	return countries, nil
}

// Count returns the number of stored countries.
func (s *countryStore) Count(ctx context.Context) (int, error) {
	var count int
	row := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM countries")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting countries: %w", err)
	}
	return count, nil
}

// scanCountry reads one countries row via the given scan function.
func scanCountry(scan func(...any) error) (*domain.Country, error) {
	var country domain.Country
	var geometryJSON string
	if err := scan(&country.Name, &country.ISOA2, &country.ISOA3,
		&country.Continent, &country.Population, &geometryJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning country: %w", err)
	}

	if err := json.Unmarshal([]byte(geometryJSON), &country.Polygons); err != nil {
		return nil, fmt.Errorf("unmarshalling geometry: %w", err)
	}
	return &country, nil
}

// ==================== Session Store ====================

// sessionStore implements driven.SessionStore.
type sessionStore struct {
	store *Store
}

var _ driven.SessionStore = (*sessionStore)(nil)

// Save stores a session record.
func (s *sessionStore) Save(ctx context.Context, record domain.SessionRecord) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO sessions (id, difficulty, region, correct, wrong, skipped, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			difficulty = excluded.difficulty,
			region = excluded.region,
			correct = excluded.correct,
			wrong = excluded.wrong,
			skipped = excluded.skipped,
			started_at = excluded.started_at,
			finished_at = excluded.finished_at
	`, record.ID, record.Difficulty.String(), record.Region.String(),
		record.Correct, record.Wrong, record.Skipped,
		record.StartedAt.UTC(), record.FinishedAt.UTC())

	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// Get retrieves a session record by ID.
func (s *sessionStore) Get(ctx context.Context, id string) (*domain.SessionRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, difficulty, region, correct, wrong, skipped, started_at, finished_at
		FROM sessions WHERE id = ?
	`, id)

	record, err := scanSession(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return record, nil
}

// List returns session records, most recent first, up to limit.
func (s *sessionStore) List(ctx context.Context, limit int) ([]domain.SessionRecord, error) {
	query := `
		SELECT id, difficulty, region, correct, wrong, skipped, started_at, finished_at
		FROM sessions ORDER BY finished_at DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var records []domain.SessionRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		record, err := scanSession(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return records, nil
}

// Summary aggregates all stored sessions.
func (s *sessionStore) Summary(ctx context.Context) (*domain.StatsSummary, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(correct + wrong + skipped), 0),
			COALESCE(SUM(correct), 0),
			COALESCE(MAX(correct), 0)
		FROM sessions
	`)

	var summary domain.StatsSummary
	if err := row.Scan(&summary.GamesPlayed, &summary.TotalRounds,
		&summary.TotalCorrect, &summary.BestCorrect); err != nil {
		return nil, fmt.Errorf("scanning summary: %w", err)
	}

	// MAX(finished_at) loses the column's declared type, so the driver
	// hands back a raw string. Read the column directly instead and let
	// the driver decode it, as scanSession does.
	var lastPlayed sql.NullTime
	err := s.store.db.QueryRowContext(ctx,
		"SELECT finished_at FROM sessions ORDER BY finished_at DESC LIMIT 1",
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("scanning last played: %w", err)
	}
	if lastPlayed.Valid {
		summary.LastPlayed = lastPlayed.Time
	}
	return &summary, nil
}

// scanSession reads one sessions row via the given scan function.
func scanSession(scan func(...any) error) (*domain.SessionRecord, error) {
	var record domain.SessionRecord
	var difficulty, region string
	var startedAt, finishedAt sql.NullTime
	if err := scan(&record.ID, &difficulty, &region,
		&record.Correct, &record.Wrong, &record.Skipped,
		&startedAt, &finishedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	record.Difficulty = domain.Difficulty(difficulty)
	record.Region = domain.Region(region)
	if startedAt.Valid {
		record.StartedAt = startedAt.Time
	}
	if finishedAt.Valid {
		record.FinishedAt = finishedAt.Time
	}
	return &record, nil
}
