// Package storage provides SQLite-based persistence for player progress
// and run history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultProfile is used when no player name is known (local play).
const DefaultProfile = "local"

// Progress keys.
const (
	KeyLevel               = "level"
	KeyHasSeenInstructions = "has_seen_instructions"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one finished level attempt.
type Run struct {
	ID          int64
	Profile     string
	Level       int
	Seed        int64
	Outcome     string // "win" or "gameover"
	Reason      string
	TimeLeft    float64
	MagnetsUsed int
	CreatedAt   time.Time
}

// Stats contains aggregated run statistics for a profile.
type Stats struct {
	Profile     string
	Runs        int
	Wins        int
	BestLevel   int     // Highest level won
	AvgTimeLeft float64 // Over wins
	LastPlayed  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS progress (
			profile TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (profile, key)
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile TEXT NOT NULL,
			level INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			reason TEXT NOT NULL DEFAULT '',
			time_left REAL NOT NULL DEFAULT 0,
			magnets_used INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_profile ON runs(profile);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(profile, outcome, level DESC, time_left DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// get returns a progress value and whether it exists.
func (s *Store) get(profile, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(
		"SELECT value FROM progress WHERE profile = ? AND key = ?",
		profile, key,
	).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return v, true, nil
}

// set upserts a progress value.
func (s *Store) set(profile, key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (profile, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(profile, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		profile, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}

// Level returns the persisted level for a profile. Defaults to 1.
func (s *Store) Level(profile string) (int, error) {
	v, ok, err := s.get(profile, KeyLevel)
	if err != nil || !ok {
		return 1, err
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 1, nil
	}
	return n, nil
}

// SetLevel stores the level for a profile.
func (s *Store) SetLevel(profile string, level int) error {
	if level < 1 {
		return fmt.Errorf("storage: level must be at least 1, got %d", level)
	}
	return s.set(profile, KeyLevel, strconv.Itoa(level))
}

// AdvanceLevel records a win on level: the stored level becomes level+1
// unless it is already higher. Returns the stored level.
func (s *Store) AdvanceLevel(profile string, level int) (int, error) {
	cur, err := s.Level(profile)
	if err != nil {
		return cur, err
	}
	next := max(cur, level+1)
	if next == cur {
		return cur, nil
	}
	return next, s.SetLevel(profile, next)
}

// HasSeenInstructions reports whether the profile dismissed the
// instructions overlay before.
func (s *Store) HasSeenInstructions(profile string) (bool, error) {
	v, ok, err := s.get(profile, KeyHasSeenInstructions)
	if err != nil || !ok {
		return false, err
	}
	return v == "1", nil
}

// SetInstructionsSeen marks the instructions as seen.
func (s *Store) SetInstructionsSeen(profile string, seen bool) error {
	v := "0"
	if seen {
		v = "1"
	}
	return s.set(profile, KeyHasSeenInstructions, v)
}

// ResetProgress deletes all progress values for a profile. Run history is
// kept.
func (s *Store) ResetProgress(profile string) error {
	_, err := s.db.Exec("DELETE FROM progress WHERE profile = ?", profile)
	if err != nil {
		return fmt.Errorf("storage: cannot reset progress: %w", err)
	}
	return nil
}

// SaveRun records a finished attempt.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (profile, level, seed, outcome, reason, time_left, magnets_used)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Profile, r.Level, r.Seed, r.Outcome, r.Reason, r.TimeLeft, r.MagnetsUsed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the latest runs for a profile, newest first.
func (s *Store) RecentRuns(profile string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, profile, level, seed, outcome, reason, time_left, magnets_used, created_at
		 FROM runs
		 WHERE profile = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		profile, limit,
	)
}

// BestRuns retrieves the best wins for a profile: highest level first,
// then most time left.
func (s *Store) BestRuns(profile string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, profile, level, seed, outcome, reason, time_left, magnets_used, created_at
		 FROM runs
		 WHERE profile = ? AND outcome = 'win'
		 ORDER BY level DESC, time_left DESC, id ASC
		 LIMIT ?`,
		profile, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Profile, &r.Level, &r.Seed, &r.Outcome, &r.Reason,
			&r.TimeLeft, &r.MagnetsUsed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ClearRuns deletes the run history for a profile.
func (s *Store) ClearRuns(profile string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE profile = ?", profile)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a profile.
func (s *Store) Stats(profile string) (*Stats, error) {
	st := &Stats{Profile: profile}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'win' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(CASE WHEN outcome = 'win' THEN level END), 0),
		        COALESCE(AVG(CASE WHEN outcome = 'win' THEN time_left END), 0),
		        MAX(created_at)
		 FROM runs WHERE profile = ?`,
		profile,
	).Scan(&st.Runs, &st.Wins, &st.BestLevel, &st.AvgTimeLeft, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.LastPlayed = parseTimestamp(lastPlayed)

	return st, nil
}

// Profiles lists every profile with progress or runs.
func (s *Store) Profiles() ([]string, error) {
	rows, err := s.db.Query(
		`SELECT profile FROM progress
		 UNION
		 SELECT profile FROM runs
		 ORDER BY profile`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list profiles: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// parseTimestamp handles both time.Time and string datetime values.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
