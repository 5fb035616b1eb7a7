// Package storage provides SQLite-based persistence for finished game
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-hangman/internal/game"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// ResultEntry represents one finished game session.
type ResultEntry struct {
	ID           int64
	Difficulty   string
	Word         string
	Won          bool
	AttemptsUsed int
	MaxAttempts  int
	CreatedAt    time.Time
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			word TEXT NOT NULL,
			won INTEGER NOT NULL,
			attempts_used INTEGER NOT NULL,
			max_attempts INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_difficulty ON results(difficulty);
		CREATE INDEX IF NOT EXISTS idx_results_recent ON results(created_at DESC);
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

// SaveResult records a finished session. Returns the ID of the inserted record.
func (s *Store) SaveResult(entry ResultEntry) (int64, error) {
	won := 0
	if entry.Won {
		won = 1
	}

	result, err := s.db.Exec(
		`INSERT INTO results (difficulty, word, won, attempts_used, max_attempts)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.Difficulty, entry.Word, won, entry.AttemptsUsed, entry.MaxAttempts,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent results, newest first.
// An empty difficulty returns results across all difficulties.
func (s *Store) RecentResults(difficulty string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, difficulty, word, won, attempts_used, max_attempts, created_at
	          FROM results`
	args := []any{}
	if difficulty != "" {
		query += " WHERE difficulty = ?"
		args = append(args, difficulty)
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		entry, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Tally returns the all-time win/loss counts. An empty difficulty
// aggregates across all difficulties.
func (s *Store) Tally(difficulty string) (game.Tally, error) {
	var tally game.Tally

	query := `SELECT COALESCE(SUM(won), 0), COALESCE(SUM(1 - won), 0) FROM results`
	args := []any{}
	if difficulty != "" {
		query += " WHERE difficulty = ?"
		args = append(args, difficulty)
	}

	if err := s.db.QueryRow(query, args...).Scan(&tally.Wins, &tally.Losses); err != nil {
		return tally, fmt.Errorf("storage: cannot query tally: %w", err)
	}

	return tally, nil
}

// DifficultyStats contains aggregated statistics for one difficulty.
type DifficultyStats struct {
	Difficulty string
	Games      int
	Wins       int
	Losses     int
	LastPlayed time.Time
}

// WinRate returns the fraction of games won, or 0 with no games.
func (st DifficultyStats) WinRate() float64 {
	if st.Games == 0 {
		return 0
	}
	return float64(st.Wins) / float64(st.Games)
}

// StatsByDifficulty retrieves statistics for every difficulty that has
// recorded games.
func (s *Store) StatsByDifficulty() (map[string]DifficultyStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), SUM(won), SUM(1 - won), MAX(created_at)
		 FROM results
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]DifficultyStats)
	for rows.Next() {
		var st DifficultyStats
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.Games, &st.Wins, &st.Losses, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseCreatedAt(lastPlayed)
		stats[st.Difficulty] = st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearResults deletes all results for the given difficulty, or every
// result if difficulty is empty.
func (s *Store) ClearResults(difficulty string) error {
	var err error
	if difficulty == "" {
		_, err = s.db.Exec("DELETE FROM results")
	} else {
		_, err = s.db.Exec("DELETE FROM results WHERE difficulty = ?", difficulty)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

func scanResult(rows *sql.Rows) (ResultEntry, error) {
	var e ResultEntry
	var won int
	var createdAt any
	if err := rows.Scan(&e.ID, &e.Difficulty, &e.Word, &won, &e.AttemptsUsed, &e.MaxAttempts, &createdAt); err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	e.Won = won != 0
	e.CreatedAt = parseCreatedAt(createdAt)
	return e, nil
}

// parseCreatedAt handles the driver returning either time.Time or string.
func parseCreatedAt(v any) time.Time {
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
