// Package storage provides SQLite-based persistence for generated levels
// and validated completion attempts. Uses the pure-Go modernc.org/sqlite
// driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/Lololomus/Arrows-sub000/internal/puzzle"
	"github.com/Lololomus/Arrows-sub000/internal/replay"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// AttemptEntry is one recorded completion attempt.
type AttemptEntry struct {
	ID          int64
	LevelNumber int
	Seed        int64
	Result      string // "win" or "fail"
	Mistakes    int
	Stars       int
	Coins       int
	TimeSeconds int
	Error       string
	CreatedAt   time.Time
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

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS levels (
			level_number INTEGER PRIMARY KEY,
			seed INTEGER NOT NULL,
			payload TEXT NOT NULL,
			solution TEXT NOT NULL,
			difficulty REAL NOT NULL DEFAULT 0,
			arrow_count INTEGER NOT NULL DEFAULT 0,
			special_count INTEGER NOT NULL DEFAULT 0,
			dag_depth INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_number INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			result TEXT NOT NULL,
			mistakes INTEGER NOT NULL DEFAULT 0,
			stars INTEGER NOT NULL DEFAULT 0,
			coins INTEGER NOT NULL DEFAULT 0,
			time_seconds INTEGER NOT NULL DEFAULT 0,
			error TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_level ON attempts(level_number);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveLevel upserts a generated level. The client payload and the
// server-only solve order are stored in separate columns; the payload
// column never contains the solution.
func (s *Store) SaveLevel(l *puzzle.Level) error {
	payload, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("storage: cannot marshal level %d: %w", l.Number, err)
	}
	solution, err := json.Marshal(l.Solution)
	if err != nil {
		return fmt.Errorf("storage: cannot marshal solution for level %d: %w", l.Number, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO levels (level_number, seed, payload, solution, difficulty, arrow_count, special_count, dag_depth)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(level_number) DO UPDATE SET
			seed = excluded.seed,
			payload = excluded.payload,
			solution = excluded.solution,
			difficulty = excluded.difficulty,
			arrow_count = excluded.arrow_count,
			special_count = excluded.special_count,
			dag_depth = excluded.dag_depth
	`, l.Number, l.Seed, string(payload), string(solution),
		l.Meta.Difficulty, l.Meta.ArrowCount, l.Meta.SpecialArrowCount, l.Meta.DAGDepth)
	if err != nil {
		return fmt.Errorf("storage: cannot save level %d: %w", l.Number, err)
	}
	return nil
}

// LoadLevel retrieves a stored level. ok is false when the level is not
// in the database. Legacy arrow type names in old payloads are
// normalized on load.
func (s *Store) LoadLevel(number int) (l *puzzle.Level, ok bool, err error) {
	var payload, solution string
	row := s.db.QueryRow(`SELECT payload, solution FROM levels WHERE level_number = ?`, number)
	if err := row.Scan(&payload, &solution); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("storage: cannot load level %d: %w", number, err)
	}

	var level puzzle.Level
	if err := json.Unmarshal([]byte(payload), &level); err != nil {
		return nil, false, fmt.Errorf("storage: corrupt payload for level %d: %w", number, err)
	}
	if err := json.Unmarshal([]byte(solution), &level.Solution); err != nil {
		return nil, false, fmt.Errorf("storage: corrupt solution for level %d: %w", number, err)
	}

	for _, a := range level.Arrows {
		a.Type = puzzle.NormalizeType(string(a.Type))
	}
	return &level, true, nil
}

// SaveAttempt records one validated completion attempt.
func (s *Store) SaveAttempt(req replay.Request, res replay.Result) (int64, error) {
	result := "fail"
	if res.Valid {
		result = "win"
	}
	out, err := s.db.Exec(`
		INSERT INTO attempts (level_number, seed, result, mistakes, stars, coins, time_seconds, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, req.Level, req.Seed, result, res.Mistakes, res.Stars, res.CoinsEarned, req.TimeSeconds, res.Error)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save attempt: %w", err)
	}
	id, err := out.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read attempt id: %w", err)
	}
	return id, nil
}

// RecentAttempts returns the newest attempts for a level, newest first.
func (s *Store) RecentAttempts(level, limit int) ([]AttemptEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, level_number, seed, result, mistakes, stars, coins, time_seconds, error, created_at
		FROM attempts
		WHERE level_number = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, level, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	var entries []AttemptEntry
	for rows.Next() {
		var e AttemptEntry
		if err := rows.Scan(&e.ID, &e.LevelNumber, &e.Seed, &e.Result, &e.Mistakes,
			&e.Stars, &e.Coins, &e.TimeSeconds, &e.Error, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan attempt: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
