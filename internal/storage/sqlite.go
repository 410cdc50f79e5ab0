// Package storage provides SQLite-based persistence for scores and saved
// endgames. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies; endgame snapshots are stored as msgpack blobs.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-breakout/internal/breakout"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	Player    string
	Score     int
	Level     int
	CreatedAt time.Time
}

// EndgameInfo describes a saved endgame without its snapshot payload.
type EndgameInfo struct {
	Name       string
	ConfigName string
	Level      int
	Score      int
	Lives      int
	CreatedAt  time.Time
}

// ErrEndgameExists is returned by SaveEndgame when the name is taken and
// overwrite was not requested.
var ErrEndgameExists = errors.New("storage: endgame already exists")

// ErrEndgameNotFound is returned when no endgame carries the given name.
var ErrEndgameNotFound = errors.New("storage: endgame not found")

var endgameNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ValidEndgameName reports whether a save name is acceptable: letters,
// digits and underscores only.
func ValidEndgameName(name string) bool {
	return endgameNameRe.MatchString(name)
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);

		CREATE TABLE IF NOT EXISTS endgames (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			config_name TEXT NOT NULL DEFAULT '',
			level INTEGER NOT NULL,
			score INTEGER NOT NULL,
			lives INTEGER NOT NULL,
			snapshot BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_endgames_name ON endgames(name);
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

// SaveScore records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveScore(player string, score, level int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (player, score, level) VALUES (?, ?, ?)",
		player, score, level,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores, ordered by score descending.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, level, created_at
		 FROM scores
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Score, &e.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score, 0 when none exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all recorded scores.
func (s *Store) ClearScores() error {
	if _, err := s.db.Exec("DELETE FROM scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveEndgame persists a snapshot under snap.Name. When overwrite is false
// and the name is taken, the call fails with ErrEndgameExists.
func (s *Store) SaveEndgame(snap breakout.Snapshot, overwrite bool) error {
	if !ValidEndgameName(snap.Name) {
		return fmt.Errorf("storage: invalid endgame name %q (letters, digits and underscores only)", snap.Name)
	}

	blob, err := msgpack.Marshal(snap)
	if err != nil {
		return fmt.Errorf("storage: cannot encode endgame: %w", err)
	}

	if overwrite {
		_, err = s.db.Exec(
			`INSERT INTO endgames (name, config_name, level, score, lives, snapshot)
			 VALUES (?, ?, ?, ?, ?, ?)
			 ON CONFLICT(name) DO UPDATE SET
			   config_name = excluded.config_name,
			   level = excluded.level,
			   score = excluded.score,
			   lives = excluded.lives,
			   snapshot = excluded.snapshot,
			   created_at = CURRENT_TIMESTAMP`,
			snap.Name, snap.ConfigName, snap.Level, snap.Score, snap.Lives, blob,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save endgame: %w", err)
		}
		return nil
	}

	exists, err := s.EndgameExists(snap.Name)
	if err != nil {
		return err
	}
	if exists {
		return ErrEndgameExists
	}

	_, err = s.db.Exec(
		`INSERT INTO endgames (name, config_name, level, score, lives, snapshot)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		snap.Name, snap.ConfigName, snap.Level, snap.Score, snap.Lives, blob,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save endgame: %w", err)
	}
	return nil
}

// LoadEndgame retrieves and decodes a saved snapshot by name.
func (s *Store) LoadEndgame(name string) (breakout.Snapshot, error) {
	var snap breakout.Snapshot
	var blob []byte

	err := s.db.QueryRow("SELECT snapshot FROM endgames WHERE name = ?", name).Scan(&blob)
	if err == sql.ErrNoRows {
		return snap, ErrEndgameNotFound
	}
	if err != nil {
		return snap, fmt.Errorf("storage: cannot query endgame: %w", err)
	}

	if err := msgpack.Unmarshal(blob, &snap); err != nil {
		return snap, fmt.Errorf("storage: cannot decode endgame %q: %w", name, err)
	}
	return snap, nil
}

// ListEndgames returns all saved endgames, newest first, without payloads.
func (s *Store) ListEndgames() ([]EndgameInfo, error) {
	rows, err := s.db.Query(
		`SELECT name, config_name, level, score, lives, created_at
		 FROM endgames
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query endgames: %w", err)
	}
	defer rows.Close()

	var infos []EndgameInfo
	for rows.Next() {
		var info EndgameInfo
		var createdAt any
		if err := rows.Scan(&info.Name, &info.ConfigName, &info.Level, &info.Score, &info.Lives, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.CreatedAt = parseTimestamp(createdAt)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// EndgameExists reports whether a saved endgame carries the given name.
func (s *Store) EndgameExists(name string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM endgames WHERE name = ?", name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query endgame: %w", err)
	}
	return count > 0, nil
}

// DeleteEndgame removes a saved endgame by name.
func (s *Store) DeleteEndgame(name string) error {
	result, err := s.db.Exec("DELETE FROM endgames WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete endgame: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot check delete result: %w", err)
	}
	if affected == 0 {
		return ErrEndgameNotFound
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or string.
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
