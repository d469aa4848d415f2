// Package storage persists finished games and per-mode high scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	blocks "github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished game.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Mode      string
	Score     int
	Lines     int
	Level     int
	CreatedAt time.Time
}

// GameResult is what a host records when a game ends.
type GameResult struct {
	GameID string
	Mode   blocks.Mode
	Score  int
	Lines  int
	Level  int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			lines INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_mode ON scores(mode);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(mode, score DESC);

		CREATE TABLE IF NOT EXISTS high_scores (
			mode TEXT PRIMARY KEY,
			score INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SaveScore records a finished game and returns the inserted row id.
func (s *Store) SaveScore(r GameResult) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, mode, score, lines, level) VALUES (?, ?, ?, ?, ?)",
		r.GameID, r.Mode.String(), r.Score, r.Lines, r.Level,
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

// TopScores returns the best finished games for a mode, highest first.
func (s *Store) TopScores(mode blocks.Mode, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, mode, score, lines, level, created_at
		 FROM scores
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mode.String(), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Mode, &e.Score, &e.Lines, &e.Level, &createdAt); err != nil {
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

// BestScore returns the highest recorded game for a mode, or 0.
func (s *Store) BestScore(mode blocks.Mode) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE mode = ?",
		mode.String(),
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes the game history and the stored high score of a mode.
func (s *Store) ClearScores(mode blocks.Mode) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec("DELETE FROM scores WHERE mode = ?", mode.String()); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM high_scores WHERE mode = ?", mode.String()); err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// ModeStats contains aggregated statistics for a mode.
type ModeStats struct {
	Mode       string
	GamesCount int
	BestScore  int
	AvgScore   float64
	TotalLines int
	MaxLevel   int
	LastPlayed time.Time
}

// AllModeStats returns statistics for every mode that has been played.
func (s *Store) AllModeStats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), MAX(score), AVG(score), SUM(lines), MAX(level), MAX(created_at)
		 FROM scores
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var st ModeStats
		var lastPlayed any
		if err := rows.Scan(&st.Mode, &st.GamesCount, &st.BestScore, &st.AvgScore, &st.TotalLines, &st.MaxLevel, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTimestamp(lastPlayed)
		stats[st.Mode] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// HighScores returns the engine-facing view of the high_scores table.
func (s *Store) HighScores() blocks.HighScoreStore {
	return highScoreTable{db: s.db}
}

// highScoreTable keeps one row per mode.
type highScoreTable struct {
	db *sql.DB
}

var _ blocks.HighScoreStore = highScoreTable{}

// Load returns the stored high score of every known mode. Rows with an
// unknown mode key are skipped.
func (t highScoreTable) Load() (map[blocks.Mode]int, error) {
	rows, err := t.db.Query("SELECT mode, score FROM high_scores")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	out := make(map[blocks.Mode]int, len(blocks.Modes()))
	for _, m := range blocks.Modes() {
		out[m] = 0
	}
	for rows.Next() {
		var key string
		var score int
		if err := rows.Scan(&key, &score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan high score: %w", err)
		}
		m, err := blocks.ParseMode(key)
		if err != nil {
			continue
		}
		out[m] = score
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// Save stores the high scores in one transaction. A row is only ever
// raised, so concurrent sessions cannot overwrite a better score.
func (t highScoreTable) Save(scores map[blocks.Mode]int) error {
	tx, err := t.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	for _, m := range blocks.Modes() {
		_, err := tx.Exec(
			`INSERT INTO high_scores (mode, score, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			 ON CONFLICT(mode) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at
			 WHERE excluded.score > high_scores.score`,
			m.String(), scores[m],
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save high score %s: %w", m, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// parseTimestamp accepts what the driver returns for DATETIME columns.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
