package storage

import (
	"errors"
	"fmt"

	blocks "github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

// Backend kinds accepted by OpenBackend.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// ErrNoHistory is returned when game history is requested from a backend
// that does not keep it.
var ErrNoHistory = errors.New("storage: backend keeps no game history")

// Backend pairs the high-score store the engine reads and writes with the
// optional game history.
type Backend struct {
	Kind       string
	HighScores blocks.HighScoreStore
	History    *Store // nil unless Kind is BackendSQLite
}

// OpenBackend opens the configured backend. dbPath is used by sqlite and
// highScoreFile by the text file store.
func OpenBackend(kind, dbPath, highScoreFile string) (*Backend, error) {
	switch kind {
	case BackendSQLite:
		st, err := Open(dbPath)
		if err != nil {
			return nil, err
		}
		return &Backend{Kind: kind, HighScores: st.HighScores(), History: st}, nil
	case BackendFile:
		fs, err := NewTextFileStore(highScoreFile)
		if err != nil {
			return nil, err
		}
		return &Backend{Kind: kind, HighScores: fs}, nil
	case BackendMemory:
		return MemoryBackend(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", kind)
	}
}

// MemoryBackend keeps high scores for the life of the process only.
func MemoryBackend() *Backend {
	return &Backend{Kind: BackendMemory, HighScores: blocks.NewMemoryStore()}
}

// RecordGame appends a finished game to the history.
func (b *Backend) RecordGame(r GameResult) error {
	if b == nil || b.History == nil {
		return ErrNoHistory
	}
	_, err := b.History.SaveScore(r)
	return err
}

// Close releases the database, if any.
func (b *Backend) Close() error {
	if b == nil || b.History == nil {
		return nil
	}
	return b.History.Close()
}
