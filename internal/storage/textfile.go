package storage

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	blocks "github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

// TextFileStore keeps high scores in a small text file, one "mode=score"
// line per mode. A file holding a single bare integer is read as the
// normal-mode score.
type TextFileStore struct {
	mu   sync.Mutex // serializes read-merge-write in Save
	path string
}

var _ blocks.HighScoreStore = (*TextFileStore)(nil)

// NewTextFileStore returns a store backed by path. The file is created on
// the first Save.
func NewTextFileStore(path string) (*TextFileStore, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &TextFileStore{path: path}, nil
}

// Path returns the resolved file path.
func (s *TextFileStore) Path() string {
	return s.path
}

// Load reads the file. A missing file yields zeros for every mode;
// malformed lines are ignored.
func (s *TextFileStore) Load() (map[blocks.Mode]int, error) {
	out := make(map[blocks.Mode]int, len(blocks.Modes()))
	for _, m := range blocks.Modes() {
		out[m] = 0
	}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return out, nil
	}
	if err != nil {
		return out, fmt.Errorf("storage: cannot read %s: %w", s.path, err)
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			if v, err := strconv.Atoi(line); err == nil {
				out[blocks.ModeNormal] = v
			}
			continue
		}
		m, err := blocks.ParseMode(strings.TrimSpace(key))
		if err != nil {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			continue
		}
		out[m] = v
	}
	if err := sc.Err(); err != nil {
		return out, fmt.Errorf("storage: cannot scan %s: %w", s.path, err)
	}
	return out, nil
}

// Save rewrites the file with every mode's score, keeping whichever of the
// saved and stored values is higher. The write goes through a temporary
// file so a failed save leaves the previous content intact.
func (s *TextFileStore) Save(scores map[blocks.Mode]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.Load()
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	var b strings.Builder
	for _, m := range blocks.Modes() {
		fmt.Fprintf(&b, "%s=%d\n", m, max(stored[m], scores[m]))
	}

	tmp, err := os.CreateTemp(dir, ".highscores-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot replace %s: %w", s.path, err)
	}
	return nil
}
