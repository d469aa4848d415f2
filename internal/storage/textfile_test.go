package storage

import (
	"os"
	"path/filepath"
	"testing"

	blocks "github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

func TestTextFileStoreMissingFile(t *testing.T) {
	s, err := NewTextFileStore(filepath.Join(t.TempDir(), "none.txt"))
	if err != nil {
		t.Fatalf("NewTextFileStore() failed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() of a missing file should not fail: %v", err)
	}
	for _, m := range blocks.Modes() {
		if got[m] != 0 {
			t.Errorf("expected zero for %s, got %d", m, got[m])
		}
	}
}

func TestTextFileStoreParse(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[blocks.Mode]int
	}{
		{
			name: "all modes",
			body: "normal=120\ntimed=40\nbottomsUp=7\n",
			want: map[blocks.Mode]int{blocks.ModeNormal: 120, blocks.ModeTimed: 40, blocks.ModeBottomsUp: 7},
		},
		{
			name: "legacy bare integer",
			body: "350\n",
			want: map[blocks.Mode]int{blocks.ModeNormal: 350, blocks.ModeTimed: 0, blocks.ModeBottomsUp: 0},
		},
		{
			name: "malformed lines ignored",
			body: "normal=abc\nmarathon=5\n=9\ntimed = 15 \n\ngarbage\n",
			want: map[blocks.Mode]int{blocks.ModeNormal: 0, blocks.ModeTimed: 15, blocks.ModeBottomsUp: 0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "hs.txt")
			if err := os.WriteFile(path, []byte(tc.body), 0o600); err != nil {
				t.Fatal(err)
			}
			s, _ := NewTextFileStore(path)

			got, err := s.Load()
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			for m, want := range tc.want {
				if got[m] != want {
					t.Errorf("%s = %d, expected %d", m, got[m], want)
				}
			}
		})
	}
}

func TestTextFileStoreSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hs.txt")
	s, _ := NewTextFileStore(path)

	if err := s.Save(map[blocks.Mode]int{blocks.ModeNormal: 10, blocks.ModeBottomsUp: 3}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	want := "normal=10\ntimed=0\nbottomsUp=3\n"
	if string(data) != want {
		t.Errorf("file = %q, expected %q", data, want)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestTextFileStoreSharedPathKeepsHigher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hs.txt")
	a, _ := NewTextFileStore(path)
	b, _ := NewTextFileStore(path)

	if err := a.Save(map[blocks.Mode]int{blocks.ModeNormal: 500}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := b.Save(map[blocks.Mode]int{blocks.ModeNormal: 100, blocks.ModeTimed: 10}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := a.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got[blocks.ModeNormal] != 500 || got[blocks.ModeTimed] != 10 {
		t.Errorf("Unexpected highs: %v", got)
	}
}

func TestTextFileStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := NewTextFileStore("~/.arcade/hs.txt")
	if err != nil {
		t.Fatalf("NewTextFileStore() failed: %v", err)
	}
	if s.Path() != filepath.Join(home, ".arcade", "hs.txt") {
		t.Errorf("Path() = %q", s.Path())
	}
}
