package storage

import (
	"os"
	"path/filepath"
	"testing"

	blocks "github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	results := []GameResult{
		{GameID: "blocks", Mode: blocks.ModeNormal, Score: 100, Lines: 3, Level: 1},
		{GameID: "blocks", Mode: blocks.ModeNormal, Score: 50, Lines: 1, Level: 1},
		{GameID: "blocks", Mode: blocks.ModeNormal, Score: 200, Lines: 12, Level: 2},
		{GameID: "blocks_timed", Mode: blocks.ModeTimed, Score: 500, Lines: 8, Level: 1},
	}
	for _, r := range results {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(blocks.ModeNormal, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Lines != 12 || scores[0].Level != 2 || scores[0].Mode != "normal" {
		t.Errorf("Row fields not stored: %+v", scores[0])
	}

	timed, err := store.TopScores(blocks.ModeTimed, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(timed) != 1 || timed[0].GameID != "blocks_timed" {
		t.Errorf("Expected 1 timed score, got %v", timed)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(GameResult{GameID: "blocks", Mode: blocks.ModeNormal, Score: (i + 1) * 100})
	}

	scores, err := store.TopScores(blocks.ModeNormal, 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore(blocks.ModeBottomsUp)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for an unplayed mode, got %d", best)
	}

	store.SaveScore(GameResult{GameID: "blocks_bottomsup", Mode: blocks.ModeBottomsUp, Score: 100})
	store.SaveScore(GameResult{GameID: "blocks_bottomsup", Mode: blocks.ModeBottomsUp, Score: 300})

	best, err = store.BestScore(blocks.ModeBottomsUp)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score of 300, got %d", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(GameResult{GameID: "blocks", Mode: blocks.ModeNormal, Score: 100})
	store.SaveScore(GameResult{GameID: "blocks_timed", Mode: blocks.ModeTimed, Score: 300})
	if err := store.HighScores().Save(map[blocks.Mode]int{blocks.ModeNormal: 100, blocks.ModeTimed: 300}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if err := store.ClearScores(blocks.ModeNormal); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if normal, _ := store.TopScores(blocks.ModeNormal, 10); len(normal) != 0 {
		t.Errorf("Expected 0 normal scores after clear, got %d", len(normal))
	}
	if timed, _ := store.TopScores(blocks.ModeTimed, 10); len(timed) != 1 {
		t.Error("Timed scores should not be affected by clearing normal")
	}

	highs, err := store.HighScores().Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if highs[blocks.ModeNormal] != 0 || highs[blocks.ModeTimed] != 300 {
		t.Errorf("Unexpected highs after clear: %v", highs)
	}
}

func TestHighScoreTableRoundTrip(t *testing.T) {
	store := openTestStore(t)
	hs := store.HighScores()

	empty, err := hs.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	for _, m := range blocks.Modes() {
		if empty[m] != 0 {
			t.Errorf("fresh table should load zero for %s, got %d", m, empty[m])
		}
	}

	if err := hs.Save(map[blocks.Mode]int{blocks.ModeNormal: 10, blocks.ModeBottomsUp: 7}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := hs.Save(map[blocks.Mode]int{blocks.ModeNormal: 40, blocks.ModeBottomsUp: 7}); err != nil {
		t.Fatalf("second Save() failed: %v", err)
	}

	got, err := hs.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got[blocks.ModeNormal] != 40 || got[blocks.ModeTimed] != 0 || got[blocks.ModeBottomsUp] != 7 {
		t.Errorf("Load() = %v", got)
	}
}

func TestHighScoreTableKeepsHigher(t *testing.T) {
	store := openTestStore(t)
	hs := store.HighScores()

	if err := hs.Save(map[blocks.Mode]int{blocks.ModeNormal: 500}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := hs.Save(map[blocks.Mode]int{blocks.ModeNormal: 100, blocks.ModeTimed: 10}); err != nil {
		t.Fatalf("second Save() failed: %v", err)
	}

	got, err := hs.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got[blocks.ModeNormal] != 500 {
		t.Errorf("normal = %d, expected the stored 500 to survive a lower save", got[blocks.ModeNormal])
	}
	if got[blocks.ModeTimed] != 10 {
		t.Errorf("timed = %d, expected 10", got[blocks.ModeTimed])
	}
}

func TestHighScoreTableFeedsScore(t *testing.T) {
	store := openTestStore(t)

	s := blocks.NewScore(store.HighScores())
	s.Add(120)

	reloaded := blocks.NewScore(store.HighScores())
	if reloaded.HighScore() != 120 {
		t.Errorf("Expected persisted high score 120, got %d", reloaded.HighScore())
	}
}

func TestStoreAllModeStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(GameResult{GameID: "blocks", Mode: blocks.ModeNormal, Score: 100, Lines: 4, Level: 1})
	store.SaveScore(GameResult{GameID: "blocks", Mode: blocks.ModeNormal, Score: 300, Lines: 11, Level: 2})

	stats, err := store.AllModeStats()
	if err != nil {
		t.Fatalf("AllModeStats() failed: %v", err)
	}
	st, ok := stats["normal"]
	if !ok {
		t.Fatal("Expected stats for normal mode")
	}
	if st.GamesCount != 2 || st.BestScore != 300 || st.TotalLines != 15 || st.MaxLevel != 2 {
		t.Errorf("Unexpected stats: %+v", st)
	}
	if st.AvgScore != 200 {
		t.Errorf("Expected average 200, got %v", st.AvgScore)
	}
	if _, ok := stats["timed"]; ok {
		t.Error("Unplayed modes should not appear")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
