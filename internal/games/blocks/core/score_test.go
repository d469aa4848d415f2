package core

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreAddSavesNewHigh(t *testing.T) {
	store := NewMemoryStore()
	s := NewScore(store)

	s.Add(10)
	assert.Equal(t, 10, s.Value())
	assert.Equal(t, 10, s.HighScore())
	assert.Equal(t, 1, store.Saves)
	assert.Equal(t, 10, store.Scores[ModeNormal])

	s.Reset()
	s.Add(5)
	assert.Equal(t, 1, store.Saves, "no save below the high")
	assert.Equal(t, 10, s.HighScore())
}

func TestScoreLevelProgression(t *testing.T) {
	var changes [][2]int
	s := NewScore(nil, WithLevelListener(func(o, n int) {
		changes = append(changes, [2]int{o, n})
	}))

	assert.False(t, s.AddLines(9))
	assert.Equal(t, 1, s.Level())
	assert.True(t, s.AddLines(1))
	assert.Equal(t, 2, s.Level())
	assert.True(t, s.AddLines(25))
	assert.Equal(t, 4, s.Level())
	assert.Equal(t, 35, s.Lines())
	assert.False(t, s.AddLines(0))
	assert.False(t, s.AddLines(-3))

	s.Reset()
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 0, s.Lines())
	assert.Equal(t, [][2]int{{1, 2}, {2, 4}, {4, 1}}, changes)
}

func TestScoreLinesPerLevelOption(t *testing.T) {
	s := NewScore(nil, WithLinesPerLevel(4))
	s.AddLines(8)
	assert.Equal(t, 3, s.Level())

	s = NewScore(nil, WithLinesPerLevel(0))
	s.AddLines(10)
	assert.Equal(t, 2, s.Level(), "non-positive option keeps the default")
}

func TestScoreLoadsStoredHighs(t *testing.T) {
	store := NewMemoryStore()
	store.Scores[ModeTimed] = 300
	store.Scores[ModeBottomsUp] = -4

	s := NewScore(store)
	highs := s.HighScores()
	assert.Equal(t, 0, highs[ModeNormal])
	assert.Equal(t, 300, highs[ModeTimed])
	assert.Equal(t, 0, highs[ModeBottomsUp])

	s.SetMode(ModeTimed)
	assert.Equal(t, ModeTimed, s.Mode())
	assert.Equal(t, 300, s.HighScore())
}

func TestScorePersistenceFailuresAreSwallowed(t *testing.T) {
	store := NewMemoryStore()
	store.LoadErr = errors.New("disk gone")
	store.SaveErr = errors.New("read only")
	logger := &recordingLogger{}

	s := NewScore(store, WithLogger(logger))
	require.Equal(t, 0, s.HighScore())

	s.Add(50)
	assert.Equal(t, 50, s.Value())
	assert.Equal(t, 50, s.HighScore(), "in-memory high survives a failed save")
	assert.Equal(t, []string{"high score load failed", "high score save failed"}, logger.messages)
}

func TestScoreModesKeepSeparateHighs(t *testing.T) {
	s := NewScore(nil)
	s.Add(20)

	s.SetMode(ModeBottomsUp)
	s.Reset()
	s.Add(5)

	highs := s.HighScores()
	assert.Equal(t, 20, highs[ModeNormal])
	assert.Equal(t, 5, highs[ModeBottomsUp])
	assert.Equal(t, 0, highs[ModeTimed])
}

func TestSharedStoreNeverLowersHighs(t *testing.T) {
	store := NewMemoryStore()
	s1 := NewScore(store)
	s2 := NewScore(store)
	s3 := NewScore(store)
	s2.SetMode(ModeTimed)

	s1.Add(500)
	s2.Add(10)
	assert.Equal(t, 500, store.Scores[ModeNormal], "stale normal high from the second score is ignored")
	assert.Equal(t, 10, store.Scores[ModeTimed])

	s3.Add(100)
	assert.Equal(t, 100, s3.HighScore())
	assert.Equal(t, 3, store.Saves)
	assert.Equal(t, 500, store.Scores[ModeNormal])

	highs := NewScore(store).HighScores()
	assert.Equal(t, 500, highs[ModeNormal])
	assert.Equal(t, 10, highs[ModeTimed])
}

func TestMemoryStoreConcurrentSaves(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			_ = store.Save(map[Mode]int{ModeNormal: v})
			_, _ = store.Load()
		}(i)
	}
	wg.Wait()

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 50, got[ModeNormal])
	assert.Equal(t, 50, store.Saves)
}

func TestHighScoresReturnsCopy(t *testing.T) {
	s := NewScore(nil)
	s.Add(7)
	h := s.HighScores()
	h[ModeNormal] = 999
	assert.Equal(t, 7, s.HighScore())
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseMode("marathon")
	assert.Error(t, err)
}
