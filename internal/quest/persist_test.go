package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	e := newTestEngine(t, newMemStore(), nil)
	snap := e.Snapshot()

	assert.Nil(t, snap.Config)
	assert.Equal(t, Board{}, snap.Goals)
	assert.Equal(t, ModeSetup, snap.Mode)
	assert.Equal(t, 0, snap.CompletedLines)
	assert.False(t, snap.RewardClaimed)
}

func TestLoadMalformedFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, s Snapshot)
	}{
		{"config not json", KeyConfig, "{oops", func(t *testing.T, s Snapshot) {
			assert.Nil(t, s.Config)
			assert.Empty(t, s.Goals, "goals without a config are dropped")
		}},
		{"grid size too small", KeyConfig, `{"title":"Q","reward":"R","startDate":"2026-03-01","endDate":"2026-03-31","gridSize":2}`, func(t *testing.T, s Snapshot) {
			assert.Nil(t, s.Config)
			assert.Empty(t, s.Goals)
			assert.Equal(t, ModeSetup, s.Mode)
		}},
		{"grid size overflows", KeyConfig, `{"title":"Q","reward":"R","startDate":"2026-03-01","endDate":"2026-03-31","gridSize":3037000500}`, func(t *testing.T, s Snapshot) {
			assert.Nil(t, s.Config)
			assert.Empty(t, s.Goals)
		}},
		{"config without title", KeyConfig, `{"title":"","reward":"R","startDate":"2026-03-01","endDate":"2026-03-31","gridSize":3}`, func(t *testing.T, s Snapshot) {
			assert.Nil(t, s.Config)
		}},
		{"goals not json", KeyGoals, "[1,2", func(t *testing.T, s Snapshot) {
			assert.Len(t, s.Goals, 9, "blank board regenerated for the config")
			assert.Equal(t, "", s.Goals[0].Text)
		}},
		{"goals wrong size", KeyGoals, `[{"id":0,"text":"a"}]`, func(t *testing.T, s Snapshot) {
			assert.Len(t, s.Goals, 9)
		}},
		{"mode unknown", KeyMode, "victory", func(t *testing.T, s Snapshot) {
			assert.Equal(t, ModeSetup, s.Mode)
		}},
		{"lines not a number", KeyCompletedLines, "many", func(t *testing.T, s Snapshot) {
			assert.Equal(t, 0, s.CompletedLines)
		}},
		{"lines negative", KeyCompletedLines, "-3", func(t *testing.T, s Snapshot) {
			assert.Equal(t, 0, s.CompletedLines)
		}},
		{"claimed garbage", KeyRewardClaimed, "yes", func(t *testing.T, s Snapshot) {
			assert.False(t, s.RewardClaimed)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			seed := newTestEngine(t, store, nil)
			require.NoError(t, seed.CreateQuest(testConfig(3)))
			store.values[KeyMode] = "play"
			store.values[KeyCompletedLines] = "2"

			store.values[tt.key] = tt.value
			tt.check(t, newTestEngine(t, store, nil).Snapshot())
		})
	}
}

func TestLoadRoundTrip(t *testing.T) {
	e, store := playingEngine(t, 4, nil)
	require.NoError(t, e.ToggleCell(5))

	loaded := newTestEngine(t, store, nil).Snapshot()
	assert.Equal(t, e.Snapshot(), loaded)
}

func TestLoadReadsOriginalFormat(t *testing.T) {
	store := newMemStore()
	store.values[KeyConfig] = `{"title":"Q1","reward":"Trip","startDate":"2026-01-01","endDate":"2026-03-31","gridSize":3}`
	store.values[KeyGoals] = `[{"id":0,"text":"a","completed":true,"icon":null},
		{"id":1,"text":"b","completed":true,"icon":"Book"},{"id":2,"text":"c","completed":true,"icon":null},
		{"id":3,"text":"d","completed":false,"icon":null},{"id":4,"text":"e","completed":false,"icon":null},
		{"id":5,"text":"f","completed":false,"icon":null},{"id":6,"text":"g","completed":false,"icon":null},
		{"id":7,"text":"h","completed":false,"icon":null},{"id":8,"text":"i","completed":false,"icon":null}]`
	store.values[KeyMode] = "play"
	store.values[KeyCompletedLines] = "1"
	store.values[KeyRewardClaimed] = "false"

	snap := newTestEngine(t, store, nil).Snapshot()
	require.True(t, snap.HasQuest())
	assert.Equal(t, ModePlay, snap.Mode)
	assert.Equal(t, IconBook, snap.Goals[1].Icon)
	assert.Equal(t, IconStar, snap.Goals[0].Icon.Resolve())
	assert.True(t, snap.Reward().Unlocked)
	assert.Equal(t, []Line{"row-0"}, snap.Lines())
}

func TestPlayWithoutConfigLoadsAsSetup(t *testing.T) {
	store := newMemStore()
	store.values[KeyMode] = "play"
	assert.Equal(t, ModeSetup, newTestEngine(t, store, nil).Snapshot().Mode)
}
