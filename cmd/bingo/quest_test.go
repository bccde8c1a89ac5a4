package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/goal-bingo/internal/config"
	"github.com/vovakirdan/goal-bingo/internal/quest"
	"github.com/vovakirdan/goal-bingo/internal/storage"
)

func setNewFlags(t *testing.T, title, reward, start, end, duration string, size int) {
	t.Helper()
	oldNow := now
	now = func() time.Time { return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() {
		now = oldNow
		flagTitle, flagReward, flagStart, flagEnd, flagDuration, flagSize = "", "", "", "", "", 0
	})
	flagTitle, flagReward, flagStart, flagEnd, flagDuration, flagSize = title, reward, start, end, duration, size
}

func TestQuestConfigDuration(t *testing.T) {
	setNewFlags(t, " Spring ", "Book", "", "", "month", 0)

	cfg, err := questConfig(config.DefaultAppConfig().Quest)
	require.NoError(t, err)
	assert.Equal(t, "Spring", cfg.Title)
	assert.True(t, cfg.StartDate.IsZero(), "start date is left for the engine to default")
	assert.Equal(t, "2026-04-01", cfg.EndDate.String())
	assert.Equal(t, 3, cfg.GridSize)
}

func TestQuestConfigExplicitEndWins(t *testing.T) {
	setNewFlags(t, "T", "R", "2026-05-01", "2026-05-03", "year", 5)

	cfg, err := questConfig(config.DefaultAppConfig().Quest)
	require.NoError(t, err)
	assert.Equal(t, "2026-05-01", cfg.StartDate.String())
	assert.Equal(t, "2026-05-03", cfg.EndDate.String())
	assert.Equal(t, 5, cfg.GridSize)
}

func TestQuestConfigErrors(t *testing.T) {
	setNewFlags(t, "T", "R", "tomorrow", "", "", 0)
	_, err := questConfig(config.DefaultAppConfig().Quest)
	assert.Error(t, err)

	setNewFlags(t, "T", "R", "", "", "fortnight", 0)
	_, err = questConfig(config.DefaultAppConfig().Quest)
	assert.ErrorContains(t, err, "unknown duration")
}

func TestAsk(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got := ask(strings.NewReader(tt.input), &out, "Sure?")
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, "Sure? [y/N] ", out.String())
	}
}

func TestAnnounce(t *testing.T) {
	var out bytes.Buffer
	listener := announce(&out)

	listener(quest.LinesIncreased{Previous: 0, Current: 1})
	listener(quest.RewardUnlocked{Reward: "Cake", Lines: 1})
	listener(quest.RewardClaimed{Reward: "Cake"})
	listener(quest.BoardChanged{})

	assert.Equal(t,
		"BINGO! 1 line(s) complete.\n"+
			"Reward unlocked: Cake. Claim it with 'bingo claim'.\n"+
			"Reward claimed: Cake. Enjoy!\n",
		out.String())
}

func TestPrintBoardPlain(t *testing.T) {
	end, err := quest.ParseDate("2026-03-31")
	require.NoError(t, err)
	start, err := quest.ParseDate("2026-03-01")
	require.NoError(t, err)

	snap := quest.Snapshot{
		Config: &quest.Config{Title: "March", Reward: "Cake", StartDate: start, EndDate: end, GridSize: 3},
		Goals:  quest.Generate(3),
		Mode:   quest.ModePlay,
	}
	for i := range snap.Goals {
		snap.Goals[i].Text = "goal"
	}
	for _, i := range []int{0, 4, 8} {
		snap.Goals[i].Completed = true
	}

	var out bytes.Buffer
	printBoard(&out, snap)

	assert.Contains(t, out.String(), "GOAL BINGO: March")
	assert.Contains(t, out.String(), "Mode: PLAY\n")
	assert.Contains(t, out.String(), "Lines: diag-main\n")
}

func useTempDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bingo.db")
	flagDBPath, flagNamespace, flagLogLevel = path, "local", "error"
	t.Cleanup(func() { flagDBPath, flagNamespace, flagLogLevel = "", "", "" })
	return path
}

func TestCommandErrorsAreReturned(t *testing.T) {
	path := useTempDB(t)

	err := runToggle(nil, []string{"1"})
	assert.ErrorIs(t, err, quest.ErrNoQuest)

	setNewFlags(t, "Spring", "Book", "2026-03-01", "2026-03-31", "", 3)
	require.NoError(t, runNew(nil, nil))

	err = runEdit(nil, []string{"10", "Run"})
	assert.EqualError(t, err, "cell must be a number from 1 to 9")

	err = runToggle(nil, []string{"1"})
	assert.EqualError(t, err, "the quest has not been started yet")

	// The database was released after each failure and still holds the quest.
	store, err := storage.Open(path)
	require.NoError(t, err)
	defer store.Close()
	raw, ok, err := store.Get("local", quest.KeyConfig)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"title":"Spring"`)
}

func TestCellIndex(t *testing.T) {
	_, err := cellIndex(quest.Snapshot{}, "1")
	assert.ErrorIs(t, err, quest.ErrNoQuest)

	snap := quest.Snapshot{Config: &quest.Config{GridSize: 3}, Goals: quest.Generate(3)}
	i, err := cellIndex(snap, "9")
	require.NoError(t, err)
	assert.Equal(t, 8, i)

	for _, arg := range []string{"0", "10", "x"} {
		_, err := cellIndex(snap, arg)
		assert.Error(t, err, arg)
	}
}
