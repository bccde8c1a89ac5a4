package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateQuest(t *testing.T) {
	store := newMemStore()
	rec := &recorder{}
	e := newTestEngine(t, store, rec)

	require.NoError(t, e.CreateQuest(testConfig(4)))

	snap := e.Snapshot()
	require.True(t, snap.HasQuest())
	assert.Equal(t, ModeSetup, snap.Mode)
	assert.Len(t, snap.Goals, 16)
	assert.Equal(t, "2026-03-01", snap.Config.StartDate.String(), "start date defaults to today")
	assert.NotEmpty(t, snap.Config.ID)

	assert.Equal(t, "setup", store.values[KeyMode])
	assert.Equal(t, "0", store.values[KeyCompletedLines])
	assert.Equal(t, "false", store.values[KeyRewardClaimed])
	assert.Contains(t, store.values[KeyConfig], `"gridSize":4`)
	assert.Len(t, rec.events, 1)
}

func TestCreateQuestInvalidLeavesNoState(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(t, store, nil)

	cfg := testConfig(3)
	cfg.Reward = ""
	err := e.CreateQuest(cfg)

	assert.ErrorIs(t, err, ErrMissingReward)
	assert.False(t, e.Snapshot().HasQuest())
	assert.Empty(t, store.values, "nothing may be persisted for an invalid quest")
}

func TestCreateQuestTwice(t *testing.T) {
	e := newTestEngine(t, newMemStore(), nil)
	require.NoError(t, e.CreateQuest(testConfig(3)))
	assert.ErrorIs(t, e.CreateQuest(testConfig(5)), ErrQuestExists)
	assert.Equal(t, 3, e.Snapshot().GridSize())
}

func TestEditCellOnlyInSetup(t *testing.T) {
	e, _ := playingEngine(t, 3, nil)

	require.NoError(t, e.EditCell(0, "changed", IconGift))
	assert.Equal(t, "goal", e.Snapshot().Goals[0].Text, "edits in play are no-ops")

	noQuest := newTestEngine(t, newMemStore(), nil)
	assert.NoError(t, noQuest.EditCell(0, "x", IconNone), "no quest is a no-op, not a panic")
}

func TestShuffleOnlyInSetup(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(t, store, nil)
	require.NoError(t, e.CreateQuest(testConfig(5)))
	for i := 0; i < 25; i++ {
		require.NoError(t, e.EditCell(i, string(rune('A'+i)), IconNone))
	}

	require.NoError(t, e.Shuffle())
	shuffled := e.Snapshot().Goals
	ids := make([]int, len(shuffled))
	moved := false
	for i, c := range shuffled {
		ids[i] = c.ID
		moved = moved || c.ID != i
		assert.Equal(t, string(rune('A'+c.ID)), c.Text, "id travels with its text")
	}
	assert.True(t, moved)
	assert.Contains(t, store.values[KeyGoals], shuffled[0].Text)

	p, err := e.RequestStart()
	require.NoError(t, err)
	require.NoError(t, e.Confirm(p))

	require.NoError(t, e.Shuffle())
	for i, c := range e.Snapshot().Goals {
		assert.Equal(t, ids[i], c.ID, "shuffle in play is a no-op")
	}
}

func TestToggleOnlyInPlay(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(t, store, nil)
	require.NoError(t, e.CreateQuest(testConfig(3)))
	require.NoError(t, e.EditCell(0, "goal", IconNone))

	require.NoError(t, e.ToggleCell(0))
	assert.False(t, e.Snapshot().Goals[0].Completed, "toggle in setup is a no-op")
}

func TestRequestStartRefusedUntilFilled(t *testing.T) {
	e := newTestEngine(t, newMemStore(), nil)

	_, err := e.RequestStart()
	assert.ErrorIs(t, err, ErrNoQuest)

	require.NoError(t, e.CreateQuest(testConfig(3)))
	for i := 0; i < 8; i++ {
		require.NoError(t, e.EditCell(i, "goal", IconNone))
	}
	_, err = e.RequestStart()
	assert.ErrorIs(t, err, ErrBoardIncomplete)

	require.NoError(t, e.EditCell(8, "   ", IconNone))
	_, err = e.RequestStart()
	assert.ErrorIs(t, err, ErrBoardIncomplete, "whitespace is not a goal")

	require.NoError(t, e.EditCell(8, "last", IconNone))
	p, err := e.RequestStart()
	require.NoError(t, err)
	assert.Equal(t, TransitionStart, p.Transition)
	assert.NotEmpty(t, p.Message)
	assert.Equal(t, ModeSetup, e.Mode(), "nothing changes before Confirm")

	require.NoError(t, e.Confirm(p))
	assert.Equal(t, ModePlay, e.Mode())

	_, err = e.RequestStart()
	assert.ErrorIs(t, err, ErrNotInSetup)
}

func TestStartResetsCompletedLines(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(t, store, nil)
	require.NoError(t, e.CreateQuest(testConfig(3)))
	store.values[KeyCompletedLines] = "4"
	for i := 0; i < 9; i++ {
		require.NoError(t, e.EditCell(i, "goal", IconNone))
	}

	p, err := e.RequestStart()
	require.NoError(t, err)
	require.NoError(t, e.Confirm(p))

	assert.Equal(t, 0, e.Snapshot().CompletedLines)
	assert.Equal(t, "0", store.values[KeyCompletedLines])
	assert.Equal(t, "play", store.values[KeyMode])
}

func TestConfirmation(t *testing.T) {
	e, _ := playingEngine(t, 3, nil)

	assert.ErrorIs(t, e.Confirm(Pending{}), ErrNoPendingConfirmation)

	first, _ := e.RequestReset()
	second, _ := e.RequestReset()
	assert.ErrorIs(t, e.Confirm(first), ErrNoPendingConfirmation, "stale confirmation")

	e.Cancel(second)
	assert.ErrorIs(t, e.Confirm(second), ErrNoPendingConfirmation, "cancelled confirmation")
	assert.True(t, e.Snapshot().HasQuest())

	third, _ := e.RequestReset()
	require.NoError(t, e.Confirm(third))
	assert.ErrorIs(t, e.Confirm(third), ErrNoPendingConfirmation, "confirm is one-shot")
}

// Scenarios 1-3: lines appear, stack, and break together.
func TestLineScenarios(t *testing.T) {
	rec := &recorder{}
	e, store := playingEngine(t, 3, rec)

	for _, i := range []int{0, 1, 2} {
		require.NoError(t, e.ToggleCell(i))
	}
	assert.Equal(t, []Line{"row-0"}, e.Lines())
	assert.Equal(t, 1, e.Snapshot().CompletedLines)
	assert.Equal(t, 1, rec.count(isLinesIncreased))
	assert.Equal(t, 1, rec.count(isRewardUnlocked))

	for _, i := range []int{3, 6} {
		require.NoError(t, e.ToggleCell(i))
	}
	assert.Equal(t, []Line{"row-0", "col-0"}, e.Lines())
	assert.Equal(t, 2, e.Snapshot().CompletedLines)
	assert.Equal(t, 2, rec.count(isLinesIncreased))
	assert.Equal(t, 1, rec.count(isRewardUnlocked), "unlock only fires from zero")

	require.NoError(t, e.ToggleCell(0))
	assert.Empty(t, e.Lines())
	assert.Equal(t, 0, e.Snapshot().CompletedLines)
	assert.Equal(t, "0", store.values[KeyCompletedLines], "decrease is persisted")
	assert.Equal(t, 2, rec.count(isLinesIncreased), "no event on decrease")
}

// Scenario 4.
func TestAllCellsGiveEveryLine(t *testing.T) {
	e, _ := playingEngine(t, 3, nil)
	for i := 0; i < 9; i++ {
		require.NoError(t, e.ToggleCell(i))
	}
	assert.Equal(t, []Line{
		"row-0", "row-1", "row-2", "col-0", "col-1", "col-2", LineDiagMain, LineDiagAnti,
	}, e.Lines())
	assert.Equal(t, 8, e.Snapshot().CompletedLines)
	assert.Equal(t, 100, e.Progress())
}

// Scenarios 5-6.
func TestClaimReward(t *testing.T) {
	rec := &recorder{}
	e, store := playingEngine(t, 3, rec)

	ok, err := e.ClaimReward()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, e.Reward().Claimed, "locked reward stays unclaimed")

	for _, i := range []int{2, 4, 6} {
		require.NoError(t, e.ToggleCell(i))
	}
	assert.True(t, e.Reward().Unlocked)

	ok, err = e.ClaimReward()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, e.Reward().Claimed)
	assert.Equal(t, "true", store.values[KeyRewardClaimed])

	ok, err = e.ClaimReward()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, rec.count(isRewardClaimed), "celebration fires exactly once")

	// Breaking the line relocks but never unclaims.
	require.NoError(t, e.ToggleCell(4))
	assert.False(t, e.Reward().Unlocked)
	assert.True(t, e.Reward().Claimed)
}

func TestResetFromAnyState(t *testing.T) {
	e, store := playingEngine(t, 4, nil)
	for _, i := range []int{0, 5, 10, 15} {
		require.NoError(t, e.ToggleCell(i))
	}
	_, err := e.ClaimReward()
	require.NoError(t, err)

	p, err := e.RequestReset()
	require.NoError(t, err)
	require.NoError(t, e.Confirm(p))

	snap := e.Snapshot()
	assert.False(t, snap.HasQuest())
	assert.Equal(t, ModeSetup, snap.Mode)
	assert.Equal(t, 0, snap.CompletedLines)
	assert.False(t, snap.RewardClaimed)
	assert.Empty(t, snap.Goals)
	assert.Empty(t, store.values)
	assert.Equal(t, 1, store.cleared)

	// A reset engine accepts a new quest.
	require.NoError(t, e.CreateQuest(testConfig(5)))
	assert.Len(t, e.Snapshot().Goals, 25)

	// Reset also works while still in setup.
	p, _ = e.RequestReset()
	require.NoError(t, e.Confirm(p))
	assert.False(t, e.Snapshot().HasQuest())
}

func TestToggleBlankCellIsNoop(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(t, store, nil)
	require.NoError(t, e.CreateQuest(testConfig(3)))
	for i := 0; i < 9; i++ {
		require.NoError(t, e.EditCell(i, "goal", IconNone))
	}
	p, _ := e.RequestStart()
	require.NoError(t, e.Confirm(p))

	// Force a blank cell into play state through the store and reload.
	goals := e.Snapshot().Goals
	goals[4].Text = ""
	w := persister{store: store, logger: e.logger}
	require.NoError(t, w.saveGoals(goals))
	e = newTestEngine(t, store, nil)

	require.NoError(t, e.ToggleCell(4))
	assert.False(t, e.Snapshot().Goals[4].Completed)
}

func TestToggleOutOfRangePanics(t *testing.T) {
	e, _ := playingEngine(t, 3, nil)
	assert.Panics(t, func() { e.ToggleCell(9) })
	assert.Panics(t, func() { e.ToggleCell(-1) })
}

func TestPersistFailureIsReported(t *testing.T) {
	e, store := playingEngine(t, 3, nil)
	store.failSet[KeyCompletedLines] = true

	for _, i := range []int{0, 1} {
		require.NoError(t, e.ToggleCell(i))
	}
	err := e.ToggleCell(2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist completedLines")
	// State stays applied in memory.
	assert.Equal(t, 1, e.Snapshot().CompletedLines)
}

func TestSnapshotIsACopy(t *testing.T) {
	e, _ := playingEngine(t, 3, nil)
	snap := e.Snapshot()
	snap.Goals[0].Text = "mutated"
	snap.Config.Title = "mutated"

	fresh := e.Snapshot()
	assert.Equal(t, "goal", fresh.Goals[0].Text)
	assert.Equal(t, "Spring", fresh.Config.Title)
}
