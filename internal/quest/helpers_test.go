package quest

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// memStore is a quest.Store that can be told to fail writes.
type memStore struct {
	values  map[string]string
	failSet map[string]bool
	cleared int
}

func newMemStore() *memStore {
	return &memStore{values: map[string]string{}, failSet: map[string]bool{}}
}

func (m *memStore) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memStore) Set(key, value string) error {
	if m.failSet[key] {
		return errors.New("disk full")
	}
	m.values[key] = value
	return nil
}

func (m *memStore) Clear() error {
	m.cleared++
	m.values = map[string]string{}
	return nil
}

var fixedNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func testConfig(size int) Config {
	end, _ := ParseDate("2026-03-31")
	return Config{
		Title:    "Spring",
		Reward:   "New sneakers",
		EndDate:  end,
		GridSize: size,
	}
}

// recorder collects emitted events.
type recorder struct {
	events []Event
}

func (r *recorder) listen(ev Event) { r.events = append(r.events, ev) }

func (r *recorder) count(match func(Event) bool) int {
	n := 0
	for _, ev := range r.events {
		if match(ev) {
			n++
		}
	}
	return n
}

func isLinesIncreased(ev Event) bool { _, ok := ev.(LinesIncreased); return ok }
func isRewardUnlocked(ev Event) bool { _, ok := ev.(RewardUnlocked); return ok }
func isRewardClaimed(ev Event) bool  { _, ok := ev.(RewardClaimed); return ok }

func newTestEngine(t *testing.T, store Store, rec *recorder) *Engine {
	t.Helper()
	opts := []Option{
		WithRand(rand.New(rand.NewSource(42))),
		WithClock(func() time.Time { return fixedNow }),
	}
	if rec != nil {
		opts = append(opts, WithListener(rec.listen))
	}
	return New(store, opts...)
}

// playingEngine returns an engine in play mode with every cell filled.
func playingEngine(t *testing.T, size int, rec *recorder) (*Engine, *memStore) {
	t.Helper()
	store := newMemStore()
	e := newTestEngine(t, store, rec)
	require.NoError(t, e.CreateQuest(testConfig(size)))
	for i := 0; i < size*size; i++ {
		require.NoError(t, e.EditCell(i, "goal", IconNone))
	}
	p, err := e.RequestStart()
	require.NoError(t, err)
	require.NoError(t, e.Confirm(p))
	return e, store
}
