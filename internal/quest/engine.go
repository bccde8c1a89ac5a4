// Package quest implements the goal bingo engine: the board model, line
// detection, the setup/play state machine and the reward lifecycle, all
// persisted through an injected Store.
//
// An Engine is not safe for concurrent use. Each action runs to completion,
// including persistence, before returning.
package quest

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Engine owns one quest and applies user actions to it.
type Engine struct {
	persist   persister
	logger    *log.Logger
	rng       *rand.Rand
	now       func() time.Time
	listeners []Listener

	state   Snapshot
	pending *Pending
	seq     uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRand sets the random source used by Shuffle.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithClock sets the clock used to default a quest's start date.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithListener registers an event listener.
func WithListener(l Listener) Option {
	return func(e *Engine) {
		e.Subscribe(l)
	}
}

// New creates an engine and loads any quest already in the store.
func New(store Store, opts ...Option) *Engine {
	e := &Engine{
		logger: log.New(io.Discard),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.persist = persister{store: store, logger: e.logger}
	e.state = e.persist.load()

	if e.state.HasQuest() {
		e.logger.Debug("quest loaded",
			"quest", e.state.Config.ID,
			"mode", e.state.Mode,
			"lines", e.state.CompletedLines,
		)
	}
	return e
}

// Subscribe registers a listener for engine events.
func (e *Engine) Subscribe(l Listener) {
	if l != nil {
		e.listeners = append(e.listeners, l)
	}
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return e.state.Clone()
}

// Mode returns the current mode.
func (e *Engine) Mode() Mode {
	return e.state.Mode
}

// Reward returns the derived reward state.
func (e *Engine) Reward() RewardState {
	return e.state.Reward()
}

// Progress returns the completion percentage of the board.
func (e *Engine) Progress() int {
	return e.state.Progress()
}

// Lines returns the currently completed lines.
func (e *Engine) Lines() []Line {
	return e.state.Lines()
}

// CreateQuest validates cfg and generates a blank board for it. Nothing is
// changed when validation fails. A missing start date defaults to today.
func (e *Engine) CreateQuest(cfg Config) error {
	if e.state.HasQuest() {
		return ErrQuestExists
	}
	if cfg.StartDate.IsZero() {
		cfg.StartDate = NewDate(e.now())
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}

	e.pending = nil
	e.state = Snapshot{
		Config: &cfg,
		Goals:  Generate(cfg.GridSize),
		Mode:   ModeSetup,
	}

	err := errors.Join(
		e.persist.saveConfig(e.state.Config),
		e.persist.saveGoals(e.state.Goals),
		e.persist.saveMode(e.state.Mode),
		e.persist.saveCompletedLines(0),
		e.persist.saveRewardClaimed(false),
	)

	e.logger.Info("quest created", "quest", cfg.ID, "title", cfg.Title, "grid", cfg.GridSize)
	e.emit(BoardChanged{Snapshot: e.Snapshot()})
	return err
}

// EditCell sets a cell's goal text and, if icon is not IconNone, its icon.
// Outside setup mode it does nothing. An out-of-range index panics.
func (e *Engine) EditCell(index int, text string, icon Icon) error {
	if !e.state.HasQuest() || e.state.Mode != ModeSetup {
		return nil
	}
	e.state.Goals.UpdateCell(index, text, icon)

	err := e.persist.saveGoals(e.state.Goals)
	e.emit(BoardChanged{Snapshot: e.Snapshot()})
	return err
}

// Shuffle randomly reorders the cells. Outside setup mode it does nothing.
func (e *Engine) Shuffle() error {
	if !e.state.HasQuest() || e.state.Mode != ModeSetup {
		return nil
	}
	e.state.Goals.Shuffle(e.rng)

	err := e.persist.saveGoals(e.state.Goals)
	e.logger.Debug("board shuffled", "quest", e.state.Config.ID)
	e.emit(BoardChanged{Snapshot: e.Snapshot()})
	return err
}

// CanStart reports whether RequestStart would succeed, and why not.
func (e *Engine) CanStart() error {
	switch {
	case !e.state.HasQuest():
		return ErrNoQuest
	case e.state.Mode != ModeSetup:
		return ErrNotInSetup
	case !e.state.Goals.IsFullyFilled():
		return ErrBoardIncomplete
	}
	return nil
}

// RequestStart asks to move from setup to play. The returned Pending must be
// passed to Confirm before anything changes.
func (e *Engine) RequestStart() (Pending, error) {
	if err := e.CanStart(); err != nil {
		return Pending{}, err
	}
	return e.request(TransitionStart, startPrompt), nil
}

// RequestReset asks to discard the quest. It is available in every mode,
// including when no quest exists.
func (e *Engine) RequestReset() (Pending, error) {
	return e.request(TransitionReset, resetPrompt), nil
}

func (e *Engine) request(t Transition, msg string) Pending {
	e.seq++
	p := Pending{Transition: t, Message: msg, seq: e.seq}
	e.pending = &p
	return p
}

// Cancel drops p if it is the pending confirmation.
func (e *Engine) Cancel(p Pending) {
	if e.pending != nil && e.pending.seq == p.seq {
		e.pending = nil
	}
}

// Confirm applies a pending transition. Only the most recent request can be
// confirmed, and start preconditions are checked again.
func (e *Engine) Confirm(p Pending) error {
	if e.pending == nil || e.pending.seq != p.seq || p.seq == 0 {
		return ErrNoPendingConfirmation
	}
	e.pending = nil

	switch p.Transition {
	case TransitionStart:
		return e.start()
	case TransitionReset:
		return e.reset()
	default:
		return ErrNoPendingConfirmation
	}
}

func (e *Engine) start() error {
	if err := e.CanStart(); err != nil {
		return err
	}
	e.state.Mode = ModePlay
	e.state.CompletedLines = 0

	err := errors.Join(
		e.persist.saveMode(e.state.Mode),
		e.persist.saveCompletedLines(0),
	)

	e.logger.Info("play started", "quest", e.state.Config.ID)
	e.emit(BoardChanged{Snapshot: e.Snapshot()})
	return err
}

func (e *Engine) reset() error {
	id := ""
	if e.state.Config != nil {
		id = e.state.Config.ID
	}
	e.state = emptySnapshot()

	err := e.persist.clear()

	e.logger.Info("quest reset", "quest", id)
	e.emit(BoardChanged{Snapshot: e.Snapshot()})
	return err
}

// ToggleCell flips the completed flag of a filled cell and recomputes the
// completed lines. Outside play mode, or on a blank cell, it does nothing.
// An out-of-range index panics.
func (e *Engine) ToggleCell(index int) error {
	if !e.state.HasQuest() || e.state.Mode != ModePlay {
		return nil
	}
	if !e.state.Goals.ToggleCompleted(index) {
		return nil
	}

	goalsErr := e.persist.saveGoals(e.state.Goals)
	linesErr := e.recount()
	e.emit(BoardChanged{Snapshot: e.Snapshot()})
	return errors.Join(goalsErr, linesErr)
}

// recount recomputes the line count, emits increase/unlock events and
// persists the new count even when it dropped.
func (e *Engine) recount() error {
	lines := e.state.Lines()
	prev := e.state.CompletedLines
	next := len(lines)
	e.state.CompletedLines = next

	if next != prev {
		e.logger.Debug("lines changed", "quest", e.state.Config.ID, "from", prev, "to", next)
	}
	if next > prev {
		e.emit(LinesIncreased{Previous: prev, Current: next, Lines: lines})
	}
	if prev == 0 && next > 0 {
		e.emit(RewardUnlocked{Reward: e.state.Config.Reward, Lines: next})
	}

	return e.persist.saveCompletedLines(next)
}

// ClaimReward claims an unlocked, unclaimed reward. It returns true only for
// the claim that takes effect; otherwise it changes nothing.
func (e *Engine) ClaimReward() (bool, error) {
	if !e.state.HasQuest() {
		return false, nil
	}
	reward := e.state.Reward()
	if !reward.Claim() {
		return false, nil
	}
	e.state.RewardClaimed = reward.Claimed

	err := e.persist.saveRewardClaimed(true)

	e.logger.Info("reward claimed", "quest", e.state.Config.ID, "reward", e.state.Config.Reward)
	e.emit(RewardClaimed{Reward: e.state.Config.Reward})
	e.emit(BoardChanged{Snapshot: e.Snapshot()})
	return true, err
}

func (e *Engine) emit(ev Event) {
	for _, l := range e.listeners {
		l(ev)
	}
}
