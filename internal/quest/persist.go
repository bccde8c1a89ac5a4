package quest

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
)

// Store is the durable key/value port the engine persists through.
// Implementations need not be transactional across keys.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	// Set stores value under key.
	Set(key, value string) error
	// Clear deletes every key.
	Clear() error
}

// Persisted keys.
const (
	KeyConfig         = "config"
	KeyGoals          = "goals"
	KeyMode           = "mode"
	KeyCompletedLines = "completedLines"
	KeyRewardClaimed  = "rewardClaimed"
)

// persister funnels every engine write through one place.
type persister struct {
	store  Store
	logger *log.Logger
}

// load reads a snapshot. Absent, unreadable or malformed entries fall back
// to their defaults without an error.
func (p persister) load() Snapshot {
	snap := emptySnapshot()

	if raw, ok := p.get(KeyConfig); ok {
		var cfg Config
		err := json.Unmarshal([]byte(raw), &cfg)
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			p.logger.Debug("ignoring malformed config", "error", err)
		} else {
			snap.Config = &cfg
		}
	}

	if raw, ok := p.get(KeyGoals); ok {
		var goals Board
		if err := json.Unmarshal([]byte(raw), &goals); err != nil {
			p.logger.Debug("ignoring malformed goals", "error", err)
		} else if goals != nil {
			snap.Goals = goals
		}
	}

	if raw, ok := p.get(KeyMode); ok {
		if mode, valid := ParseMode(raw); valid {
			snap.Mode = mode
		} else {
			p.logger.Debug("ignoring malformed mode", "value", raw)
		}
	}

	if raw, ok := p.get(KeyCompletedLines); ok {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			snap.CompletedLines = n
		} else {
			p.logger.Debug("ignoring malformed completed lines", "value", raw)
		}
	}

	if raw, ok := p.get(KeyRewardClaimed); ok {
		snap.RewardClaimed = raw == "true"
	}

	// A board must hold gridSize² cells; one that does not fit the config
	// is replaced by a blank board.
	switch {
	case snap.Config == nil:
		snap.Goals = Board{}
		snap.Mode = ModeSetup
	case len(snap.Goals) != snap.Config.GridSize*snap.Config.GridSize:
		p.logger.Debug("goals do not match grid size, regenerating",
			"grid", snap.Config.GridSize, "cells", len(snap.Goals))
		snap.Goals = Generate(snap.Config.GridSize)
	}

	return snap
}

func (p persister) get(key string) (string, bool) {
	raw, ok, err := p.store.Get(key)
	if err != nil {
		p.logger.Debug("store read failed, using default", "key", key, "error", err)
		return "", false
	}
	return raw, ok
}

func (p persister) saveConfig(cfg *Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("quest: encode config: %w", err)
	}
	return p.set(KeyConfig, string(data))
}

func (p persister) saveGoals(goals Board) error {
	if goals == nil {
		goals = Board{}
	}
	data, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("quest: encode goals: %w", err)
	}
	return p.set(KeyGoals, string(data))
}

func (p persister) saveMode(mode Mode) error {
	return p.set(KeyMode, string(mode))
}

func (p persister) saveCompletedLines(n int) error {
	return p.set(KeyCompletedLines, strconv.Itoa(n))
}

func (p persister) saveRewardClaimed(claimed bool) error {
	return p.set(KeyRewardClaimed, strconv.FormatBool(claimed))
}

func (p persister) clear() error {
	if err := p.store.Clear(); err != nil {
		return fmt.Errorf("quest: clear store: %w", err)
	}
	return nil
}

func (p persister) set(key, value string) error {
	if err := p.store.Set(key, value); err != nil {
		return fmt.Errorf("quest: persist %s: %w", key, err)
	}
	return nil
}
