// Package config provides YAML-based application configuration for the
// bingo board, with environment variable overrides.
package config

import (
	"slices"
	"time"

	"github.com/vovakirdan/goal-bingo/internal/quest"
)

// AppConfig contains all configuration for the bingo application.
type AppConfig struct {
	Storage     StorageConfig     `yaml:"storage"`
	Quest       QuestConfig       `yaml:"quest"`
	Celebration CelebrationConfig `yaml:"celebration"`
	SSH         SSHConfig         `yaml:"ssh"`
	Log         LogConfig         `yaml:"log"`
}

// StorageConfig defines where quest state is persisted.
type StorageConfig struct {
	DBPath    string `yaml:"db_path" env:"BINGO_DB"`
	Namespace string `yaml:"namespace" env:"BINGO_NAMESPACE"` // Quest slot for local play
	ExportDir string `yaml:"export_dir" env:"BINGO_EXPORT_DIR"`
}

// QuestConfig defines defaults offered by the setup form.
type QuestConfig struct {
	DefaultGridSize   int            `yaml:"default_grid_size"`
	DefaultDuration   DurationPreset `yaml:"default_duration"`
	RewardSuggestions []string       `yaml:"reward_suggestions"`
}

// CelebrationConfig defines the confetti effect shown on bingo and claim.
type CelebrationConfig struct {
	DurationMS int `yaml:"duration_ms"`
	TickRate   int `yaml:"tick_rate"` // Frames per second
	Particles  int `yaml:"particles"` // Particles per burst at full strength
}

// SSHConfig defines the `bingo serve` listener.
type SSHConfig struct {
	Address            string `yaml:"address" env:"BINGO_SSH_ADDR"`
	HostKeyPath        string `yaml:"host_key_path" env:"BINGO_HOST_KEY"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// LogConfig defines logging verbosity.
type LogConfig struct {
	Level string `yaml:"level" env:"BINGO_LOG_LEVEL"` // debug, info, warn, error
}

// Duration returns the celebration length.
func (c CelebrationConfig) Duration() time.Duration {
	return time.Duration(c.DurationMS) * time.Millisecond
}

// Frames returns how many ticks the celebration lasts.
func (c CelebrationConfig) Frames() int {
	if c.TickRate <= 0 {
		return 0
	}
	return c.DurationMS * c.TickRate / 1000
}

// IdleTimeout returns the SSH idle timeout.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// normalize replaces out-of-range values with defaults.
func (c *AppConfig) normalize() {
	def := DefaultAppConfig()

	if !slices.Contains(quest.GridSizes, c.Quest.DefaultGridSize) {
		c.Quest.DefaultGridSize = def.Quest.DefaultGridSize
	}
	if _, ok := ParseDurationPreset(string(c.Quest.DefaultDuration)); !ok {
		c.Quest.DefaultDuration = def.Quest.DefaultDuration
	}
	if len(c.Quest.RewardSuggestions) == 0 {
		c.Quest.RewardSuggestions = def.Quest.RewardSuggestions
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = def.Storage.DBPath
	}
	if c.Storage.Namespace == "" {
		c.Storage.Namespace = def.Storage.Namespace
	}
	if c.Storage.ExportDir == "" {
		c.Storage.ExportDir = def.Storage.ExportDir
	}
	if c.Celebration.DurationMS <= 0 {
		c.Celebration.DurationMS = def.Celebration.DurationMS
	}
	if c.Celebration.TickRate <= 0 {
		c.Celebration.TickRate = def.Celebration.TickRate
	}
	if c.Celebration.Particles <= 0 {
		c.Celebration.Particles = def.Celebration.Particles
	}
	if c.SSH.Address == "" {
		c.SSH.Address = def.SSH.Address
	}
	if c.SSH.IdleTimeoutMinutes <= 0 {
		c.SSH.IdleTimeoutMinutes = def.SSH.IdleTimeoutMinutes
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}
