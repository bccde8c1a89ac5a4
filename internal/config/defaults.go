package config

import (
	_ "embed"
)

//go:embed defaults/bingo.yaml
var defaultBingoYAML []byte

// DefaultAppConfig returns the hardcoded default configuration.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Storage: StorageConfig{
			DBPath:    "~/.bingo/bingo.db",
			Namespace: "local",
			ExportDir: "~/.bingo/exports",
		},
		Quest: QuestConfig{
			DefaultGridSize: 3,
			DefaultDuration: DurationCustom,
			RewardSuggestions: []string{
				"Delicious snack break",
				"1 hour of gaming",
				"Watch a movie tonight",
				"Fancy coffee date",
				"Buy something I want",
			},
		},
		Celebration: CelebrationConfig{
			DurationMS: 3000,
			TickRate:   4, // One burst every 250ms
			Particles:  50,
		},
		SSH: SSHConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBingoYAML
}
