package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/goal-bingo/internal/config"
	"github.com/vovakirdan/goal-bingo/internal/quest"
	"github.com/vovakirdan/goal-bingo/internal/storage"
)

// session bundles what every quest command needs.
type session struct {
	cfg    config.AppConfig
	logger *log.Logger
	rng    *rand.Rand
	engine *quest.Engine
	store  *storage.Store
}

// loadConfig loads the config file and applies the global flag overrides.
func loadConfig() (config.AppConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagNamespace != "" {
		cfg.Storage.Namespace = flagNamespace
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

func newRand() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// openSession loads config and opens the quest engine. If the database
// cannot be opened the quest lives in memory for this run only.
func openSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:    cfg,
		logger: cfg.Log.NewLogger(os.Stderr, "bingo"),
		rng:    newRand(),
	}

	var backend quest.Store
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		s.logger.Warn("could not open quest database, changes will not be saved", "error", err)
		backend = storage.NewMemory()
	} else {
		bucket := store.Bucket(cfg.Storage.Namespace)
		s.logger.Debug("opened quest database", "path", cfg.Storage.DBPath, "namespace", bucket.Namespace())
		s.store = store
		backend = bucket
	}

	s.engine = quest.New(backend,
		quest.WithLogger(s.logger),
		quest.WithRand(s.rng),
	)
	return s, nil
}

// Close releases the database.
func (s *session) Close() {
	if s.store != nil {
		s.store.Close()
	}
}
