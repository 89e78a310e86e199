package main

import (
	"github.com/google/uuid"

	"github.com/ericogr/novel-tactics/internal/config"
	"github.com/ericogr/novel-tactics/internal/constants"
	"github.com/ericogr/novel-tactics/internal/game"
	"github.com/ericogr/novel-tactics/internal/logging"
	"github.com/ericogr/novel-tactics/internal/service"
	"github.com/ericogr/novel-tactics/internal/storage"
)

func loadConfigOrExit() *config.LoadedConfig {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Missing or invalid novel-tactics configuration", err, logging.Fields{
			"hint": "set " + constants.EnvConfigPath + " or create " + constants.DefaultConfigPath + " with optional keys: server, database, pacing, rules, summary_lines, presets",
		})
	}
	return cfg
}

func createRepositoryOrExit(cfg *config.LoadedConfig) storage.Repository {
	presets := make([]game.PresetRecord, 0, len(cfg.Presets))
	for _, p := range cfg.Presets {
		presets = append(presets, game.PresetRecord{Key: p.Key, Name: p.Name, Request: p.Request})
	}
	db, err := storage.OpenAndMigrate(cfg.DatabaseDSN, presets)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	logging.Info("Database ready", logging.Fields{constants.LogFieldCount: len(presets)})
	return storage.NewGormRepository(db)
}

func serviceSettings(cfg *config.LoadedConfig) service.Settings {
	return service.Settings{
		Rules:          cfg.Rules,
		EnemyTurnDelay: cfg.Pacing.EnemyTurnDelay,
		SummaryLines:   cfg.SummaryLines,
	}
}

// workerID identifies this process when claiming due enemy turns. Several
// replicas sharing one postgres database each need a distinct id.
func workerID(cfg *config.LoadedConfig) string {
	if cfg.WorkerID != "" {
		return cfg.WorkerID
	}
	return "worker-" + uuid.NewString()
}
