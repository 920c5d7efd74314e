package main

import (
	"github.com/primal100/pool-stats/internal/config"
	"github.com/primal100/pool-stats/internal/logging"
	"github.com/primal100/pool-stats/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Invalid pool-stats configuration", err, logging.Fields{"config_path": path})
	}
	return cfg
}

func openRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
