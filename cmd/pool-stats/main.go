package main

import (
	"os"

	"github.com/primal100/pool-stats/internal/api"
	"github.com/primal100/pool-stats/internal/constants"
	"github.com/primal100/pool-stats/internal/logging"
	"github.com/primal100/pool-stats/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Config path may be provided via POOLSTATS_CONFIG or defaults to
	// ./pool_stats_config.json in the current working directory. A missing
	// file runs on defaults.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./pool_stats_config.json"
	}
	cfg := loadConfigOrExit(configPath)

	// Allow the DB path to be configured via POOLSTATS_DB. Default to a
	// `data/` directory for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = "./data/pool_stats.db"
	}
	repo := openRepositoryOrExit(dbPath)

	sessions := service.NewManager(cfg.UndoDepth, cfg.Team1Label, cfg.Team2Label)
	uploader := service.NewUploader(cfg.ExportWebhookURL)
	if uploader != nil {
		logging.Info("export webhook enabled", logging.Fields{constants.LogFieldURL: cfg.ExportWebhookURL})
	}
	handler := api.NewMatchHandler(sessions, repo, uploader)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RouteRecords, handler.ListRecords)

		apiRoutes.POST(constants.RouteMatches, handler.CreateMatch)
		apiRoutes.GET(constants.RouteMatchByCode, handler.GetMatch)
		apiRoutes.POST(constants.RouteMatchActions, handler.SubmitAction)
		apiRoutes.POST(constants.RouteMatchUndo, handler.UndoAction)
		apiRoutes.POST(constants.RouteMatchReset, handler.ResetMatch)
		apiRoutes.POST(constants.RouteMatchToggleLabels, handler.ToggleLabels)
		apiRoutes.POST(constants.RouteMatchComplete, handler.CompleteMatch)
		apiRoutes.POST(constants.RouteMatchExport, handler.ExportMatch)
		apiRoutes.GET(constants.RouteMatchStream, handler.StreamMatch)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
