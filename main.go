// main.go
package main

import (
	"context"
	"log"

	"bus-booking/cmd"
	"bus-booking/internal/data/docstore"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/seed"
	"bus-booking/internal/wire"
	"bus-booking/pkg/database"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Load provider documents into memory
	docs, err := docstore.NewStore(config.Docs.Dir, logger)
	if err != nil {
		logger.Fatal("Failed to load provider documents", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Seed districts, providers and routes on first start
	if err := seed.Run(context.Background(), repos, docs, config.Docs.DataFile, logger); err != nil {
		logger.Fatal("Failed to seed database", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, docs, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
