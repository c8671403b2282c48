// main.go
package main

import (
	"log"

	"kirana-connect/cmd"
	"kirana-connect/internal/data/repository"
	"kirana-connect/internal/wire"
	"kirana-connect/pkg/storage"
	"kirana-connect/pkg/utils"

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

	if config.JWT.Secret == utils.DevJWTSecret {
		logger.Warn("JWT_SECRET not set, using insecure development default")
	}

	// Open the flat-file credential store
	users := storage.NewFileStore(config.Store.UsersFile)

	logger.Info("Credential store ready", zap.String("file", config.Store.UsersFile))

	// Initialize all repositories (users on disk, catalog/carts/orders in memory)
	repos := repository.NewRepository(users, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
