// main.go
package main

import (
	"log"

	"sportello-booking/cmd"
	"sportello-booking/internal/data/repository"
	"sportello-booking/internal/wire"
	"sportello-booking/pkg/database"
	"sportello-booking/pkg/utils"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	// Load config (fails fast on missing Stripe key or public base URL)
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

	// Payment provider key, validated above
	stripe.Key = config.Stripe.SecretKey

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)
	defer app.Close()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
