// main.go
package main

import (
	"context"
	"log"

	"homecare-booking/cmd"
	"homecare-booking/internal/data/repository"
	"homecare-booking/internal/wire"
	"homecare-booking/pkg/database"
	"homecare-booking/pkg/mq"
	"homecare-booking/pkg/obs"
	"homecare-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.Name, config.App.LogPath, config.App.Debug)
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

	// Tracing is optional
	if config.Tracing.Enabled {
		shutdown, err := obs.InitTracer(context.Background(), config.App.Name, config.Tracing.Endpoint, config.Tracing.Environment)
		if err != nil {
			logger.Warn("Failed to init tracer, continuing without tracing", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Warn("Failed to flush traces", zap.Error(err))
				}
			}()
			logger.Info("Tracing enabled", zap.String("endpoint", config.Tracing.Endpoint))
		}
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Event publishing is optional
	var publisher mq.Publisher = mq.NopPublisher{}
	if config.MQ.URL != "" {
		rabbit, err := mq.NewRabbitPublisher(config.MQ.URL, config.MQ.Exchange)
		if err != nil {
			logger.Warn("Failed to connect to RabbitMQ, booking events disabled", zap.Error(err))
		} else {
			publisher = rabbit
			logger.Info("RabbitMQ connected", zap.String("exchange", config.MQ.Exchange))
		}
	}
	defer publisher.Close()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, db, publisher, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, config.HTTP, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
