// Package main implements the entry point for the MedCamp API server,
// which backs the medical camp registration platform: camp catalog,
// participant registrations, fee payments, and feedback.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/medcamphq/medcamp-api/internal/config"
	"github.com/medcamphq/medcamp-api/internal/platform/logger"
	"github.com/medcamphq/medcamp-api/internal/platform/mongodb"
)

func main() {
	ctx := context.Background()

	app, client, err := initializeApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			app.logger.Error("Error disconnecting from database", "error", err)
		}
	}()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, connects to the
// database, and wires the application dependencies.
func initializeApp(ctx context.Context) (*application, *mongo.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongodb.Connect(connectCtx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	appLogger.Info("Database connection established")

	app, err := newApplication(ctx, cfg, appLogger, client)
	if err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, nil, err
	}

	return app, client, nil
}
