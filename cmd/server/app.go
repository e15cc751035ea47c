package main

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/medcamphq/medcamp-api/internal/config"
	"github.com/medcamphq/medcamp-api/internal/platform/mongodb"
	"github.com/medcamphq/medcamp-api/internal/platform/stripegw"
	"github.com/medcamphq/medcamp-api/internal/service/auth"
	"github.com/medcamphq/medcamp-api/internal/service/payment"
	"github.com/medcamphq/medcamp-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	client *mongo.Client

	// Stores (using interfaces for proper abstraction)
	campStore         store.CampStore
	userStore         store.UserStore
	registrationStore store.RegistrationStore
	paymentStore      store.PaymentStore
	feedbackStore     store.FeedbackStore

	// Service interfaces
	jwtService     auth.JWTService
	paymentGateway payment.Gateway
	paymentService *payment.Service
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// a connected database client that must be established beforehand.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	client *mongo.Client,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		client: client,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_hours", cfg.Auth.TokenLifetimeHours)

	db := mongodb.Database(client, cfg.Database)

	app.campStore = mongodb.NewCampStore(db)
	app.registrationStore = mongodb.NewRegistrationStore(db)
	app.paymentStore = mongodb.NewPaymentStore(db)
	app.feedbackStore = mongodb.NewFeedbackStore(db)

	// The user store creates its unique email index up front.
	app.userStore, err = mongodb.NewUserStore(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize user store: %w", err)
	}

	app.paymentGateway = stripegw.New(cfg.Payment)
	app.paymentService = payment.NewService(app.paymentGateway, app.paymentStore)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
