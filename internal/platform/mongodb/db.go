package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/medcamphq/medcamp-api/internal/config"
)

// Connect establishes a client for the configured deployment and verifies
// it with a ping. The caller owns the client and should Disconnect it on
// shutdown.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Best-effort cleanup; the ping failure is the error that matters.
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}

// Database returns the application database from a connected client.
func Database(client *mongo.Client, cfg config.DatabaseConfig) *mongo.Database {
	return client.Database(cfg.Name)
}

// Pinger adapts a connected client to the health check's ping interface.
type Pinger struct {
	client *mongo.Client
}

// NewPinger creates a Pinger over a connected client.
func NewPinger(client *mongo.Client) *Pinger {
	return &Pinger{client: client}
}

// Ping verifies the primary is reachable.
func (p *Pinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}
