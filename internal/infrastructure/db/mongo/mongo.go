package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/pawcare/vetmarket/internal/infrastructure/config"
)

// The API refuses to start without its store, so the connect deadline is kept
// short enough that a bad deployment fails visibly instead of hanging.
const connectTimeout = 15 * time.Second

// defaultTimeout bounds each repository call against the database.
const defaultTimeout = 10 * time.Second

// Connect opens a client for the marketplace database named in cfg and pings
// the primary before handing it out. Callers own the returned client and must
// Disconnect it on shutdown.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	opts := options.Client().ApplyURI(cfg.URI).SetAppName("vetmarket-api")
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to %q: %w", cfg.Database, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping %q: %w", cfg.Database, err)
	}

	return client, client.Database(cfg.Database), nil
}
