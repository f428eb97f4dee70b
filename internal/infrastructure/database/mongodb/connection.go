package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"loan-tracker/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Client struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewClient(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("database URL is empty in configuration")
	}
	if cfg.Name == "" {
		return nil, fmt.Errorf("database name is empty in configuration")
	}

	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = 10 * time.Second
	}

	safeURI := redactURI(cfg.URL)
	logger.Info("Connecting to MongoDB...", "uri", safeURI, "database", cfg.Name)

	clientOpts := options.Client().
		ApplyURI(cfg.URL).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("unable to create MongoDB client: %w", err)
	}

	if err := verifyConnection(ctx, client, connectTimeout, logger); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	logger.Info("Successfully connected to MongoDB.", "uri", safeURI, "database", cfg.Name)
	return &Client{
		Client:   client,
		Database: client.Database(cfg.Name),
	}, nil
}

func verifyConnection(ctx context.Context, client *mongo.Client, timeout time.Duration, logger *slog.Logger) error {
	logger.Info("Pinging database...")
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Error("Failed to ping database", "error", err)
		return fmt.Errorf("failed to ping database on connect: %w", err)
	}

	return nil
}

func (c *Client) Disconnect(ctx context.Context) error {
	return c.Client.Disconnect(ctx)
}

// Ping reports current store reachability. Used by the diagnostic
// endpoint, which must degrade gracefully rather than fail.
func (c *Client) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return c.Client.Ping(pingCtx, readpref.Primary())
}

// CollectionNames lists the database's collections.
func (c *Client) CollectionNames(ctx context.Context) ([]string, error) {
	return c.Database.ListCollectionNames(ctx, bson.D{})
}

// redactURI hides credentials from a MongoDB URI before logging.
func redactURI(uri string) string {
	scheme := "mongodb://"
	if strings.HasPrefix(uri, "mongodb+srv://") {
		scheme = "mongodb+srv://"
	}
	rest := strings.TrimPrefix(uri, scheme)
	parts := strings.SplitN(rest, "@", 2)
	if len(parts) == 2 {
		return scheme + "***:***@" + parts[1]
	}
	return uri
}
