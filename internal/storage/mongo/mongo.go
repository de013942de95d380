package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client wraps mongo.Client bound to a single database.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a MongoDB client for uri and verifies the server is reachable.
func Connect(ctx context.Context, uri, database string) (*Client, error) {
	if database == "" {
		return nil, fmt.Errorf("mongo database name is empty")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	// mongo.Connect does not dial; ping so unreachable hosts and bad
	// credentials fail here.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Client{client: client, db: client.Database(database)}, nil
}

// DB returns the bound database handle.
func (c *Client) DB() *mongo.Database {
	return c.db
}

// Close disconnects the client.
func (c *Client) Close(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongo: %w", err)
	}
	return nil
}

// isDuplicateKeyError checks if err is a unique index violation (E11000).
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	return mongo.IsDuplicateKeyError(err)
}

// isNotFoundError checks if err indicates no matching document.
func isNotFoundError(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
