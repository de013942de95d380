package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"

	"gorrillazz-bootstrap/internal/storage/migrations"
)

// setupTestDB starts a MongoDB container, connects a Client and applies the schema.
// Returns a cleanup function that must be called after tests complete.
func setupTestDB(t *testing.T) (*Client, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err, "failed to start mongo container")

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err, "failed to get connection string")

	client, err := Connect(ctx, uri, "gorrillazz")
	require.NoError(t, err, "failed to connect")

	applySchema(t, ctx, client)

	cleanup := func() {
		_ = client.Close(ctx)
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return client, cleanup
}

// applySchema creates the collections and indexes from the embedded schema.
func applySchema(t *testing.T, ctx context.Context, client *Client) {
	t.Helper()

	schema, err := migrations.LoadSchema()
	require.NoError(t, err, "failed to load schema")

	_, err = migrations.EnsureCollections(ctx, client.DB(), schema)
	require.NoError(t, err, "failed to create collections")

	_, err = migrations.EnsureIndexes(ctx, client.DB(), schema)
	require.NoError(t, err, "failed to create indexes")
}
