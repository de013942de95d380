package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"

	"gorrillazz-bootstrap/internal/storage/migrations"
	mongostore "gorrillazz-bootstrap/internal/storage/mongo"
)

// setupTestDB starts a MongoDB container and returns an empty gorrillazz database
// together with the embedded schema.
// Returns a cleanup function that must be called after tests complete.
func setupTestDB(t *testing.T) (*mongo.Database, *migrations.Schema, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err, "failed to start mongo container")

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err, "failed to get connection string")

	schema, err := migrations.LoadSchema()
	require.NoError(t, err, "failed to load schema")

	client, err := mongostore.Connect(ctx, uri, schema.Database)
	require.NoError(t, err, "failed to connect")

	cleanup := func() {
		_ = client.Close(ctx)
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return client.DB(), schema, cleanup
}
