package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorrillazz-bootstrap/internal/domain"
	"gorrillazz-bootstrap/internal/storage"
)

func TestPriceStore_InsertAndLatest(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewPriceStore(client.DB())

	older := &domain.Price{Price: 1.00, Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := &domain.Price{Price: 1.25, Timestamp: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)}

	id, err := store.Insert(ctx, newer)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, newer.ID.Hex())

	_, err = store.Insert(ctx, older)
	require.NoError(t, err)

	latest, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, latest.ID)
	assert.InDelta(t, 1.25, latest.Price, 0.0001)
	assert.True(t, latest.Timestamp.Equal(newer.Timestamp))
}

func TestPriceStore_LatestEmpty(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := NewPriceStore(client.DB()).Latest(context.Background())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPriceStore_DuplicatePricesAllowed(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewPriceStore(client.DB())
	now := time.Now().UTC()

	for i := 0; i < 3; i++ {
		_, err := store.Insert(ctx, domain.NewSeedPrice(now))
		require.NoError(t, err)
	}

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
