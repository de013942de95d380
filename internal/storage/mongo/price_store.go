package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gorrillazz-bootstrap/internal/domain"
	"gorrillazz-bootstrap/internal/storage"
)

// PriceStore implements storage.PriceStore using MongoDB.
type PriceStore struct {
	coll *mongo.Collection
}

// NewPriceStore creates a new PriceStore on db.
func NewPriceStore(db *mongo.Database) *PriceStore {
	return &PriceStore{coll: db.Collection(domain.CollectionPrices)}
}

// Compile-time interface check.
var _ storage.PriceStore = (*PriceStore)(nil)

// Insert appends p. The insert is not deduplicated.
func (s *PriceStore) Insert(ctx context.Context, p *domain.Price) (string, error) {
	res, err := s.coll.InsertOne(ctx, p)
	if err != nil {
		if isDuplicateKeyError(err) {
			return "", storage.ErrDuplicateKey
		}
		return "", fmt.Errorf("insert price: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprint(res.InsertedID), nil
	}
	p.ID = id
	return id.Hex(), nil
}

// Latest returns the price with the greatest timestamp.
func (s *PriceStore) Latest(ctx context.Context) (*domain.Price, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	var p domain.Price
	if err := s.coll.FindOne(ctx, bson.D{}, opts).Decode(&p); err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("find latest price: %w", err)
	}
	return &p, nil
}

// Count returns the number of price documents.
func (s *PriceStore) Count(ctx context.Context) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count prices: %w", err)
	}
	return n, nil
}
