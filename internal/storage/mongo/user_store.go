package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"gorrillazz-bootstrap/internal/domain"
	"gorrillazz-bootstrap/internal/storage"
)

// UserStore implements storage.UserStore using MongoDB.
type UserStore struct {
	coll *mongo.Collection
}

// NewUserStore creates a new UserStore on db.
func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{coll: db.Collection(domain.CollectionUsers)}
}

// Compile-time interface check.
var _ storage.UserStore = (*UserStore)(nil)

// Insert adds u. Uniqueness is enforced by the users indexes, so the store
// relies on the schema having been applied.
func (s *UserStore) Insert(ctx context.Context, u *domain.User) (string, error) {
	res, err := s.coll.InsertOne(ctx, u)
	if err != nil {
		if isDuplicateKeyError(err) {
			return "", storage.ErrDuplicateKey
		}
		return "", fmt.Errorf("insert user: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprint(res.InsertedID), nil
	}
	u.ID = id
	return id.Hex(), nil
}
