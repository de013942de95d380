package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gorrillazz-bootstrap/internal/domain"
	"gorrillazz-bootstrap/internal/storage"
)

// PriceStore is an in-memory implementation of storage.PriceStore.
type PriceStore struct {
	mu     sync.RWMutex
	prices []*domain.Price // insertion order
}

// NewPriceStore creates a new in-memory price store.
func NewPriceStore() *PriceStore {
	return &PriceStore{}
}

// Insert appends p and assigns it a new ObjectID.
func (s *PriceStore) Insert(_ context.Context, p *domain.Price) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = primitive.NewObjectID()
	priceCopy := *p
	s.prices = append(s.prices, &priceCopy)
	return p.ID.Hex(), nil
}

// Latest returns the price with the greatest timestamp. Ties go to the
// earliest inserted. Returns ErrNotFound if empty.
func (s *PriceStore) Latest(_ context.Context) (*domain.Price, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *domain.Price
	for _, p := range s.prices {
		if latest == nil || p.Timestamp.After(latest.Timestamp) {
			latest = p
		}
	}
	if latest == nil {
		return nil, storage.ErrNotFound
	}

	priceCopy := *latest
	return &priceCopy, nil
}

// Count returns the number of stored prices.
func (s *PriceStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.prices)), nil
}

var _ storage.PriceStore = (*PriceStore)(nil)
