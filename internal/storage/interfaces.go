package storage

import (
	"context"

	"gorrillazz-bootstrap/internal/domain"
)

// PriceStore provides access to gorrPrices storage.
type PriceStore interface {
	// Insert appends a price point and returns its generated ID.
	Insert(ctx context.Context, p *domain.Price) (string, error)

	// Latest returns the most recent price point. Returns ErrNotFound if empty.
	Latest(ctx context.Context) (*domain.Price, error)

	// Count returns the number of stored price points.
	Count(ctx context.Context) (int64, error)
}

// UserStore provides access to users storage.
type UserStore interface {
	// Insert adds a user. Returns ErrDuplicateKey if walletAddress, email or
	// username is already taken.
	Insert(ctx context.Context, u *domain.User) (string, error)
}
