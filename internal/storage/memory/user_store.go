package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gorrillazz-bootstrap/internal/domain"
	"gorrillazz-bootstrap/internal/storage"
)

// UserStore is an in-memory implementation of storage.UserStore.
// It enforces the same uniqueness as the users indexes: walletAddress is
// always unique, email and username only when set.
type UserStore struct {
	mu         sync.RWMutex
	byWallet   map[string]*domain.User
	byEmail    map[string]*domain.User
	byUsername map[string]*domain.User
}

// NewUserStore creates a new in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{
		byWallet:   make(map[string]*domain.User),
		byEmail:    make(map[string]*domain.User),
		byUsername: make(map[string]*domain.User),
	}
}

// Insert adds u. Returns ErrDuplicateKey on a taken wallet, email or username.
func (s *UserStore) Insert(_ context.Context, u *domain.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byWallet[u.WalletAddress]; exists {
		return "", storage.ErrDuplicateKey
	}
	if u.Email != "" {
		if _, exists := s.byEmail[u.Email]; exists {
			return "", storage.ErrDuplicateKey
		}
	}
	if u.Username != "" {
		if _, exists := s.byUsername[u.Username]; exists {
			return "", storage.ErrDuplicateKey
		}
	}

	u.ID = primitive.NewObjectID()
	userCopy := *u
	s.byWallet[u.WalletAddress] = &userCopy
	if u.Email != "" {
		s.byEmail[u.Email] = &userCopy
	}
	if u.Username != "" {
		s.byUsername[u.Username] = &userCopy
	}
	return u.ID.Hex(), nil
}

var _ storage.UserStore = (*UserStore)(nil)
