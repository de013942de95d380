package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account record.
// Corresponds to the users collection.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	WalletAddress string             `bson:"walletAddress"`      // unique
	Email         string             `bson:"email,omitempty"`    // unique when present
	Username      string             `bson:"username,omitempty"` // unique when present
	GorrBalance   float64            `bson:"gorrBalance"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}
