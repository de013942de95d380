package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InitialPrice is the GORR price written by the seed record.
const InitialPrice = 1.00

// Price is a point in the GORR price history.
// Corresponds to the gorrPrices collection.
type Price struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Price     float64            `bson:"price"`
	Timestamp time.Time          `bson:"timestamp"`
}

// NewSeedPrice returns the initial price record stamped at now (UTC).
func NewSeedPrice(now time.Time) *Price {
	return &Price{
		Price:     InitialPrice,
		Timestamp: now.UTC(),
	}
}
