package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PoolStatus is the lifecycle state of a liquidity pool.
type PoolStatus string

const (
	PoolStatusPending  PoolStatus = "pending"
	PoolStatusActive   PoolStatus = "active"
	PoolStatusLocked   PoolStatus = "locked"
	PoolStatusUnlocked PoolStatus = "unlocked"
)

// LiquidityPool represents the pool created for a token.
// Corresponds to the liquidityPools collection. One pool per token.
type LiquidityPool struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	TokenID          string             `bson:"tokenId"`
	InitialLiquidity string             `bson:"initialLiquidity"`
	LockPeriod       int                `bson:"lockPeriod"` // days
	LockedUntil      *time.Time         `bson:"lockedUntil,omitempty"`
	PoolAddress      string             `bson:"poolAddress,omitempty"`
	Status           PoolStatus         `bson:"status"`
	CreatedAt        time.Time          `bson:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt"`
}
