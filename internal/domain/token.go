package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TokenStatus is the deployment state of an issued token.
type TokenStatus string

const (
	TokenStatusPending   TokenStatus = "pending"
	TokenStatusDeploying TokenStatus = "deploying"
	TokenStatusDeployed  TokenStatus = "deployed"
	TokenStatusFailed    TokenStatus = "failed"
)

// Token represents issued token metadata.
// Corresponds to the tokens collection.
type Token struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Symbol          string             `bson:"symbol"`
	Description     string             `bson:"description,omitempty"`
	TotalSupply     string             `bson:"totalSupply"` // decimal string, may exceed int64
	Decimals        int                `bson:"decimals"`
	LogoURL         string             `bson:"logoUrl,omitempty"`
	Network         string             `bson:"network"`
	ContractAddress string             `bson:"contractAddress,omitempty"` // set once deployed
	CreatorID       string             `bson:"creatorId"`
	Status          TokenStatus        `bson:"status"`
	Mintable        bool               `bson:"mintable"`
	Burnable        bool               `bson:"burnable"`
	Pausable        bool               `bson:"pausable"`
	Website         string             `bson:"website,omitempty"`
	Twitter         string             `bson:"twitter,omitempty"`
	Telegram        string             `bson:"telegram,omitempty"`
	Discord         string             `bson:"discord,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}
