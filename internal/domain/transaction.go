package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionType identifies the operation recorded in the ledger.
type TransactionType string

const (
	TransactionDeploy          TransactionType = "deploy"
	TransactionTransfer        TransactionType = "transfer"
	TransactionSwap            TransactionType = "swap"
	TransactionLiquidityAdd    TransactionType = "liquidity_add"
	TransactionLiquidityRemove TransactionType = "liquidity_remove"
)

// TransactionStatus is the confirmation state of a ledger entry.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionConfirmed TransactionStatus = "confirmed"
	TransactionFailed    TransactionStatus = "failed"
)

// Transaction represents a ledger entry.
// Corresponds to the transactions collection.
type Transaction struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"userId"`
	TokenID     string             `bson:"tokenId,omitempty"`
	Type        TransactionType    `bson:"type"`
	Amount      string             `bson:"amount,omitempty"`
	FromAddress string             `bson:"fromAddress,omitempty"`
	ToAddress   string             `bson:"toAddress,omitempty"`
	TxHash      string             `bson:"txHash,omitempty"` // unset until broadcast
	Network     string             `bson:"network"`
	Status      TransactionStatus  `bson:"status"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}
