package domain

// Collection names in the gorrillazz database.
const (
	CollectionUsers          = "users"
	CollectionTokens         = "tokens"
	CollectionLiquidityPools = "liquidityPools"
	CollectionTransactions   = "transactions"
	CollectionPrices         = "gorrPrices"
)
