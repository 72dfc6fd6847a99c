package market

// Log messages
const (
	LogMsgBuyCalled   = "Buy called"
	LogMsgSellCalled  = "Sell called"
	LogMsgItemsBought = "Items bought"
	LogMsgItemsSold   = "Items sold"
)

// Error message formats
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)
