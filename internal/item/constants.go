package item

// Log messages
const (
	LogMsgCreateItemCalled = "CreateItem called"
	LogMsgItemCreated      = "Item created"
	LogMsgUpdateItemCalled = "UpdateItem called"
	LogMsgItemUpdated      = "Item updated"
)

// Error message formats
const (
	ErrMsgLookupItemFailed = "failed to look up item: %w"
)
