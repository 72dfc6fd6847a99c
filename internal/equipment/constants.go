package equipment

// Log messages
const (
	LogMsgEquipCalled    = "Equip called"
	LogMsgUnequipCalled  = "Unequip called"
	LogMsgItemEquipped   = "Item equipped"
	LogMsgItemUnequipped = "Item unequipped"
)

// Error message formats
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)
