package character

// Log messages
const (
	LogMsgCreateCharacterCalled = "CreateCharacter called"
	LogMsgCharacterCreated      = "Character created"
	LogMsgDeleteCharacterCalled = "DeleteCharacter called"
	LogMsgCharacterDeleted      = "Character deleted"
	LogMsgGrantMoneyCalled      = "GrantMoney called"
	LogMsgMoneyGranted          = "Money granted"
)

// Error message formats
const (
	ErrMsgLookupCharacterFailed   = "failed to look up character: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)
