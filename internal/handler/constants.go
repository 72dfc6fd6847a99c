package handler

// URL path parameter names
const (
	URLParamCharacterID = "characterID"
	URLParamItemCode    = "itemCode"
)

// Request-level error messages
const (
	ErrMsgInvalidRequestBody = "Invalid request body"
	ErrMsgValidationFailed   = "Validation failed"
	ErrMsgInvalidCharacterID = "Invalid character ID"
	ErrMsgInvalidItemCode    = "Invalid item code"
)

// Success messages
const (
	MsgSignUpComplete   = "Sign-up complete"
	MsgCharacterDeleted = "Character deleted"
	MsgItemCreated      = "Item created"
)

// Log messages
const (
	LogMsgSignUpFailed          = "Sign-up failed"
	LogMsgSignInFailed          = "Sign-in failed"
	LogMsgCreateCharacterFailed = "Character creation failed"
	LogMsgDeleteCharacterFailed = "Character deletion failed"
	LogMsgGetCharacterFailed    = "Character lookup failed"
	LogMsgListInventoryFailed   = "Inventory listing failed"
	LogMsgListEquipmentFailed   = "Equipment listing failed"
	LogMsgGrantMoneyFailed      = "Money grant failed"
	LogMsgEquipFailed           = "Equip failed"
	LogMsgUnequipFailed         = "Unequip failed"
	LogMsgBuyFailed             = "Buy failed"
	LogMsgSellFailed            = "Sell failed"
	LogMsgCreateItemFailed      = "Item creation failed"
	LogMsgUpdateItemFailed      = "Item update failed"
	LogMsgListItemsFailed       = "Item listing failed"
	LogMsgGetItemFailed         = "Item lookup failed"
)
