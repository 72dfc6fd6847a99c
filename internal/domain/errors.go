package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	ErrMsgUserNotFound      = "user not found"
	ErrMsgCharacterNotFound = "character not found"
	ErrMsgItemNotFound      = "item not found"
	ErrMsgNotInInventory    = "item not in inventory"
	ErrMsgNotEquipped       = "item not equipped"

	ErrMsgForbidden    = "not the owner of this character"
	ErrMsgUnauthorized = "unauthorized"

	ErrMsgNameTaken       = "character name already taken"
	ErrMsgEmailTaken      = "email already registered"
	ErrMsgItemNameTaken   = "item name already taken"
	ErrMsgItemCodeTaken   = "item code already taken"
	ErrMsgAlreadyEquipped = "item already equipped"
	ErrMsgItemEquipped    = "cannot sell an equipped item"

	ErrMsgInsufficientFunds     = "insufficient funds"
	ErrMsgInsufficientInventory = "insufficient inventory"

	ErrMsgInvalidInput = "invalid input"

	// Matches pgx.ErrTxClosed without importing the driver here
	ErrMsgTxClosed = "tx is closed"
)

// Sentinel domain errors. Wrap with fmt.Errorf("...: %w", domain.ErrXxx) for
// additional context; every layer above matches with errors.Is.
var (
	// Absent entities
	ErrUserNotFound      = errors.New(ErrMsgUserNotFound)
	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrNotInInventory    = errors.New(ErrMsgNotInInventory)
	ErrNotEquipped       = errors.New(ErrMsgNotEquipped)

	// Identity and ownership
	ErrForbidden    = errors.New(ErrMsgForbidden)
	ErrUnauthorized = errors.New(ErrMsgUnauthorized)

	// Conflicts
	ErrNameTaken       = errors.New(ErrMsgNameTaken)
	ErrEmailTaken      = errors.New(ErrMsgEmailTaken)
	ErrItemNameTaken   = errors.New(ErrMsgItemNameTaken)
	ErrItemCodeTaken   = errors.New(ErrMsgItemCodeTaken)
	ErrAlreadyEquipped = errors.New(ErrMsgAlreadyEquipped)
	ErrItemEquipped    = errors.New(ErrMsgItemEquipped)

	// Economy
	ErrInsufficientFunds     = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientInventory = errors.New(ErrMsgInsufficientInventory)

	// Validation
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
