package store

import "errors"

// Recoverable, user-facing failures. Command handlers branch on these with
// errors.Is and turn them into chat responses; anything else is logged and
// reported as a generic failure.
var (
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrItemNotFound          = errors.New("item not found")
	ErrShopNotFound          = errors.New("shop not found")
	ErrItemInactive          = errors.New("item inactive")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrDuplicateItemName     = errors.New("duplicate item name")
)
