package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgItemNotFound       = "item not found"
	ErrMsgCollectionNotFound = "collection not found"
	ErrMsgCatalogLoad        = "failed to load catalog"

	// Inventory errors
	ErrMsgNotInInventory       = "item not in inventory"
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgInvalidQuantity      = "invalid quantity"

	// Access errors
	ErrMsgUserBlocked = "user is blocked"
	ErrMsgForbidden   = "forbidden"

	// Confirmation errors
	ErrMsgNoPendingConfirmation = "no pending confirmation"
	ErrMsgConfirmationExpired   = "confirmation expired"
	ErrMsgConfirmationHijack    = "confirmation belongs to another user"

	// Upstream errors
	ErrMsgUpstreamFetch = "upstream fetch failed"

	// Input errors
	ErrMsgInvalidInput    = "invalid input"
	ErrMsgInvalidPlatform = "invalid platform"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound       = errors.New(ErrMsgItemNotFound)
	ErrCollectionNotFound = errors.New(ErrMsgCollectionNotFound)
	ErrCatalogLoad        = errors.New(ErrMsgCatalogLoad)

	ErrNotInInventory       = errors.New(ErrMsgNotInInventory)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrInvalidQuantity      = errors.New(ErrMsgInvalidQuantity)

	ErrUserBlocked = errors.New(ErrMsgUserBlocked)
	ErrForbidden   = errors.New(ErrMsgForbidden)

	ErrNoPendingConfirmation = errors.New(ErrMsgNoPendingConfirmation)
	ErrConfirmationExpired   = errors.New(ErrMsgConfirmationExpired)
	ErrConfirmationHijack    = errors.New(ErrMsgConfirmationHijack)

	ErrUpstreamFetch = errors.New(ErrMsgUpstreamFetch)

	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
	ErrInvalidPlatform = errors.New(ErrMsgInvalidPlatform)
)
