package inventory

// Default policy ceilings
const (
	DefaultAddLimit    = 10000
	DefaultRemoveLimit = 1000
)

// Operation names a quantity-bearing mutation
type Operation string

const (
	OpAdd    Operation = "add"
	OpRemove Operation = "remove"
)

// Log messages
const (
	LogMsgItemAdded       = "Item added to inventory"
	LogMsgItemRemoved     = "Item removed from inventory"
	LogMsgMutationRefused = "Inventory mutation refused"
)

// Error message formats
const (
	ErrMsgQuantityNotNumber  = "%w: %q is not a whole number"
	ErrMsgQuantityOutOfRange = "%w: %d must be between 1 and %d"
	ErrMsgNotHeld            = "%w: %s"
	ErrMsgNotEnough          = "%w: have %d of %s, requested %d"
	ErrMsgBlankName          = "%w: item name is empty"
)
