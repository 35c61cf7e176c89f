package postgres

// Log messages
const (
	LogMsgRollbackFailed = "Failed to rollback transaction"
)

// Error messages
const (
	ErrMsgBeginTx        = "failed to begin transaction: %w"
	ErrMsgLockUser       = "failed to lock user %s: %w"
	ErrMsgLoadInventory  = "failed to load inventory for %s: %w"
	ErrMsgSaveInventory  = "failed to save inventory for %s: %w"
	ErrMsgCommit         = "failed to commit transaction: %w"
	ErrMsgBlocklistQuery = "blocklist query failed: %w"
)

const tableInventoryEntries = "inventory_entries"
