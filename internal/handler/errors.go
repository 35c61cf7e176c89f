package handler

// Generic HTTP error messages for client responses.
// These never expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"

	ErrMsgGetInventoryFailed = "Failed to get inventory"
	ErrMsgBlocklistFailed    = "Failed to update blocklist"
	ErrMsgRefreshFailed      = "Market refresh failed"
	ErrMsgTopicNotFound      = "Topic '%s' not found in feature '%s'"
	ErrMsgFeatureNotFound    = "Feature or topic '%s' not found"
)

// Success messages for API responses
const (
	MsgItemAddedSuccess   = "Item added successfully"
	MsgItemRemovedSuccess = "Item removed successfully"
	MsgUserBlocked        = "User blocked"
	MsgUserAlreadyBlocked = "User already blocked"
	MsgUserUnblocked      = "User unblocked"
	MsgUserNotBlocked     = "User was not blocked"
	MsgMarketRefreshed    = "Market data refreshed"
)

// Log messages
const (
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgRequestDecoded   = "Request decoded"
	LogMsgMissingParam     = "Missing query parameter"
	LogMsgServiceError     = "Service error"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgItemAdded        = "Item added via API"
	LogMsgItemRemoved      = "Item removed via API"
	LogMsgBlocklistChanged = "Blocklist changed via API"
)
