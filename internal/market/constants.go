package market

import "time"

// DefaultRefreshInterval is how old a snapshot may get before a refresh fetches again
const DefaultRefreshInterval = 600 * time.Second

// DefaultTimeout bounds a single upstream request
const DefaultTimeout = 30 * time.Second

const (
	userAgent      = "SkinBot/1.0"
	refreshFlight  = "refresh"
	refreshJobName = "market_refresh"
)

// Log messages
const (
	LogMsgRefreshSucceeded = "Market data refreshed"
	LogMsgRefreshFailed    = "Market data refresh failed, keeping previous snapshot"
	LogMsgRefreshDisabled  = "Market URL not configured, quotes stay empty"
	LogMsgDuplicateQuote   = "Duplicate market quote, keeping the first"
)

// Log fields
const (
	LogFieldQuotes   = "quotes"
	LogFieldDuration = "duration"
	LogFieldError    = "error"
	LogFieldSkinID   = "skin_id"
	LogFieldAge      = "snapshot_age"
)

// Error messages
const (
	ErrMsgRequestFailed = "request to %s failed: %w"
	ErrMsgBadStatus     = "unexpected status %d from %s"
	ErrMsgDecodeFailed  = "failed to decode quotes: %w"
)
