package telegram

import "time"

const (
	maxRetries  = 3
	retryBase   = 2 * time.Second
	retryGrowth = 2

	pollTimeoutSeconds = 10

	// Telegram limits, in characters
	maxCaptionLength = 1024
	maxMessageLength = 4096
)

// Log messages
const (
	LogMsgConnectRetry    = "Telegram API connection failed, retrying"
	LogMsgConnected       = "Telegram bot authorized"
	LogMsgPollingStarted  = "Telegram polling started"
	LogMsgPollingStopped  = "Telegram polling stopped"
	LogMsgSendFailed      = "Failed to send Telegram message"
	LogMsgPhotoFailed     = "Failed to send photo, falling back to text"
	LogMsgInlineFailed    = "Failed to answer inline query"
	LogMsgUpdateRecovered = "Recovered panic while handling update"
)
