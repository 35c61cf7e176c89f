package discord

import "time"

// Option names shared by command definitions and handlers
const (
	optName     = "name"
	optQuantity = "quantity"
	optAnswer   = "answer"
	optUser     = "user"
)

const (
	maxChoices         = 25
	maxEmbedDesc       = 4096
	interactionTimeout = 10 * time.Second
)

// Embed colors
const (
	ColorInfo    = 0x3498DB
	ColorSkin    = 0xF1C40F
	ColorAdmin   = 0xE74C3C
	ColorDefault = 0x95A5A6
)

const (
	FooterSkinBot      = "SkinBot"
	FooterSkinBotAdmin = "SkinBot Admin"
)

// Log messages
const (
	LogMsgCheckingCommands   = "Checking Discord commands..."
	LogMsgForceUpdate        = "Force update enabled - replacing all commands"
	LogMsgCommandsUnchanged  = "Commands unchanged, skipping registration"
	LogMsgCommandsChanged    = "Commands changed, updating..."
	LogMsgCommandsUpdated    = "Commands updated successfully"
	LogMsgBotReady           = "Bot is ready"
	LogMsgBotRunning         = "Discord bot is now running"
	LogMsgBotStopped         = "Discord bot stopped"
	LogMsgDeferFailed        = "Failed to send deferred response"
	LogMsgEditFailed         = "Failed to edit interaction response"
	LogMsgAutocompleteFailed = "Failed to respond to autocomplete"
	LogMsgUnhandledComplete  = "Unhandled autocomplete command"
	LogMsgInteractionPanic   = "Recovered from panic in interaction handler"
)
