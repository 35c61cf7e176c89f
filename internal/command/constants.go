package command

// Command names
const (
	CmdStart      = "start"
	CmdHelp       = "help"
	CmdSkin       = "skin"
	CmdCollection = "col"
	CmdInventory  = "inv"
	CmdAdd        = "add"
	CmdDelete     = "del"
	CmdBlock      = "block"
	CmdUnblock    = "unblock"
)

var commandOrder = []string{
	CmdStart, CmdHelp, CmdSkin, CmdCollection, CmdInventory,
	CmdAdd, CmdDelete, CmdBlock, CmdUnblock,
}

// Help feature keys
const (
	featureStart = "start"
	featureHelp  = "help"
)

const quantitySeparator = ":"

// Log messages
const (
	LogMsgCommandReceived = "Command received"
	LogMsgUnknownCommand  = "Unknown command ignored"
	LogMsgCommandFailed   = "Command failed"
	LogMsgMutationApplied = "Confirmed mutation applied"
	LogMsgHoldingsFailed  = "Failed to load holdings"
)
