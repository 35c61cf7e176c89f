package valuation

// Log messages
const (
	LogMsgUnresolvedEntry = "Inventory entry not in catalog"
	LogMsgUnparsablePrice = "Unparsable sale price, valuing at zero"
)
