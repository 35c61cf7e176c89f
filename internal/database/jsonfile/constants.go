package jsonfile

// File layout
const (
	inventorySuffix = "_inventory.json"
	indent          = "    "
	dirPerm         = 0o755
	filePerm        = 0o644
)

// Error messages
const (
	ErrMsgReadFailed   = "failed to read %s: %w"
	ErrMsgDecodeFailed = "failed to decode %s: %w"
	ErrMsgWriteFailed  = "failed to write %s: %w"
)
