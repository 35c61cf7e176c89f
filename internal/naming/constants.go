package naming

// Matching defaults
const (
	// DefaultCutoff is the minimum similarity ratio a candidate needs to match
	DefaultCutoff = 0.6

	// DefaultCacheSize bounds the memo of resolved queries
	DefaultCacheSize = 4096
)

const (
	kindItem       = "item"
	kindCollection = "collection"
)

// Log messages
const (
	LogMsgTransliterationFallback = "Direct match failed, matched after transliteration"
)

// Log fields
const (
	LogFieldQuery          = "query"
	LogFieldTransliterated = "transliterated"
	LogFieldMatch          = "match"
)
