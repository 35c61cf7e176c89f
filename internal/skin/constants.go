package skin

// DefaultImageBaseURL hosts the skin artwork, one <id>.png per catalog id
const DefaultImageBaseURL = "https://raw.githubusercontent.com/Dinoger/UnionBot/refs/heads/main/Skin"

const (
	kindItem       = "item"
	kindCollection = "collection"
)

// Log messages
const (
	LogMsgLookupMiss     = "No catalog match"
	LogMsgLookupHit      = "Catalog match"
	LogMsgCollectionMiss = "No collection match"
)
