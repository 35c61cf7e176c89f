package domain

// Platform constants
const (
	PlatformTelegram = "telegram"
	PlatformDiscord  = "discord"
	PlatformAPI      = "api"
)

// StattrackMarker is the lowercase token that marks a stattrack variant in a skin name
const StattrackMarker = "stattrack"

// SaleFeeFactor is the share of market value a seller actually receives
const SaleFeeFactor = 0.8

// Rarity is the display tier of a skin
type Rarity string

// Rarity tiers, from most to least common
const (
	RarityCommon     Rarity = "Common"
	RarityUncommon   Rarity = "Uncommon"
	RarityRare       Rarity = "Rare"
	RarityEpic       Rarity = "Epic"
	RarityLegendary  Rarity = "Legendary"
	RarityArcane     Rarity = "Arcane"
	RarityNameless   Rarity = "Nameless"
	RarityContainers Rarity = "Containers"
)

// ValidPlatforms lists the platforms a request may originate from
var ValidPlatforms = []string{PlatformTelegram, PlatformDiscord, PlatformAPI}

// IsValidPlatform reports whether p is a known platform
func IsValidPlatform(p string) bool {
	for _, v := range ValidPlatforms {
		if v == p {
			return true
		}
	}
	return false
}
