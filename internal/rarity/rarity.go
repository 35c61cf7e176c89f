// Package rarity maps raw catalog rarity codes onto display tiers.
package rarity

import (
	"math"
	"sort"
	"strings"

	"github.com/osse101/SkinBot_Go/internal/domain"
)

// DefaultCode is used when a skin carries no rarity code
const DefaultCode = "0"

var codeToTier = map[string]domain.Rarity{
	"1": domain.RarityCommon,
	"2": domain.RarityUncommon,
	"3": domain.RarityRare,
	"4": domain.RarityEpic,
	"5": domain.RarityLegendary,
	"6": domain.RarityArcane,
	"7": domain.RarityNameless,
}

var tierOrder = map[domain.Rarity]int{
	domain.RarityCommon:    1,
	domain.RarityUncommon:  2,
	domain.RarityRare:      3,
	domain.RarityEpic:      4,
	domain.RarityLegendary: 5,
	domain.RarityArcane:    6,
	domain.RarityNameless:  7,
}

// Normalize trims whitespace and strips apostrophes. Empty input becomes DefaultCode.
func Normalize(raw domain.RawValue) string {
	s := strings.TrimSpace(raw.String())
	if s == "" {
		return DefaultCode
	}
	return strings.ReplaceAll(s, "'", "")
}

// Classify returns the tier for a raw code. Anything outside 1..7 is a container.
func Classify(raw domain.RawValue) domain.Rarity {
	if tier, ok := codeToTier[Normalize(raw)]; ok {
		return tier
	}
	return domain.RarityContainers
}

// Order returns the sort rank of a tier. Unmapped tiers sort last.
func Order(tier domain.Rarity) int {
	if o, ok := tierOrder[tier]; ok {
		return o
	}
	return math.MaxInt
}

// Sort orders tiers ascending by rank, keeping the input order among equal ranks
func Sort(tiers []domain.Rarity) {
	sort.SliceStable(tiers, func(i, j int) bool {
		return Order(tiers[i]) < Order(tiers[j])
	})
}
