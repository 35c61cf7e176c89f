// Package contents groups container and collection members by rarity.
package contents

import (
	"context"

	"github.com/osse101/SkinBot_Go/internal/catalog"
	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/logger"
	"github.com/osse101/SkinBot_Go/internal/rarity"
)

// Log messages
const (
	LogMsgUnknownContainedID = "Container references an unknown item, skipping"
)

// Group is one rarity tier and its member names in catalog-reference order
type Group struct {
	Rarity domain.Rarity `json:"rarity"`
	Names  []string      `json:"names"`
}

// Expander resolves container contents and collection membership
type Expander interface {
	ExpandContainer(ctx context.Context, container domain.Skin) []Group
	ExpandCollection(ctx context.Context, collection string) []Group
}

type expander struct {
	catalog *catalog.Catalog
}

// NewExpander creates an Expander over the catalog
func NewExpander(c *catalog.Catalog) Expander {
	return &expander{catalog: c}
}

// ExpandContainer groups the contained items by rarity. Unknown ids are skipped.
func (e *expander) ExpandContainer(ctx context.Context, container domain.Skin) []Group {
	members := make([]domain.Skin, 0, len(container.Contains))
	for _, id := range container.Contains {
		s, ok := e.catalog.LookupByID(id)
		if !ok {
			logger.FromContext(ctx).Warn(LogMsgUnknownContainedID,
				"container_id", container.ID, "item_id", id)
			continue
		}
		members = append(members, s)
	}
	return GroupByRarity(members)
}

// ExpandCollection groups the non-stattrack members of a collection by rarity
func (e *expander) ExpandCollection(_ context.Context, collection string) []Group {
	return GroupByRarity(e.catalog.ItemsInCollection(collection))
}

// GroupByRarity buckets skins by tier, keeps first-seen order within a bucket
// and returns buckets in ascending tier order
func GroupByRarity(skins []domain.Skin) []Group {
	index := make(map[domain.Rarity]int)
	var groups []Group

	for _, s := range skins {
		tier := rarity.Classify(s.Value)
		i, ok := index[tier]
		if !ok {
			i = len(groups)
			index[tier] = i
			groups = append(groups, Group{Rarity: tier})
		}
		groups[i].Names = append(groups[i].Names, s.Name)
	}

	tiers := make([]domain.Rarity, len(groups))
	for i, g := range groups {
		tiers[i] = g.Rarity
	}
	rarity.Sort(tiers)

	sorted := make([]Group, len(groups))
	for i, tier := range tiers {
		sorted[i] = groups[index[tier]]
	}
	return sorted
}

// Count returns the total number of names across groups
func Count(groups []Group) int {
	n := 0
	for _, g := range groups {
		n += len(g.Names)
	}
	return n
}
