// Package fixtures provides a small shared catalog for tests.
package fixtures

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/SkinBot_Go/internal/catalog"
	"github.com/osse101/SkinBot_Go/internal/domain"
)

// Catalog ids used across tests
const (
	IDRedFox          = 1
	IDBlueMoon        = 2
	IDStattrackRedFox = 3
	IDGreenLeaf       = 4
	IDGoldenEagle     = 5
	IDWildBox         = 6
	IDNightBox        = 7
	IDDragon          = 8
	IDMissing         = 99
)

// CatalogJSON is the sample catalog in its on-disk form
const CatalogJSON = `[
  {"id": 1, "name": "Red Fox", "value": "3", "collection": "wild_west"},
  {"id": 2, "name": "Blue Moon", "value": 5, "collection": "night-sky"},
  {"id": 3, "name": "StatTrack Red Fox", "value": "3", "collection": "wild_west"},
  {"id": 4, "name": "Green Leaf", "value": "1", "collection": "Wild_West"},
  {"id": 5, "name": "Golden Eagle", "value": "7", "collection": "wild_west"},
  {"id": 6, "name": "Wild Box", "value": null, "contains": "1,4,5,99"},
  {"id": 7, "name": "Night Box", "contains": [2, 8, 1]},
  {"id": 8, "name": "Dragon", "value": "'4'", "collection": "night-sky"}
]`

func str(s string) *string { return &s }

// Skins returns the sample catalog entries in order
func Skins() []domain.Skin {
	return []domain.Skin{
		{ID: IDRedFox, Name: "Red Fox", Value: "3", Collection: str("wild_west")},
		{ID: IDBlueMoon, Name: "Blue Moon", Value: "5", Collection: str("night-sky")},
		{ID: IDStattrackRedFox, Name: "StatTrack Red Fox", Value: "3", Collection: str("wild_west")},
		{ID: IDGreenLeaf, Name: "Green Leaf", Value: "1", Collection: str("Wild_West")},
		{ID: IDGoldenEagle, Name: "Golden Eagle", Value: "7", Collection: str("wild_west")},
		{ID: IDWildBox, Name: "Wild Box", Contains: domain.ContainsList{IDRedFox, IDGreenLeaf, IDGoldenEagle, IDMissing}},
		{ID: IDNightBox, Name: "Night Box", Contains: domain.ContainsList{IDBlueMoon, IDDragon, IDRedFox}},
		{ID: IDDragon, Name: "Dragon", Value: "'4'", Collection: str("night-sky")},
	}
}

// Catalog returns the sample catalog
func Catalog(t testing.TB) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(Skins())
	require.NoError(t, err)
	return c
}
