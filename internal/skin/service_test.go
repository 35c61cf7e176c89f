package skin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkinBot_Go/internal/contents"
	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/naming"
	"github.com/osse101/SkinBot_Go/internal/testing/fixtures"
)

type quoteMap map[int]domain.MarketQuote

func (q quoteMap) QuoteFor(id int) (domain.MarketQuote, bool) {
	quote, ok := q[id]
	return quote, ok
}

var fixedNow = time.Unix(1700000000, 0)

func newTestService(t *testing.T, quotes quoteMap) Service {
	t.Helper()
	c := fixtures.Catalog(t)
	resolver, err := naming.NewResolver(c, 32)
	require.NoError(t, err)
	return NewService(resolver, contents.NewExpander(c), quotes, "https://img.example/skins/",
		WithClock(func() time.Time { return fixedNow }))
}

func TestLookup_Item(t *testing.T) {
	svc := newTestService(t, quoteMap{
		fixtures.IDRedFox: {SkinID: "1", SalePrice: "12.50", SalesCount: "3"},
	})

	card, err := svc.Lookup(context.Background(), "red fox")
	require.NoError(t, err)

	assert.Equal(t, fixtures.IDRedFox, card.Skin.ID)
	assert.Equal(t, domain.RarityRare, card.Rarity)
	assert.Equal(t, "Wild west", card.Collection)
	assert.False(t, card.IsContainer())
	assert.Empty(t, card.Contents)
	require.NotNil(t, card.Quote)
	assert.Equal(t, domain.RawValue("12.50"), card.Quote.SalePrice)
	assert.Equal(t, "https://img.example/skins/1.png?v=1700000000", card.ImageURL)
}

func TestLookup_Container(t *testing.T) {
	svc := newTestService(t, quoteMap{})

	card, err := svc.Lookup(context.Background(), "Wild Box")
	require.NoError(t, err)

	assert.True(t, card.IsContainer())
	assert.Nil(t, card.Quote)
	assert.Empty(t, card.Rarity)
	assert.Equal(t, []contents.Group{
		{Rarity: domain.RarityCommon, Names: []string{"Green Leaf"}},
		{Rarity: domain.RarityRare, Names: []string{"Red Fox"}},
		{Rarity: domain.RarityNameless, Names: []string{"Golden Eagle"}},
	}, card.Contents)
}

func TestLookup_StattrackUsesBaseImage(t *testing.T) {
	svc := newTestService(t, quoteMap{})

	card, err := svc.Lookup(context.Background(), "stattrack red fox")
	require.NoError(t, err)

	assert.Equal(t, fixtures.IDStattrackRedFox, card.Skin.ID)
	assert.Equal(t, "https://img.example/skins/1.png?v=1700000000", card.ImageURL)
}

func TestLookup_TransliterationFallback(t *testing.T) {
	svc := newTestService(t, quoteMap{})

	card, err := svc.Lookup(context.Background(), "вилд бокс")
	require.NoError(t, err)
	assert.Equal(t, fixtures.IDWildBox, card.Skin.ID)
	assert.True(t, card.Transliterated)
}

func TestLookup_NotFound(t *testing.T) {
	svc := newTestService(t, quoteMap{})

	for _, q := range []string{"zzz unknown", "", "   "} {
		_, err := svc.Lookup(context.Background(), q)
		assert.ErrorIs(t, err, domain.ErrItemNotFound, q)
	}
}

func TestCollection(t *testing.T) {
	svc := newTestService(t, quoteMap{})

	listing, err := svc.Collection(context.Background(), "wild west")
	require.NoError(t, err)

	assert.Equal(t, "wild_west", listing.Name)
	assert.Equal(t, "Wild west", listing.Title)
	assert.Equal(t, []contents.Group{
		{Rarity: domain.RarityCommon, Names: []string{"Green Leaf"}},
		{Rarity: domain.RarityRare, Names: []string{"Red Fox"}},
		{Rarity: domain.RarityNameless, Names: []string{"Golden Eagle"}},
	}, listing.Groups)

	_, err = svc.Collection(context.Background(), "qqqq")
	assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
}

func TestFormatCollection(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"wild_west", "Wild west"},
		{"night-sky", "Night sky"},
		{"Wild_West", "Wild west"},
		{"зимний_лес", "Зимний лес"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCollection(tt.in))
	}
}

func TestNewService_DefaultImageBase(t *testing.T) {
	svc := NewService(nil, nil, quoteMap{}, "").(*service)
	assert.Equal(t, DefaultImageBaseURL, svc.imageBaseURL)
}
