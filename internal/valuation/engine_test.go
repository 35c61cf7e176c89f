package valuation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/market"
	"github.com/osse101/SkinBot_Go/internal/naming"
	"github.com/osse101/SkinBot_Go/internal/testing/fixtures"
)

type staticSnapshot struct {
	snap *market.Snapshot
}

func (s staticSnapshot) Snapshot() *market.Snapshot { return s.snap }

func newEngine(t *testing.T, quotes []domain.MarketQuote, fetchedAt time.Time) Engine {
	t.Helper()
	resolver, err := naming.NewResolver(fixtures.Catalog(t), 16)
	require.NoError(t, err)
	return NewEngine(resolver, staticSnapshot{snap: market.NewSnapshot(quotes, fetchedAt)})
}

func TestValue_LinesAndTotals(t *testing.T) {
	fetchedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	engine := newEngine(t, []domain.MarketQuote{
		{SkinID: "1", SalePrice: "12.50"},
		{SkinID: "2", SalePrice: "abc"},
		{SkinID: "4", SalePrice: "0.3"},
	}, fetchedAt)

	inv := domain.NewInventory(
		domain.InventoryEntry{Name: "Red Fox", Quantity: 4},
		domain.InventoryEntry{Name: "Blue Moon", Quantity: 2},
		domain.InventoryEntry{Name: "Ghost Item", Quantity: 3},
		domain.InventoryEntry{Name: "Dragon", Quantity: 1},
		domain.InventoryEntry{Name: "Green Leaf", Quantity: 3},
	)

	report := engine.Value(context.Background(), inv)
	require.Len(t, report.Lines, 5)

	redFox := report.Lines[0]
	assert.True(t, redFox.Found)
	assert.Equal(t, fixtures.IDRedFox, redFox.SkinID)
	assert.Equal(t, market.PriceOK, redFox.PriceSource)
	assert.InDelta(t, 12.5, redFox.UnitPrice, 1e-9)
	assert.InDelta(t, 50.0, redFox.Value, 1e-9)
	assert.InDelta(t, 40.0, redFox.ValueAfterFee, 1e-9)

	blueMoon := report.Lines[1]
	assert.True(t, blueMoon.Found)
	assert.Equal(t, market.PriceUnparsable, blueMoon.PriceSource)
	assert.Zero(t, blueMoon.Value)

	ghost := report.Lines[2]
	assert.False(t, ghost.Found)
	assert.Equal(t, "Ghost Item", ghost.Name)
	assert.Equal(t, 3, ghost.Quantity)
	assert.Zero(t, ghost.Value)

	dragon := report.Lines[3]
	assert.True(t, dragon.Found)
	assert.Equal(t, market.PriceNoQuote, dragon.PriceSource)
	assert.Zero(t, dragon.UnitPrice)

	// Accumulated without per-line rounding
	assert.InDelta(t, 50.9, report.Total, 1e-9)
	assert.InDelta(t, report.Total*domain.SaleFeeFactor, report.TotalAfterFee, 0)

	require.NotNil(t, report.PricedAt)
	assert.Equal(t, fetchedAt, *report.PricedAt)
}

func TestValue_TotalIsSumOfLines(t *testing.T) {
	engine := newEngine(t, []domain.MarketQuote{
		{SkinID: "1", SalePrice: "1.1"},
		{SkinID: "5", SalePrice: "2.25"},
		{SkinID: "8", SalePrice: "3"},
	}, time.Now())

	inv := domain.NewInventory(
		domain.InventoryEntry{Name: "Red Fox", Quantity: 7},
		domain.InventoryEntry{Name: "Golden Eagle", Quantity: 9},
		domain.InventoryEntry{Name: "Dragon", Quantity: 11},
	)

	report := engine.Value(context.Background(), inv)

	var sum float64
	for _, line := range report.Lines {
		sum += line.Value
	}
	assert.Equal(t, sum, report.Total)
	assert.Equal(t, report.Total*0.8, report.TotalAfterFee)
}

func TestValue_EmptyInventoryAndNoSnapshot(t *testing.T) {
	engine := newEngine(t, nil, time.Time{})

	report := engine.Value(context.Background(), domain.NewInventory())
	assert.Empty(t, report.Lines)
	assert.Zero(t, report.Total)
	assert.Zero(t, report.TotalAfterFee)
	assert.Nil(t, report.PricedAt)
}

func TestValue_NoTransliterationForStoredNames(t *testing.T) {
	engine := newEngine(t, []domain.MarketQuote{{SkinID: "1", SalePrice: "10"}}, time.Now())

	// "ред фокс" would only match through transliteration
	inv := domain.NewInventory(domain.InventoryEntry{Name: "ред фокс", Quantity: 1})

	report := engine.Value(context.Background(), inv)
	require.Len(t, report.Lines, 1)
	assert.False(t, report.Lines[0].Found)
	assert.Zero(t, report.Total)
}
