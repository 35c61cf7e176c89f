// Package valuation prices inventories against the cached market snapshot.
package valuation

import (
	"context"
	"time"

	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/logger"
	"github.com/osse101/SkinBot_Go/internal/market"
	"github.com/osse101/SkinBot_Go/internal/metrics"
	"github.com/osse101/SkinBot_Go/internal/naming"
)

// Line is the valuation of one inventory entry
type Line struct {
	Name          string             `json:"name"`
	Quantity      int                `json:"quantity"`
	Found         bool               `json:"found"`
	SkinID        int                `json:"skin_id,omitempty"`
	UnitPrice     float64            `json:"unit_price"`
	PriceSource   market.PriceSource `json:"price_source,omitempty"`
	Value         float64            `json:"value"`
	ValueAfterFee float64            `json:"value_after_fee"`
}

// Report is a full inventory valuation. Totals are not rounded.
type Report struct {
	Lines         []Line     `json:"lines"`
	Total         float64    `json:"total"`
	TotalAfterFee float64    `json:"total_after_fee"`
	PricedAt      *time.Time `json:"priced_at,omitempty"`
}

// SnapshotSource provides the market snapshot to price against
type SnapshotSource interface {
	Snapshot() *market.Snapshot
}

// Engine values inventories
type Engine interface {
	Value(ctx context.Context, inv *domain.Inventory) Report
}

type engine struct {
	resolver naming.Resolver
	quotes   SnapshotSource
}

// NewEngine creates a valuation engine
func NewEngine(resolver naming.Resolver, quotes SnapshotSource) Engine {
	return &engine{resolver: resolver, quotes: quotes}
}

// Value prices every entry with one snapshot. Stored names are canonical, so only
// direct resolution is used; unresolved entries are reported and count as zero.
func (e *engine) Value(ctx context.Context, inv *domain.Inventory) Report {
	log := logger.FromContext(ctx)
	snap := e.quotes.Snapshot()

	report := Report{Lines: make([]Line, 0, inv.Len())}
	if !snap.FetchedAt().IsZero() {
		pricedAt := snap.FetchedAt()
		report.PricedAt = &pricedAt
	}

	for _, entry := range inv.Entries() {
		line := Line{Name: entry.Name, Quantity: entry.Quantity}

		match, ok := e.resolver.ResolveItem(entry.Name)
		if !ok {
			log.Debug(LogMsgUnresolvedEntry, "item", entry.Name)
			report.Lines = append(report.Lines, line)
			continue
		}

		quote, found := snap.QuoteFor(match.Skin.ID)
		price, source := market.UnitPrice(quote, found)
		if source == market.PriceUnparsable {
			log.Warn(LogMsgUnparsablePrice, "skin_id", match.Skin.ID, "sale_price", quote.SalePrice.String())
		}

		line.Name = match.Skin.Name
		line.Found = true
		line.SkinID = match.Skin.ID
		line.UnitPrice = price
		line.PriceSource = source
		line.Value = price * float64(entry.Quantity)
		line.ValueAfterFee = line.Value * domain.SaleFeeFactor

		report.Total += line.Value
		report.Lines = append(report.Lines, line)
	}

	report.TotalAfterFee = report.Total * domain.SaleFeeFactor
	metrics.InventoryValuations.Inc()
	return report
}
