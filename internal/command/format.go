package command

import (
	"github.com/osse101/SkinBot_Go/internal/contents"
	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/skin"
	"github.com/osse101/SkinBot_Go/internal/valuation"
)

// CardMessage renders an item card
func CardMessage(card *skin.Card) Message {
	blocks := []Block{Text(LabelName, card.Skin.Name)}

	if card.IsContainer() {
		if q := card.Quote; q != nil {
			blocks = append(blocks,
				Text(LabelSalesCount, orNoData(q.SalesCount)),
				Text(LabelPurchasesCount, orNoData(q.PurchasesCount)),
			)
			if q.CasePrice.Present() {
				blocks = append(blocks, Text(LabelCasePrice, q.CasePrice.String()))
			} else {
				blocks = append(blocks, Text(LabelSalePrice, orNoData(q.SalePrice)))
			}
		}
		blocks = append(blocks, Text(LabelContents), Expandable(groupBlocks(card.Contents)...))
		return NewMessage(blocks...)
	}

	collection := card.Collection
	if collection == "" {
		collection = LabelNoData
	}
	blocks = append(blocks,
		Text(LabelCollection, collection),
		Text(LabelRarity, string(card.Rarity)),
	)
	if q := card.Quote; q != nil {
		blocks = append(blocks,
			Text(LabelSalesCount, orNoData(q.SalesCount)),
			Text(LabelSalePrice, orNoData(q.SalePrice)),
			Text(LabelPurchasesCount, orNoData(q.PurchasesCount)),
			Text(LabelPurchasePrice, orNoData(q.PurchasesPrice)),
		)
	}
	return NewMessage(blocks...)
}

// ListingMessage renders a collection listing
func ListingMessage(listing *skin.Listing) Message {
	return NewMessage(
		Text(LabelCollectionHead, listing.Name),
		Expandable(groupBlocks(listing.Groups)...),
	)
}

// ReportMessage renders an inventory valuation
func ReportMessage(report valuation.Report) Message {
	lines := make([]Block, 0, len(report.Lines)*5)
	for _, l := range report.Lines {
		if !l.Found {
			lines = append(lines,
				Text(LabelLineMissing, l.Name),
				Text(LabelLineQuantity, l.Quantity),
				Text(""),
			)
			continue
		}
		lines = append(lines,
			Text(LabelLineSkin, l.Name),
			Text(LabelLineQuantity, l.Quantity),
			Text(LabelLineUnitPrice, l.UnitPrice),
			Text(LabelLineAfterFee, l.ValueAfterFee),
			Text(""),
		)
	}

	return NewMessage(
		Text(LabelInventoryHead),
		Expandable(lines...),
		Text(LabelInventoryRaw, report.Total),
		Text(LabelInventoryTotal, report.TotalAfterFee),
	)
}

func groupBlocks(groups []contents.Group) []Block {
	var blocks []Block
	for _, g := range groups {
		blocks = append(blocks, Bold(LabelGroupRarityHead, string(g.Rarity)))
		for _, name := range g.Names {
			blocks = append(blocks, Text(LabelGroupMember, name))
		}
	}
	return blocks
}

func orNoData(v domain.RawValue) string {
	return v.Or(LabelNoData)
}
