package market

import (
	"math"
	"strconv"
	"strings"

	"github.com/osse101/SkinBot_Go/internal/domain"
)

// PriceSource tells where a unit price came from. All non-OK sources price at zero.
type PriceSource string

const (
	PriceOK         PriceSource = "ok"
	PriceNoQuote    PriceSource = "no_quote"
	PriceMissing    PriceSource = "missing"
	PriceUnparsable PriceSource = "unparsable"
)

// ParsePrice reads a decimal price. Blank, malformed and non-finite values yield zero.
func ParsePrice(v domain.RawValue) (float64, PriceSource) {
	s := strings.TrimSpace(v.String())
	if s == "" {
		return 0, PriceMissing
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, PriceUnparsable
	}
	return f, PriceOK
}

// UnitPrice is the sale price of a quote, or zero when there is no usable quote
func UnitPrice(q domain.MarketQuote, found bool) (float64, PriceSource) {
	if !found {
		return 0, PriceNoQuote
	}
	return ParsePrice(q.SalePrice)
}
