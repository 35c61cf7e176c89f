package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Skin is a catalog entry: a plain skin, a stattrack variant, or a container.
type Skin struct {
	ID         int          `json:"id"`
	Name       string       `json:"name"`
	Value      RawValue     `json:"value,omitempty"`
	Collection *string      `json:"collection,omitempty"`
	Contains   ContainsList `json:"contains,omitempty"`
}

// IsContainer reports whether the skin declares contents
func (s Skin) IsContainer() bool {
	return s.Contains != nil
}

// IsStattrack reports whether the name marks a stattrack variant
func (s Skin) IsStattrack() bool {
	return strings.Contains(strings.ToLower(s.Name), StattrackMarker)
}

// CollectionName returns the collection or "" when unset
func (s Skin) CollectionName() string {
	if s.Collection == nil {
		return ""
	}
	return *s.Collection
}

// ContainsList is the ordered list of item ids a container yields.
// The catalog stores it either as a comma-separated string or a JSON array.
type ContainsList []int

// UnmarshalJSON decodes "10,11", [10, 11], "" and null
func (c *ContainsList) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*c = nil
	case string:
		ids, err := ParseContains(v)
		if err != nil {
			return err
		}
		*c = ids
	case []interface{}:
		ids := make(ContainsList, 0, len(v))
		for _, el := range v {
			switch n := el.(type) {
			case float64:
				ids = append(ids, int(n))
			case string:
				id, err := strconv.Atoi(strings.TrimSpace(n))
				if err != nil {
					return fmt.Errorf("%w: contains id %q", ErrInvalidInput, n)
				}
				ids = append(ids, id)
			default:
				return fmt.Errorf("%w: contains element %v", ErrInvalidInput, el)
			}
		}
		*c = ids
	default:
		return fmt.Errorf("%w: contains must be a string or an array", ErrInvalidInput)
	}
	return nil
}

// ParseContains splits a comma-separated id list. Blank tokens are ignored.
func ParseContains(s string) (ContainsList, error) {
	ids := ContainsList{}
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		id, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: contains id %q", ErrInvalidInput, tok)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// MarketQuote is one row of the external market feed
type MarketQuote struct {
	SkinID         RawValue `json:"skin_id"`
	SalePrice      RawValue `json:"sale_price,omitempty"`
	PurchasesPrice RawValue `json:"purchases_price,omitempty"`
	CasePrice      RawValue `json:"case_price,omitempty"`
	SalesCount     RawValue `json:"sales_count,omitempty"`
	PurchasesCount RawValue `json:"purchases_count,omitempty"`
}

// Key returns the skin id the quote joins on, in its string form
func (q MarketQuote) Key() string {
	return strings.TrimSpace(q.SkinID.String())
}

// SkinKey returns the market join key for a catalog id
func SkinKey(id int) string {
	return strconv.Itoa(id)
}
