// Package catalog holds the read-only skin catalog loaded at start-up.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/SkinBot_Go/internal/domain"
)

// ErrDuplicateID is returned when two catalog entries share an id
var ErrDuplicateID = errors.New("duplicate skin id")

// Catalog is an immutable, ordered set of skins indexed by id.
// It is safe for concurrent reads.
type Catalog struct {
	items       []domain.Skin
	byID        map[int]int
	collections []string
}

// New indexes items, keeping their order. Duplicate ids and blank names are rejected.
func New(items []domain.Skin) (*Catalog, error) {
	c := &Catalog{
		items: make([]domain.Skin, len(items)),
		byID:  make(map[int]int, len(items)),
	}
	copy(c.items, items)

	seenCollections := make(map[string]bool)
	for i, s := range c.items {
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("%w: "+ErrMsgEmptyName, domain.ErrInvalidInput, i)
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("%w: "+ErrMsgDuplicateID, ErrDuplicateID, s.ID, i)
		}
		c.byID[s.ID] = i

		if col := s.CollectionName(); strings.TrimSpace(col) != "" {
			key := domain.NormalizeName(col)
			if !seenCollections[key] {
				seenCollections[key] = true
				c.collections = append(c.collections, col)
			}
		}
	}
	return c, nil
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.items)
}

// LookupByID returns the skin with the given id
func (c *Catalog) LookupByID(id int) (domain.Skin, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Skin{}, false
	}
	return c.items[i], true
}

// AllItems returns every entry in catalog order
func (c *Catalog) AllItems() []domain.Skin {
	out := make([]domain.Skin, len(c.items))
	copy(out, c.items)
	return out
}

// Collections returns distinct collection names in first-seen order.
// Names differing only in case count once.
func (c *Catalog) Collections() []string {
	out := make([]string, len(c.collections))
	copy(out, c.collections)
	return out
}

// ItemsInCollection returns the non-stattrack skins of a collection, matched case-insensitively
func (c *Catalog) ItemsInCollection(name string) []domain.Skin {
	key := domain.NormalizeName(name)
	var out []domain.Skin
	for _, s := range c.items {
		if s.Collection == nil || s.IsStattrack() {
			continue
		}
		if domain.NormalizeName(*s.Collection) == key {
			out = append(out, s)
		}
	}
	return out
}

// ContainerCount returns how many entries declare contents
func (c *Catalog) ContainerCount() int {
	n := 0
	for _, s := range c.items {
		if s.IsContainer() {
			n++
		}
	}
	return n
}
