package market

import (
	"time"

	"github.com/osse101/SkinBot_Go/internal/domain"
)

// Snapshot is an immutable copy of the quote list at one fetch
type Snapshot struct {
	quotes    []domain.MarketQuote
	byID      map[string]int
	fetchedAt time.Time
}

func newSnapshot(quotes []domain.MarketQuote, fetchedAt time.Time) (*Snapshot, []string) {
	s := &Snapshot{
		quotes:    quotes,
		byID:      make(map[string]int, len(quotes)),
		fetchedAt: fetchedAt,
	}
	var duplicates []string
	for i, q := range quotes {
		key := q.Key()
		if _, seen := s.byID[key]; seen {
			duplicates = append(duplicates, key)
			continue
		}
		s.byID[key] = i
	}
	return s, duplicates
}

// NewSnapshot builds a snapshot from quotes. Later duplicates of an id are ignored.
func NewSnapshot(quotes []domain.MarketQuote, fetchedAt time.Time) *Snapshot {
	s, _ := newSnapshot(quotes, fetchedAt)
	return s
}

func emptySnapshot() *Snapshot {
	s, _ := newSnapshot(nil, time.Time{})
	return s
}

// QuoteFor returns the first quote for a catalog id
func (s *Snapshot) QuoteFor(id int) (domain.MarketQuote, bool) {
	i, ok := s.byID[domain.SkinKey(id)]
	if !ok {
		return domain.MarketQuote{}, false
	}
	return s.quotes[i], true
}

// Quotes returns a copy of the quote list
func (s *Snapshot) Quotes() []domain.MarketQuote {
	out := make([]domain.MarketQuote, len(s.quotes))
	copy(out, s.quotes)
	return out
}

// Len returns the number of quotes
func (s *Snapshot) Len() int {
	return len(s.quotes)
}

// FetchedAt is when the snapshot was taken. Zero means never.
func (s *Snapshot) FetchedAt() time.Time {
	return s.fetchedAt
}
