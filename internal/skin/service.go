// Package skin answers catalog lookups: item cards and collection listings.
package skin

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/osse101/SkinBot_Go/internal/contents"
	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/logger"
	"github.com/osse101/SkinBot_Go/internal/metrics"
	"github.com/osse101/SkinBot_Go/internal/naming"
	"github.com/osse101/SkinBot_Go/internal/rarity"
)

// Card is everything shown for one item
type Card struct {
	Skin           domain.Skin         `json:"skin"`
	Score          float64             `json:"score"`
	Transliterated bool                `json:"transliterated"`
	Rarity         domain.Rarity       `json:"rarity,omitempty"`
	Collection     string              `json:"collection,omitempty"`
	Contents       []contents.Group    `json:"contents,omitempty"`
	Quote          *domain.MarketQuote `json:"quote,omitempty"`
	ImageURL       string              `json:"image_url"`
}

// IsContainer reports whether the card lists contents instead of a rarity
func (c *Card) IsContainer() bool {
	return c.Skin.IsContainer()
}

// Listing is a collection grouped by rarity
type Listing struct {
	Name           string           `json:"name"`
	Title          string           `json:"title"`
	Transliterated bool             `json:"transliterated"`
	Groups         []contents.Group `json:"groups"`
}

// QuoteSource looks up market quotes
type QuoteSource interface {
	QuoteFor(id int) (domain.MarketQuote, bool)
}

// Service resolves user queries into cards and listings
type Service interface {
	// Find resolves query to a catalog item with the transliteration fallback
	Find(ctx context.Context, query string) (naming.Match, error)

	Lookup(ctx context.Context, query string) (*Card, error)
	Collection(ctx context.Context, query string) (*Listing, error)
}

type service struct {
	resolver     naming.Resolver
	expander     contents.Expander
	quotes       QuoteSource
	imageBaseURL string
	now          func() time.Time
}

// Option configures the service
type Option func(*service)

// WithClock overrides time.Now for image cache-busting
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// NewService creates a lookup service. An empty imageBaseURL uses DefaultImageBaseURL.
func NewService(resolver naming.Resolver, expander contents.Expander, quotes QuoteSource, imageBaseURL string, opts ...Option) Service {
	if imageBaseURL == "" {
		imageBaseURL = DefaultImageBaseURL
	}
	s := &service{
		resolver:     resolver,
		expander:     expander,
		quotes:       quotes,
		imageBaseURL: strings.TrimRight(imageBaseURL, "/"),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Find(ctx context.Context, query string) (naming.Match, error) {
	log := logger.FromContext(ctx)

	match, ok := s.resolver.FindItem(query)
	recordResolution(kindItem, ok, match.Transliterated)
	if !ok {
		log.Debug(LogMsgLookupMiss, "query", query)
		return naming.Match{}, fmt.Errorf("%w: %q", domain.ErrItemNotFound, query)
	}
	log.Debug(LogMsgLookupHit, "query", query, "skin_id", match.Skin.ID, "score", match.Score)
	return match, nil
}

func (s *service) Lookup(ctx context.Context, query string) (*Card, error) {
	match, err := s.Find(ctx, query)
	if err != nil {
		return nil, err
	}

	card := &Card{
		Skin:           match.Skin,
		Score:          match.Score,
		Transliterated: match.Transliterated,
		ImageURL:       s.imageURL(s.resolver.BaseOf(match.Skin)),
	}

	if q, found := s.quotes.QuoteFor(match.Skin.ID); found {
		card.Quote = &q
	}

	if match.Skin.IsContainer() {
		card.Contents = s.expander.ExpandContainer(ctx, match.Skin)
	} else {
		card.Rarity = rarity.Classify(match.Skin.Value)
		card.Collection = FormatCollection(match.Skin.CollectionName())
	}
	return card, nil
}

func (s *service) Collection(ctx context.Context, query string) (*Listing, error) {
	col, ok := s.resolver.FindCollection(query)
	recordResolution(kindCollection, ok, col.Transliterated)
	if !ok {
		logger.FromContext(ctx).Debug(LogMsgCollectionMiss, "query", query)
		return nil, fmt.Errorf("%w: %q", domain.ErrCollectionNotFound, query)
	}

	groups := s.expander.ExpandCollection(ctx, col.Name)
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: collection %q has no items", domain.ErrItemNotFound, col.Name)
	}

	return &Listing{
		Name:           col.Name,
		Title:          FormatCollection(col.Name),
		Transliterated: col.Transliterated,
		Groups:         groups,
	}, nil
}

func (s *service) imageURL(skin domain.Skin) string {
	return fmt.Sprintf("%s/%d.png?v=%d", s.imageBaseURL, skin.ID, s.now().Unix())
}

// FormatCollection turns a raw collection key like "wild_west" into "Wild west"
func FormatCollection(raw string) string {
	if raw == "" {
		return ""
	}
	spaced := strings.NewReplacer("_", " ", "-", " ").Replace(raw)
	lowered := domain.NormalizeName(spaced)
	first, size := utf8.DecodeRuneInString(lowered)
	return string(unicode.ToUpper(first)) + lowered[size:]
}

func recordResolution(kind string, ok, transliterated bool) {
	result := metrics.ResolutionDirect
	switch {
	case !ok:
		result = metrics.ResolutionMiss
	case transliterated:
		result = metrics.ResolutionTransliterated
	}
	metrics.ResolutionsTotal.WithLabelValues(kind, result).Inc()
}
