// Package naming resolves free-form user text to catalog entries by fuzzy matching.
package naming

import (
	"log/slog"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/SkinBot_Go/internal/catalog"
	"github.com/osse101/SkinBot_Go/internal/domain"
)

// Match is a resolved item
type Match struct {
	Skin           domain.Skin
	Score          float64
	Transliterated bool
}

// Collection is a resolved collection. Key is the normalized name used for membership.
type Collection struct {
	Name           string
	Key            string
	Score          float64
	Transliterated bool
}

// Resolver maps user queries onto catalog entries
type Resolver interface {
	// ResolveItem matches query against item names without any fallback
	ResolveItem(query string) (Match, bool)

	// ResolveCollection matches query against collection names without any fallback
	ResolveCollection(query string) (Collection, bool)

	// FindItem tries a direct match, then the transliterated query
	FindItem(query string) (Match, bool)

	// FindCollection tries a direct match, then the transliterated query
	FindCollection(query string) (Collection, bool)

	// BaseOf returns the non-stattrack entry a stattrack skin is displayed with
	BaseOf(skin domain.Skin) domain.Skin
}

type cached struct {
	index int
	score float64
	ok    bool
}

type resolver struct {
	cutoff float64

	items     []domain.Skin
	itemNames []Candidate

	collections     []string
	collectionNames []Candidate

	memo *lru.Cache[string, cached]
}

// Option configures a resolver
type Option func(*resolver)

// WithCutoff overrides DefaultCutoff
func WithCutoff(cutoff float64) Option {
	return func(r *resolver) { r.cutoff = cutoff }
}

// NewResolver indexes the catalog for matching. cacheSize <= 0 uses DefaultCacheSize.
func NewResolver(c *catalog.Catalog, cacheSize int, opts ...Option) (Resolver, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	memo, err := lru.New[string, cached](cacheSize)
	if err != nil {
		return nil, err
	}

	r := &resolver{
		cutoff:      DefaultCutoff,
		items:       c.AllItems(),
		collections: c.Collections(),
		memo:        memo,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.itemNames = make([]Candidate, len(r.items))
	for i, s := range r.items {
		r.itemNames[i] = NewCandidate(domain.NormalizeName(s.Name))
	}
	r.collectionNames = make([]Candidate, len(r.collections))
	for i, name := range r.collections {
		r.collectionNames[i] = NewCandidate(domain.NormalizeName(name))
	}

	return r, nil
}

func (r *resolver) ResolveItem(query string) (Match, bool) {
	res := r.lookup(kindItem, query, r.itemNames)
	if !res.ok {
		return Match{}, false
	}
	return Match{Skin: r.items[res.index], Score: res.score}, true
}

func (r *resolver) ResolveCollection(query string) (Collection, bool) {
	res := r.lookup(kindCollection, query, r.collectionNames)
	if !res.ok {
		return Collection{}, false
	}
	return Collection{
		Name:  r.collections[res.index],
		Key:   r.collectionNames[res.index].Text,
		Score: res.score,
	}, true
}

func (r *resolver) FindItem(query string) (Match, bool) {
	if m, ok := r.ResolveItem(query); ok {
		return m, true
	}

	alt, changed := transliterated(query)
	if !changed {
		return Match{}, false
	}
	m, ok := r.ResolveItem(alt)
	if ok {
		m.Transliterated = true
		slog.Debug(LogMsgTransliterationFallback,
			LogFieldQuery, query, LogFieldTransliterated, alt, LogFieldMatch, m.Skin.Name)
	}
	return m, ok
}

func (r *resolver) FindCollection(query string) (Collection, bool) {
	if c, ok := r.ResolveCollection(query); ok {
		return c, true
	}

	alt, changed := transliterated(query)
	if !changed {
		return Collection{}, false
	}
	c, ok := r.ResolveCollection(alt)
	if ok {
		c.Transliterated = true
		slog.Debug(LogMsgTransliterationFallback,
			LogFieldQuery, query, LogFieldTransliterated, alt, LogFieldMatch, c.Name)
	}
	return c, ok
}

func (r *resolver) BaseOf(skin domain.Skin) domain.Skin {
	if !skin.IsStattrack() {
		return skin
	}

	baseQuery := strings.TrimSpace(strings.ReplaceAll(domain.NormalizeName(skin.Name), domain.StattrackMarker, ""))
	res := r.lookup(kindItem, baseQuery, r.itemNames)
	if !res.ok {
		return skin
	}
	return r.items[res.index]
}

func (r *resolver) lookup(kind, query string, candidates []Candidate) cached {
	normalized := domain.NormalizeName(query)
	if normalized == "" {
		return cached{}
	}

	key := kind + "\x00" + normalized
	if res, ok := r.memo.Get(key); ok {
		return res
	}

	idx, score, ok := Closest(normalized, candidates, r.cutoff)
	res := cached{index: idx, score: score, ok: ok}
	r.memo.Add(key, res)
	return res
}

func transliterated(query string) (string, bool) {
	alt := Transliterate(query)
	return alt, alt != query
}
