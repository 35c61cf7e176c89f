// Package market caches the external quote feed and refreshes it in the background.
package market

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/logger"
	"github.com/osse101/SkinBot_Go/internal/metrics"
)

// Status describes the cache for operators
type Status struct {
	Enabled       bool      `json:"enabled"`
	Quotes        int       `json:"quotes"`
	LastRefreshed time.Time `json:"last_refreshed"`
	LastAttempt   time.Time `json:"last_attempt"`
	LastError     string    `json:"last_error,omitempty"`
	Stale         bool      `json:"stale"`
}

// Cache holds the latest market snapshot.
// Readers never block on a refresh; a failed refresh keeps the previous snapshot.
type Cache struct {
	fetcher  Fetcher
	interval time.Duration
	now      func() time.Time

	mu            sync.RWMutex
	snapshot      *Snapshot
	lastRefreshed time.Time
	lastAttempt   time.Time
	lastErr       error

	flight singleflight.Group
}

// Option configures a Cache
type Option func(*Cache)

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// NewCache creates an empty cache. A nil fetcher disables refreshing.
func NewCache(fetcher Fetcher, interval time.Duration, opts ...Option) *Cache {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	c := &Cache{
		fetcher:  fetcher,
		interval: interval,
		now:      time.Now,
		snapshot: emptySnapshot(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns the current snapshot. It is never nil.
func (c *Cache) Snapshot() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// QuoteFor looks up a quote in the current snapshot
func (c *Cache) QuoteFor(id int) (domain.MarketQuote, bool) {
	return c.Snapshot().QuoteFor(id)
}

// LastRefreshed is the time of the last successful refresh
func (c *Cache) LastRefreshed() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastRefreshed
}

// IsStale reports whether more than the refresh interval has passed since the last success
func (c *Cache) IsStale() bool {
	return c.now().Sub(c.LastRefreshed()) > c.interval
}

// Status reports the cache state
func (c *Cache) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()

	st := Status{
		Enabled:       c.fetcher != nil,
		Quotes:        c.snapshot.Len(),
		LastRefreshed: c.lastRefreshed,
		LastAttempt:   c.lastAttempt,
		Stale:         c.now().Sub(c.lastRefreshed) > c.interval,
	}
	if c.lastErr != nil {
		st.LastError = c.lastErr.Error()
	}
	return st
}

// RefreshIfStale fetches only when the snapshot is older than the interval.
// It reports whether a fetch happened.
func (c *Cache) RefreshIfStale(ctx context.Context) (bool, error) {
	if c.fetcher == nil || !c.IsStale() {
		metrics.MarketRefreshTotal.WithLabelValues(metrics.ResultSkipped).Inc()
		return false, nil
	}
	return true, c.refresh(ctx, false)
}

// ForceRefresh fetches regardless of age
func (c *Cache) ForceRefresh(ctx context.Context) error {
	if c.fetcher == nil {
		return nil
	}
	return c.refresh(ctx, true)
}

func (c *Cache) refresh(ctx context.Context, force bool) error {
	// Concurrent callers share one fetch
	_, err, _ := c.flight.Do(refreshFlight, func() (interface{}, error) {
		if !force && !c.IsStale() {
			return nil, nil
		}
		return nil, c.fetch(ctx)
	})
	return err
}

func (c *Cache) fetch(ctx context.Context) error {
	log := logger.FromContext(ctx)
	start := c.now()

	quotes, err := c.fetcher.Fetch(ctx)
	elapsed := c.now().Sub(start)
	metrics.MarketRefreshDuration.Observe(elapsed.Seconds())

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastAttempt = start

	if err != nil {
		c.lastErr = err
		metrics.MarketRefreshTotal.WithLabelValues(metrics.ResultFailure).Inc()
		log.Warn(LogMsgRefreshFailed,
			LogFieldError, err,
			LogFieldQuotes, c.snapshot.Len(),
			LogFieldAge, start.Sub(c.lastRefreshed).String())
		return err
	}

	snap, duplicates := newSnapshot(quotes, start)
	for _, id := range duplicates {
		log.Debug(LogMsgDuplicateQuote, LogFieldSkinID, id)
	}

	c.snapshot = snap
	c.lastRefreshed = start
	c.lastErr = nil

	metrics.MarketRefreshTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	metrics.MarketQuotes.Set(float64(snap.Len()))
	metrics.MarketLastSuccess.Set(float64(start.Unix()))
	log.Info(LogMsgRefreshSucceeded, LogFieldQuotes, snap.Len(), LogFieldDuration, elapsed.String())
	return nil
}
