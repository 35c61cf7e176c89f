package market

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkinBot_Go/internal/domain"
)

// MockFetcher is a testify mock of Fetcher
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context) ([]domain.MarketQuote, error) {
	args := m.Called(ctx)
	quotes, _ := args.Get(0).([]domain.MarketQuote)
	return quotes, args.Error(1)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func quotes(ids ...string) []domain.MarketQuote {
	out := make([]domain.MarketQuote, len(ids))
	for i, id := range ids {
		out[i] = domain.MarketQuote{SkinID: domain.RawValue(id), SalePrice: "1.00"}
	}
	return out
}

func TestCache_StartsEmpty(t *testing.T) {
	c := NewCache(new(MockFetcher), time.Minute)

	assert.Zero(t, c.Snapshot().Len())
	assert.True(t, c.LastRefreshed().IsZero())
	assert.True(t, c.IsStale())
	_, ok := c.QuoteFor(1)
	assert.False(t, ok)
}

func TestCache_RefreshIfStale(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	fetcher := new(MockFetcher)
	fetcher.On("Fetch", mock.Anything).Return(quotes("1", "2"), nil).Twice()

	c := NewCache(fetcher, 600*time.Second, WithClock(clock.Now))

	refreshed, err := c.RefreshIfStale(ctx)
	require.NoError(t, err)
	assert.True(t, refreshed)
	assert.Equal(t, 2, c.Snapshot().Len())
	assert.Equal(t, clock.Now(), c.LastRefreshed())

	clock.Advance(599 * time.Second)
	refreshed, err = c.RefreshIfStale(ctx)
	require.NoError(t, err)
	assert.False(t, refreshed, "fresh snapshots are not refetched")

	clock.Advance(time.Second)
	refreshed, _ = c.RefreshIfStale(ctx)
	assert.False(t, refreshed, "exactly the interval is still fresh")

	clock.Advance(time.Second)
	refreshed, err = c.RefreshIfStale(ctx)
	require.NoError(t, err)
	assert.True(t, refreshed)

	fetcher.AssertNumberOfCalls(t, "Fetch", 2)
}

func TestCache_FailureKeepsPreviousSnapshot(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	fetcher := new(MockFetcher)
	fetcher.On("Fetch", mock.Anything).Return(quotes("1"), nil).Once()
	fetcher.On("Fetch", mock.Anything).Return(nil, domain.ErrUpstreamFetch).Once()

	c := NewCache(fetcher, time.Minute, WithClock(clock.Now))
	require.NoError(t, c.ForceRefresh(ctx))
	firstRefresh := c.LastRefreshed()

	clock.Advance(2 * time.Minute)
	refreshed, err := c.RefreshIfStale(ctx)
	assert.True(t, refreshed)
	assert.ErrorIs(t, err, domain.ErrUpstreamFetch)

	_, ok := c.QuoteFor(1)
	assert.True(t, ok, "previous quotes remain readable")
	assert.Equal(t, firstRefresh, c.LastRefreshed(), "failure does not reset the refresh clock")

	st := c.Status()
	assert.True(t, st.Enabled)
	assert.True(t, st.Stale)
	assert.Equal(t, 1, st.Quotes)
	assert.Contains(t, st.LastError, domain.ErrMsgUpstreamFetch)
	assert.Equal(t, clock.Now(), st.LastAttempt)
}

func TestCache_FirstQuoteWins(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("Fetch", mock.Anything).Return([]domain.MarketQuote{
		{SkinID: "5", SalePrice: "1"},
		{SkinID: "5", SalePrice: "2"},
	}, nil)

	c := NewCache(fetcher, time.Minute)
	require.NoError(t, c.ForceRefresh(context.Background()))

	q, ok := c.QuoteFor(5)
	require.True(t, ok)
	assert.Equal(t, domain.RawValue("1"), q.SalePrice)
	assert.Equal(t, 2, c.Snapshot().Len())
}

func TestCache_SnapshotIsStableForReaders(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("Fetch", mock.Anything).Return(quotes("1"), nil).Once()
	fetcher.On("Fetch", mock.Anything).Return(quotes("2"), nil).Once()

	c := NewCache(fetcher, time.Minute)
	require.NoError(t, c.ForceRefresh(context.Background()))
	held := c.Snapshot()

	require.NoError(t, c.ForceRefresh(context.Background()))

	_, ok := held.QuoteFor(1)
	assert.True(t, ok, "a held snapshot never changes")
	_, ok = c.QuoteFor(1)
	assert.False(t, ok)
	_, ok = c.QuoteFor(2)
	assert.True(t, ok)
}

type blockingFetcher struct {
	calls   int32
	release chan struct{}
}

func (f *blockingFetcher) Fetch(context.Context) ([]domain.MarketQuote, error) {
	atomic.AddInt32(&f.calls, 1)
	<-f.release
	return quotes("1"), nil
}

func TestCache_ConcurrentRefreshesShareOneFetch(t *testing.T) {
	f := &blockingFetcher{release: make(chan struct{})}
	c := NewCache(f, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.RefreshIfStale(context.Background())
		}()
	}

	require.Eventually(t, func() bool { return atomic.LoadInt32(&f.calls) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(f.release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&f.calls))
	assert.Equal(t, 1, c.Snapshot().Len())
}

func TestCache_Disabled(t *testing.T) {
	c := NewCache(nil, time.Minute)

	refreshed, err := c.RefreshIfStale(context.Background())
	assert.NoError(t, err)
	assert.False(t, refreshed)
	assert.NoError(t, c.ForceRefresh(context.Background()))
	assert.False(t, c.Status().Enabled)
}

func TestRefreshJob(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("Fetch", mock.Anything).Return(nil, errors.New("down")).Once()

	job := NewRefreshJob(NewCache(fetcher, time.Minute))
	assert.Equal(t, "market_refresh", job.Name())
	assert.Error(t, job.Process(context.Background()))
	fetcher.AssertExpectations(t)
}
