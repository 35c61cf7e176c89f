package market

import "context"

// RefreshJob refreshes the cache when stale. It runs on the worker pool.
type RefreshJob struct {
	cache *Cache
}

// NewRefreshJob creates a RefreshJob for cache
func NewRefreshJob(cache *Cache) *RefreshJob {
	return &RefreshJob{cache: cache}
}

// Process implements worker.Job
func (j *RefreshJob) Process(ctx context.Context) error {
	_, err := j.cache.RefreshIfStale(ctx)
	return err
}

// Name implements worker.Named
func (j *RefreshJob) Name() string {
	return refreshJobName
}
