package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/osse101/SkinBot_Go/internal/metrics"
	"github.com/osse101/SkinBot_Go/internal/worker"
)

// Log messages
const (
	LogMsgJobScheduled = "Job scheduled"
	LogMsgJobDropped   = "Scheduled job dropped, worker queue full"
)

// Scheduler enqueues jobs onto the worker pool on cron schedules
type Scheduler struct {
	workerPool *worker.Pool
	cron       *cron.Cron
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		cron:       cron.New(),
	}
}

// Schedule registers a job under a cron spec such as "@every 1m" or "*/5 * * * *".
// A tick that finds the queue full is dropped rather than blocking later ticks.
func (s *Scheduler) Schedule(spec string, job worker.Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		if !s.workerPool.TryEnqueue(job) {
			metrics.SchedulerDroppedTotal.Inc()
			slog.Warn(LogMsgJobDropped, "spec", spec)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	slog.Info(LogMsgJobScheduled, "spec", spec)
	return nil
}

// Every registers a job at a fixed interval. Intervals below a second round up to one second.
func (s *Scheduler) Every(interval time.Duration, job worker.Job) error {
	return s.Schedule("@every "+interval.String(), job)
}

// Start begins firing schedules
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops firing schedules and waits for in-flight enqueues
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// StopContext is Stop bounded by ctx
func (s *Scheduler) StopContext(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
