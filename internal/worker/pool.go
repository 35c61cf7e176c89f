package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/SkinBot_Go/internal/logger"
	"github.com/osse101/SkinBot_Go/internal/metrics"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Named jobs report their name in logs
type Named interface {
	Name() string
}

// Pool runs jobs on a fixed set of goroutines
type Pool struct {
	workers    int
	jobQueue   chan Job
	jobTimeout time.Duration
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once
}

// NewPool creates a new worker pool. A zero jobTimeout uses DefaultJobTimeout.
func NewPool(workers, queueSize int, jobTimeout time.Duration) *Pool {
	if workers < 1 {
		workers = 1
	}
	if jobTimeout <= 0 {
		jobTimeout = DefaultJobTimeout * time.Second
	}
	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, queueSize),
		jobTimeout: jobTimeout,
		quit:       make(chan struct{}),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) run(job Job) {
	ctx, cancel := context.WithTimeout(logger.WithNewRequestID(context.Background()), p.jobTimeout)
	defer cancel()
	log := logger.FromContext(ctx).With(LogFieldJob, jobName(job))

	defer func() {
		if r := recover(); r != nil {
			metrics.WorkerJobsTotal.WithLabelValues(metrics.ResultFailure).Inc()
			log.Error(LogMsgWorkerJobPanicked, LogFieldPanic, fmt.Sprint(r))
		}
	}()

	if err := job.Process(ctx); err != nil {
		metrics.WorkerJobsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		log.Error(LogMsgWorkerJobFailed, LogFieldError, err)
		return
	}
	metrics.WorkerJobsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
}

// Enqueue blocks until the job is queued or the pool stops.
// It reports whether the job was queued.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	case <-p.quit:
		return false
	}
}

// TryEnqueue queues the job only if there is room
func (p *Pool) TryEnqueue(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		logger.FromContext(context.Background()).Warn(LogMsgQueueFull, LogFieldJob, jobName(job))
		return false
	}
}

// Stop stops the workers and waits for running jobs to finish. Queued jobs are discarded.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})
	p.wg.Wait()
}

func jobName(job Job) string {
	if n, ok := job.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", job)
}
