package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/CozyGarden_Go/internal/logger"
	"github.com/osse101/CozyGarden_Go/internal/worker"
)

// LogMsgTickDropped is logged when a tick finds the worker queue full
const LogMsgTickDropped = "Scheduled job dropped, worker queue full"

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	onDrop     func()
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// OnDrop registers a callback run each time a tick is dropped.
func (s *Scheduler) OnDrop(fn func()) {
	s.onDrop = fn
}

// Schedule registers a job to run at a fixed interval. A tick that finds the
// worker queue full is dropped rather than queued behind earlier ticks, so a
// slow consumer never builds up a backlog.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.workerPool.TryEnqueue(job) {
					logger.FromContext(context.Background()).Debug(LogMsgTickDropped)
					if s.onDrop != nil {
						s.onDrop()
					}
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
	})
	s.wg.Wait()
}
