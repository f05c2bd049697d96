package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CozyGarden_Go/internal/testing/leaktest"
	"github.com/osse101/CozyGarden_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount int32
	Done     chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	atomic.AddInt32(&m.RunCount, 1)
	// Signal that job ran
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{
		Done: make(chan struct{}, 10),
	}

	sched.Schedule(10*time.Millisecond, job)

	// Wait for at least 2 runs
	timeout := time.After(time.Second)
	runCount := 0

	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestScheduler_DropsTicksWhenQueueFull(t *testing.T) {
	// Pool is never started, so its single slot fills on the first tick.
	pool := worker.NewPool(1, 1)
	sched := New(pool)

	var dropped int32
	sched.OnDrop(func() { atomic.AddInt32(&dropped, 1) })

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(5*time.Millisecond, job)

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&dropped) >= 2
	}, time.Second, 5*time.Millisecond)

	sched.Stop()
	sched.Stop()

	assert.Equal(t, 1, pool.Pending())
	assert.Equal(t, int32(0), atomic.LoadInt32(&job.RunCount))
}

func TestScheduler_StopReleasesGoroutines(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := worker.NewPool(1, 10)
		pool.Start()
		sched := New(pool)
		sched.Schedule(time.Millisecond, &MockJob{Done: make(chan struct{}, 10)})
		sched.Schedule(2*time.Millisecond, &MockJob{Done: make(chan struct{}, 10)})
		time.Sleep(10 * time.Millisecond)
		sched.Stop()
		pool.Stop()
	})
}
