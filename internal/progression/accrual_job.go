package progression

import (
	"context"
)

// AccrualJob runs one passive tick. It is scheduled at a fixed cadence and is
// safe to run when there is no passive income.
type AccrualJob struct {
	service Service
}

// NewAccrualJob creates a new accrual job
func NewAccrualJob(service Service) *AccrualJob {
	return &AccrualJob{
		service: service,
	}
}

// Process runs the tick (implements worker.Job interface)
func (j *AccrualJob) Process(ctx context.Context) error {
	j.service.Tick(ctx)
	return nil
}
