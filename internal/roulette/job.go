package roulette

import (
	"context"
	"time"

	"github.com/kenams/sport-challenge-roulette/internal/logger"
	"github.com/kenams/sport-challenge-roulette/internal/metrics"
)

// Job adapts the roulette service to the worker pool's Job interface
// and records run metrics around each invocation.
type Job struct {
	service Service
}

// NewJob creates a new roulette job
func NewJob(service Service) *Job {
	return &Job{service: service}
}

// Process executes one full roulette cycle under a fresh run ID
func (j *Job) Process(ctx context.Context) error {
	ctx = logger.WithRunID(ctx, logger.GenerateRunID())

	start := time.Now()
	err := j.service.Run(ctx)
	metrics.JobDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.JobRunsTotal.WithLabelValues(metrics.ResultError).Inc()
		return err
	}

	metrics.JobRunsTotal.WithLabelValues(metrics.ResultOK).Inc()
	return nil
}
