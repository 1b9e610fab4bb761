// Package jobs defines background tasks such as automated code reviews.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/revbot-io/revbot/internal/core"
)

// dispatcher implements core.JobDispatcher and manages a pool of worker
// goroutines that process review triggers as review jobs.
type dispatcher struct {
	reviewJob  core.Job                // Job implementation executed by each worker.
	jobQueue   chan core.ReviewTrigger // Queue of incoming review triggers.
	maxWorkers int                     // Number of concurrent workers.
	wg         sync.WaitGroup          // Tracks active workers for graceful shutdown.
	logger     *slog.Logger            // Logger instance for the dispatcher.
}

// NewDispatcher initializes a dispatcher with a worker pool.
// If maxWorkers is 0 or negative, it defaults to 1.
func NewDispatcher(reviewJob core.Job, maxWorkers int, logger *slog.Logger) core.JobDispatcher {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	d := &dispatcher{
		reviewJob:  reviewJob,
		maxWorkers: maxWorkers,
		jobQueue:   make(chan core.ReviewTrigger, 100),
		logger:     logger,
	}
	d.startWorkers()
	return d
}

// startWorkers launches maxWorkers goroutines to process jobs from the queue.
func (d *dispatcher) startWorkers() {
	for i := range d.maxWorkers {
		d.wg.Add(1)
		go d.startWorker(i)
	}
}

// startWorker processes triggers from the queue until it's closed.
func (d *dispatcher) startWorker(workerID int) {
	defer d.wg.Done()
	d.logger.Info("starting review worker", "id", workerID)

	for trigger := range d.jobQueue {
		d.processTrigger(workerID, trigger)
	}

	d.logger.Info("shutting down review worker", "id", workerID)
}

// processTrigger logs and runs a review job for a trigger.
func (d *dispatcher) processTrigger(workerID int, trigger core.ReviewTrigger) {
	d.logger.Info("worker processing job",
		"worker_id", workerID,
		"kind", trigger.Kind,
		"pr", trigger.PRNumber,
	)

	err := d.reviewJob.Run(context.Background(), trigger)
	if err != nil {
		d.logger.Error("code review job failed",
			"kind", trigger.Kind,
			"pr", trigger.PRNumber,
			"error", err,
		)
	}
}

// Dispatch queues a review trigger for processing by a worker.
func (d *dispatcher) Dispatch(_ context.Context, trigger core.ReviewTrigger) error {
	d.logger.Info("queuing code review job", "kind", trigger.Kind, "pr", trigger.PRNumber)

	select {
	case d.jobQueue <- trigger:
		return nil
	default:
		return fmt.Errorf("job queue is full, cannot accept new review job")
	}
}

// Stop gracefully shuts down the dispatcher, waiting for all workers to finish.
func (d *dispatcher) Stop() {
	d.logger.Info("stopping dispatcher and waiting for jobs to finish")
	close(d.jobQueue)
	d.wg.Wait()
	d.logger.Info("all review jobs have finished")
}
