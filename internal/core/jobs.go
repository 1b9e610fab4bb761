package core

import (
	"context"
)

// JobDispatcher defines the contract for a system that can accept and queue
// background jobs for asynchronous processing. This interface decouples the
// event source (the webhook handler) from the job execution mechanism.
type JobDispatcher interface {
	// Dispatch accepts a classified trigger and queues it for processing.
	// It returns an error if the job cannot be queued, for example when the
	// queue is full, providing a mechanism for backpressure.
	Dispatch(ctx context.Context, trigger ReviewTrigger) error

	// Stop shuts the dispatcher down, waiting for in-flight jobs to finish.
	// No further triggers may be dispatched afterwards.
	Stop()
}

// Job represents a single, executable unit of work processed by the
// dispatcher. Each job is driven by a ReviewTrigger and performs one review
// run end to end.
type Job interface {
	// Run executes the job's logic. It returns an error only for failures
	// that abort the run; per-file degradations are handled internally.
	Run(ctx context.Context, trigger ReviewTrigger) error
}
