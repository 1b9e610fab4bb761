package jobs

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revbot-io/revbot/internal/core"
)

// jobFunc adapts a function to the core.Job interface for tests.
type jobFunc func(ctx context.Context, trigger core.ReviewTrigger) error

func (f jobFunc) Run(ctx context.Context, trigger core.ReviewTrigger) error {
	return f(ctx, trigger)
}

func TestDispatcherRunsQueuedJobs(t *testing.T) {
	ran := make(chan core.ReviewTrigger, 1)
	d := NewDispatcher(jobFunc(func(_ context.Context, trigger core.ReviewTrigger) error {
		ran <- trigger
		return nil
	}), 2, discardLogger())

	trigger := core.ReviewTrigger{Kind: core.TriggerNewReview, PRNumber: 42}
	require.NoError(t, d.Dispatch(context.Background(), trigger))

	select {
	case got := <-ran:
		assert.Equal(t, 42, got.PRNumber)
		assert.Equal(t, core.TriggerNewReview, got.Kind)
	case <-time.After(2 * time.Second):
		t.Fatal("job was not processed in time")
	}
	d.Stop()
}

func TestDispatcherRejectsWhenQueueFull(t *testing.T) {
	var once sync.Once
	started := make(chan struct{})
	block := make(chan struct{})

	d := NewDispatcher(jobFunc(func(_ context.Context, _ core.ReviewTrigger) error {
		once.Do(func() { close(started) })
		<-block
		return nil
	}), 1, discardLogger())

	trigger := core.ReviewTrigger{Kind: core.TriggerNewReview, PRNumber: 1}

	// Fill the single worker, then the whole queue.
	require.NoError(t, d.Dispatch(context.Background(), trigger))
	<-started
	for range 100 {
		require.NoError(t, d.Dispatch(context.Background(), trigger))
	}

	err := d.Dispatch(context.Background(), trigger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "queue is full")

	close(block)
	d.Stop()
}

func TestDispatcherStopWaitsForInFlightJobs(t *testing.T) {
	var processed atomic.Int32
	d := NewDispatcher(jobFunc(func(_ context.Context, _ core.ReviewTrigger) error {
		time.Sleep(10 * time.Millisecond)
		processed.Add(1)
		return nil
	}), 3, discardLogger())

	for i := range 5 {
		require.NoError(t, d.Dispatch(context.Background(), core.ReviewTrigger{Kind: core.TriggerNewReview, PRNumber: i + 1}))
	}
	d.Stop()

	assert.Equal(t, int32(5), processed.Load())
}

func TestDispatcherDefaultsToOneWorker(t *testing.T) {
	ran := make(chan struct{}, 1)
	d := NewDispatcher(jobFunc(func(_ context.Context, _ core.ReviewTrigger) error {
		ran <- struct{}{}
		return nil
	}), 0, discardLogger())

	require.NoError(t, d.Dispatch(context.Background(), core.ReviewTrigger{Kind: core.TriggerNewReview, PRNumber: 1}))

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job was not processed by the fallback worker")
	}
	d.Stop()
}
