package parallel

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPoolRunsAllJobs(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Shutdown()

	var counter int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		err := pool.Submit(context.Background(), func() {
			defer wg.Done()
			atomic.AddInt64(&counter, 1)
		})
		require.NoError(t, err)
	}
	wg.Wait()

	assert.Equal(t, int64(100), atomic.LoadInt64(&counter))
}

func TestWorkerPoolDefaultsToCPUCount(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Shutdown()
	assert.Greater(t, pool.Workers(), 0)
}

func TestWorkerPoolSubmitAfterShutdown(t *testing.T) {
	pool := NewWorkerPool(1)
	pool.Shutdown()

	err := pool.Submit(context.Background(), func() {})
	assert.ErrorIs(t, err, ErrPoolShutdown)
}

func TestWorkerPoolSubmitCancelledContext(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Shutdown()

	// Fill the queue with blocking jobs so Submit has to wait, then
	// cancel the submission context.
	release := make(chan struct{})
	for i := 0; i < 3; i++ {
		_ = pool.Submit(context.Background(), func() { <-release })
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for {
		err := pool.Submit(ctx, func() { <-release })
		if err != nil {
			assert.ErrorIs(t, err, context.Canceled)
			break
		}
	}
	close(release)
}

func TestWorkerPoolShutdownDrainsQueuedJobs(t *testing.T) {
	pool := NewWorkerPool(1)

	started := make(chan struct{})
	release := make(chan struct{})
	var counter int64

	require.NoError(t, pool.Submit(context.Background(), func() {
		close(started)
		<-release
		atomic.AddInt64(&counter, 1)
	}))
	<-started

	// With the single worker busy these sit in the queue; Shutdown must
	// still run them rather than drop them.
	for i := 0; i < 2; i++ {
		require.NoError(t, pool.Submit(context.Background(), func() {
			atomic.AddInt64(&counter, 1)
		}))
	}

	done := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(done)
	}()
	close(release)
	<-done

	assert.Equal(t, int64(3), atomic.LoadInt64(&counter))
}

func TestWorkerPoolShutdownIsIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Shutdown()
	pool.Shutdown()
}
