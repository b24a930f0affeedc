// Package parallel provides the worker pool used to distribute box
// contraction jobs across goroutines. This package contains internal
// utilities for managing concurrent contraction with proper resource
// management and backpressure control.
package parallel

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// ErrPoolShutdown is returned when trying to submit jobs to a shutdown pool.
var ErrPoolShutdown = fmt.Errorf("worker pool has been shutdown")

// WorkerPool manages a pool of goroutines for parallel box contraction.
// It provides controlled concurrency with a bounded submission queue so
// deep bisection trees cannot exhaust memory by flooding the pool.
type WorkerPool struct {
	maxWorkers   int
	jobChan      chan func()
	workerWg     sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If maxWorkers is 0 or negative, it defaults to the number of CPU cores.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		maxWorkers:   maxWorkers,
		jobChan:      make(chan func(), maxWorkers*2), // Buffered channel for backpressure
		shutdownChan: make(chan struct{}),
	}

	for i := 0; i < maxWorkers; i++ {
		pool.workerWg.Add(1)
		go pool.worker()
	}

	return pool
}

// Workers returns the number of worker goroutines in the pool.
func (wp *WorkerPool) Workers() int {
	return wp.maxWorkers
}

// worker is the main worker loop that processes jobs from the channel.
// On shutdown the queue is drained before exiting, so every job accepted
// by Submit is eventually executed.
func (wp *WorkerPool) worker() {
	defer wp.workerWg.Done()

	for {
		select {
		case job := <-wp.jobChan:
			if job != nil {
				job()
			}
		case <-wp.shutdownChan:
			for {
				select {
				case job := <-wp.jobChan:
					if job != nil {
						job()
					}
				default:
					return
				}
			}
		}
	}
}

// Submit submits a contraction job to the pool for execution.
// If the pool is full, this call blocks until a worker becomes available,
// the context is cancelled, or the pool shuts down.
func (wp *WorkerPool) Submit(ctx context.Context, job func()) error {
	select {
	case wp.jobChan <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.shutdownChan:
		return ErrPoolShutdown
	}
}

// Shutdown gracefully shuts down the worker pool, waiting for all
// accepted jobs, queued or executing, to complete. Submit calls that
// start after Shutdown fail with ErrPoolShutdown.
func (wp *WorkerPool) Shutdown() {
	wp.once.Do(func() {
		close(wp.shutdownChan)
		wp.workerWg.Wait()
		// Catch jobs enqueued in the window between a racing Submit's
		// channel send and the workers observing the shutdown signal.
		for {
			select {
			case job := <-wp.jobChan:
				if job != nil {
					job()
				}
			default:
				return
			}
		}
	})
}
