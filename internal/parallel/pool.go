// Package parallel provides the worker pool used for batch diagram runs.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a fixed pool of goroutines for running independent tasks.
//
// Tasks are pulled from a single shared queue. Batch work is file-granular
// and coarse, so the shared queue balances load well without work stealing.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// queue holds tasks waiting for a free worker.
	queue chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified number of
// workers. If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers: workers,
		queue:   make(chan func(), queueSize),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			// Drain remaining work before exiting
			p.drain()
			return
		case work := <-p.queue:
			if work != nil {
				work()
			}
		}
	}
}

// drain executes all remaining queued work.
func (p *WorkerPool) drain() {
	for {
		select {
		case work := <-p.queue:
			if work != nil {
				work()
			}
		default:
			return
		}
	}
}

// ExecuteAll queues every task and waits for all of them to complete.
// This is the primary method for parallel processing.
// If the pool is closed, this is a no-op.
func (p *WorkerPool) ExecuteAll(tasks []func()) {
	if len(tasks) == 0 || !p.running.Load() {
		return
	}

	var completion sync.WaitGroup
	completion.Add(len(tasks))
	for _, fn := range tasks {
		if fn == nil {
			completion.Done()
			continue
		}
		task := fn
		wrapped := func() {
			defer completion.Done()
			task()
		}
		select {
		case p.queue <- wrapped:
		case <-p.done:
			// Pool is closing, count the task as done unrun
			completion.Done()
		}
	}
	completion.Wait()
}

// Close gracefully shuts down the pool.
// It stops accepting new work, waits for all queued work to complete,
// and then stops all workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		// Already closed
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}
