// Package farm - the concurrent task executor and the generation barrier.
//
// The coordinator is executor-agnostic: anything that can run a Task and
// hand back an awaitable Future satisfies the contract. Two implementations
// ship with the package:
//
//   - Pool: a fixed-size goroutine pool draining a task queue. This is the
//     production scheduler; its size is decided once at construction (the
//     pool never resizes mid-run).
//   - Direct: runs each task inline on Submit. Deterministic scheduling for
//     tests and a degenerate single-threaded mode.
//
// AwaitAll is the generation barrier: it joins over the exact set of
// futures submitted for one generation, so there is no received-counter to
// race against and no way to observe a partial generation.
package farm

import "sync"

// Task is one partition's worth of work for a single generation.
type Task func() (PartitionResult, error)

// outcome carries a task's result across the future's channel.
type outcome struct {
	res PartitionResult
	err error
}

// Future is an awaitable single result of a submitted Task.
// Wait blocks until the task finishes and may be called at most once per
// Future (each result is delivered exactly once).
type Future struct {
	ch chan outcome
}

// Wait blocks until the task's result is available and returns it.
func (f *Future) Wait() (PartitionResult, error) {
	o := <-f.ch
	return o.res, o.err
}

// Executor schedules Tasks for concurrent execution.
// Implementations must deliver every submitted task's result exactly once
// through the returned Future, even after the executor is closed (closed
// executors deliver ErrExecutorClosed).
type Executor interface {
	Submit(t Task) *Future
}

// AwaitAll joins over every future of one generation and collects the
// results in submission order. All futures are awaited even when one fails,
// so no task goroutine is left blocked on delivery; the first error
// encountered (in submission order) is returned and the results must then
// be discarded by the caller.
//
// Complexity: O(len(futures)).
func AwaitAll(futures []*Future) ([]PartitionResult, error) {
	var (
		results = make([]PartitionResult, len(futures))
		first   error
		i       int
		err     error
	)
	for i = range futures {
		results[i], err = futures[i].Wait()
		if err != nil && first == nil {
			first = err
		}
	}
	if first != nil {
		return nil, first
	}
	return results, nil
}

// Direct is a synchronous Executor: Submit runs the task inline and returns
// an already-resolved Future. Useful for tests and deterministic debugging.
type Direct struct{}

// Submit runs t on the calling goroutine.
func (Direct) Submit(t Task) *Future {
	f := &Future{ch: make(chan outcome, 1)}
	res, err := t()
	f.ch <- outcome{res: res, err: err}
	return f
}

// Pool is a fixed-size worker pool. Workers draw tasks from a shared queue;
// the pool never resizes during its lifetime.
type Pool struct {
	tasks chan poolJob
	wg    sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// poolJob binds a task to the future its result is delivered through.
type poolJob struct {
	run Task
	fut *Future
}

// NewPool starts workers goroutines (clamped to at least one) draining the
// task queue. Call Close when no more submissions will follow.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{
		tasks: make(chan poolJob),
	}

	var w int
	for w = 0; w < workers; w++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for j := range p.tasks {
				res, err := j.run()
				j.fut.ch <- outcome{res: res, err: err}
			}
		}()
	}
	return p
}

// Submit enqueues t and returns its Future. Submissions after Close resolve
// immediately with ErrExecutorClosed.
func (p *Pool) Submit(t Task) *Future {
	f := &Future{ch: make(chan outcome, 1)}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		f.ch <- outcome{err: ErrExecutorClosed}
		return f
	}
	// Enqueue under the lock so Close cannot close the channel between the
	// closed-check and the send.
	p.tasks <- f.bind(t)
	p.mu.Unlock()

	return f
}

// bind packages the task with its future for the worker loop.
func (f *Future) bind(t Task) poolJob { return poolJob{run: t, fut: f} }

// Close stops accepting submissions, drains in-flight tasks, and joins all
// workers. Idempotent.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
}
