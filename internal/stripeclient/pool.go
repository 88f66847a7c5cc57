// Package stripeclient runs blocking payment-gateway SDK calls on a fixed
// pool of workers so callers keep a cancellable interface.
package stripeclient

import (
	"context"
	"sync"
)

type jobResult struct {
	value any
	err   error
}

type job struct {
	ctx    context.Context
	fn     func() (any, error)
	result chan jobResult
}

// Pool owns a fixed set of worker goroutines consuming submitted calls.
// The SDK calls themselves are blocking; the pool bounds how many run at
// once and lets callers abandon a call that is still queued.
type Pool struct {
	apiKey  string
	country string

	jobs chan job
	wg   sync.WaitGroup

	// mu orders submissions against release: Submit holds the read side
	// across the channel send so Shutdown cannot close the intake under a
	// submission in flight.
	mu       sync.RWMutex
	released bool
}

// NewPool starts maxWorkers workers. maxWorkers must be positive.
func NewPool(apiKey, country string, maxWorkers int) *Pool {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	p := &Pool{
		apiKey:  apiKey,
		country: country,
		jobs:    make(chan job),
	}
	p.wg.Add(maxWorkers)
	for i := 0; i < maxWorkers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for j := range p.jobs {
		select {
		case <-j.ctx.Done():
			j.result <- jobResult{err: j.ctx.Err()}
			continue
		default:
		}
		v, err := j.fn()
		j.result <- jobResult{value: v, err: err}
	}
}

// APIKey returns the gateway secret key the pool was created with.
func (p *Pool) APIKey() string { return p.apiKey }

// Country returns the gateway account country.
func (p *Pool) Country() string { return p.country }

// Submit runs fn on a worker and returns its result. While the call is
// still queued, ctx cancellation abandons it. Submitting to a released
// pool panics: it is a caller lifecycle bug, not a runtime condition.
func (p *Pool) Submit(ctx context.Context, fn func() (any, error)) (any, error) {
	p.mu.RLock()
	if p.released {
		p.mu.RUnlock()
		panic("stripeclient: submit on released pool")
	}

	j := job{ctx: ctx, fn: fn, result: make(chan jobResult, 1)}
	select {
	case p.jobs <- j:
		p.mu.RUnlock()
	case <-ctx.Done():
		p.mu.RUnlock()
		return nil, ctx.Err()
	}

	// The result channel is buffered; a worker never blocks delivering to
	// an abandoned job.
	select {
	case r := <-j.result:
		return r.value, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Shutdown closes the intake. Calling it twice panics. When wait is true
// it blocks until in-flight calls finish.
func (p *Pool) Shutdown(wait bool) {
	p.mu.Lock()
	if p.released {
		p.mu.Unlock()
		panic("stripeclient: pool already released")
	}
	p.released = true
	close(p.jobs)
	p.mu.Unlock()

	if wait {
		p.wg.Wait()
	}
}

// Released reports whether Shutdown has been called.
func (p *Pool) Released() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.released
}
