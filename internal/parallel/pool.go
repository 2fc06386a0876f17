// Package parallel provides a worker pool for data-parallel conversion of
// independent samples.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// MinChunk is the smallest number of samples handed to a single job.
// Converting one sample costs well under a microsecond, so smaller chunks
// spend more time in the queue than in the work.
const MinChunk = 64

// WorkerPool is a pool of goroutines for parallel sample conversion.
//
// Each worker has its own queue and steals from the others when its queue
// runs dry. Jobs are index ranges, so a job writes only to the slots it owns
// and needs no locking.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// mu is held for reading while Range enqueues and for writing while
	// Close stops the workers, so a queued job is always drained.
	mu sync.RWMutex
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case job := <-own:
			job()
		default:
			if job := p.steal(id); job != nil {
				job()
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case job := <-own:
				job()
			}
		}
	}
}

func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case job := <-queue:
			job()
		default:
			return
		}
	}
}

func (p *WorkerPool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case job := <-p.queues[i]:
			return job
		default:
		}
	}
	return nil
}

// Range calls fn(lo, hi) over disjoint half-open ranges covering [0, n) and
// waits for all of them to return. Ranges hold at least MinChunk indices,
// except possibly the last.
//
// If the pool is closed, Range runs fn(0, n) on the calling goroutine.
func (p *WorkerPool) Range(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	chunk := max((n+p.workers-1)/p.workers, MinChunk)
	if chunk >= n {
		fn(0, n)
		return
	}

	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		fn(0, n)
		return
	}
	var wg sync.WaitGroup
	q := 0
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		p.queues[q%p.workers] <- func() {
			defer wg.Done()
			fn(lo, hi)
		}
		q++
	}
	p.mu.RUnlock()
	wg.Wait()
}

// Close stops the workers after the queued jobs have run. A Range in
// progress finishes enqueueing first. Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
