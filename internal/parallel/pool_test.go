package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

// =============================================================================
// WorkerPool Creation Tests
// =============================================================================

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateZeroWorkers(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	expected := runtime.GOMAXPROCS(0)
	if pool.Workers() != expected {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", pool.Workers(), expected)
	}
}

func TestWorkerPool_CreateNegativeWorkers(t *testing.T) {
	pool := NewWorkerPool(-5)
	defer pool.Close()

	expected := runtime.GOMAXPROCS(0)
	if pool.Workers() != expected {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", pool.Workers(), expected)
	}
}

// =============================================================================
// Range Tests
// =============================================================================

func TestWorkerPool_RangeCoversEveryIndexOnce(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	for _, n := range []int{1, MinChunk - 1, MinChunk, 1000, 4097} {
		hits := make([]int32, n)
		pool.Range(n, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("n=%d: index %d visited %d times, want 1", n, i, h)
			}
		}
	}
}

func TestWorkerPool_RangeChunkSize(t *testing.T) {
	pool := NewWorkerPool(8)
	defer pool.Close()

	var mu sync.Mutex
	var sizes []int
	pool.Range(1000, func(lo, hi int) {
		mu.Lock()
		sizes = append(sizes, hi-lo)
		mu.Unlock()
	})

	total, small := 0, 0
	for _, s := range sizes {
		total += s
		if s < MinChunk {
			small++
		}
	}
	// Only the trailing range may be short.
	if small > 1 {
		t.Errorf("%d chunks smaller than %d, want at most 1", small, MinChunk)
	}
	if total != 1000 {
		t.Errorf("chunks cover %d indices, want 1000", total)
	}
}

func TestWorkerPool_RangeEmpty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	called := false
	pool.Range(0, func(lo, hi int) { called = true })
	if called {
		t.Error("Range(0) should not call fn")
	}
}

func TestWorkerPool_RangeAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	var count atomic.Int64
	pool.Range(500, func(lo, hi int) {
		count.Add(int64(hi - lo))
	})
	if count.Load() != 500 {
		t.Errorf("Range after Close covered %d indices, want 500", count.Load())
	}
}

// =============================================================================
// Close Tests
// =============================================================================

// Every Range racing a Close must still cover all indices and return.
func TestWorkerPool_RangeConcurrentWithClose(t *testing.T) {
	for range 50 {
		pool := NewWorkerPool(4)
		var wg sync.WaitGroup
		var total atomic.Int64
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				pool.Range(2000, func(lo, hi int) {
					total.Add(int64(hi - lo))
				})
			}()
		}
		pool.Close()
		wg.Wait()

		if total.Load() != 16000 {
			t.Fatalf("total = %d, want 16000", total.Load())
		}
	}
}

func TestWorkerPool_CloseTwice(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}
}

func TestWorkerPool_ConcurrentRange(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var wg sync.WaitGroup
	var total atomic.Int64
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.Range(1000, func(lo, hi int) {
				total.Add(int64(hi - lo))
			})
		}()
	}
	wg.Wait()

	if total.Load() != 8000 {
		t.Errorf("total = %d, want 8000", total.Load())
	}
}

func BenchmarkWorkerPool_Range(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	out := make([]float64, 4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.Range(len(out), func(lo, hi int) {
			for j := lo; j < hi; j++ {
				out[j] = float64(j) * 0.5
			}
		})
	}
}
