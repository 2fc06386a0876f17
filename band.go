package specrend

import (
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/specrend/internal/cmf"
	"github.com/gogpu/specrend/internal/parallel"
)

// sharedPool serves Band calls on pipelines without WithWorkers. Its
// workers live for the rest of the process.
var sharedPool = sync.OnceValue(func() *parallel.WorkerPool {
	return parallel.NewWorkerPool(0)
})

// Band converts a batch of wavelengths in parallel. The result has the same
// order as the input. If any sample fails, the error of the lowest failing
// index is returned and the colors are discarded.
//
// Band is equivalent to calling Convert for each wavelength in turn.
func (p *Pipeline) Band(wavelengths []float64) ([]DisplayRGB, error) {
	out := make([]DisplayRGB, len(wavelengths))
	errs := make([]error, len(wavelengths))

	pool := sharedPool()
	if p.opts.workers > 0 {
		pool = parallel.NewWorkerPool(p.opts.workers)
		defer pool.Close()
	}

	pool.Range(len(wavelengths), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i], errs[i] = p.Convert(wavelengths[i])
		}
	})

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
	}
	return out, nil
}

// Wavelengths returns evenly spaced wavelengths from `from` toward `to`.
// The start is always included; the end is included when a step lands on it.
// Both ends must lie within [WavelengthRange] and step must be positive.
func Wavelengths(from, to, step float64) ([]float64, error) {
	lo, hi := cmf.Range()
	switch {
	case !(step > 0) || math.IsInf(step, 0):
		return nil, fmt.Errorf("%w: step %g", ErrWavelengthOutOfRange, step)
	case !(from >= lo && from <= hi):
		return nil, fmt.Errorf("%w: %g nm not in [%g, %g]", ErrWavelengthOutOfRange, from, lo, hi)
	case !(to >= lo && to <= hi):
		return nil, fmt.Errorf("%w: %g nm not in [%g, %g]", ErrWavelengthOutOfRange, to, lo, hi)
	case to < from:
		return nil, fmt.Errorf("%w: empty range [%g, %g]", ErrWavelengthOutOfRange, from, to)
	}

	// Index-based stepping keeps rounding error from accumulating.
	n := int(math.Floor((to-from)/step+1e-9)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Min(from+float64(i)*step, to)
	}
	return out, nil
}
