package specrend

import "log/slog"

// PipelineOption configures a Pipeline during creation.
// Use functional options to customize Pipeline behavior.
//
// Example:
//
//	// Gamma-encoded output (default)
//	p, err := specrend.NewPipeline(specrend.HDTV)
//
//	// Linear output, as the classic spectrum renderer draws it
//	p, err := specrend.NewPipeline(specrend.SMPTE, specrend.WithGammaCorrection(false))
type PipelineOption func(*pipelineOptions)

// pipelineOptions holds optional configuration for Pipeline creation.
type pipelineOptions struct {
	gamma   bool
	logger  *slog.Logger
	workers int
}

// defaultOptions returns the default pipeline options.
func defaultOptions() pipelineOptions {
	return pipelineOptions{
		gamma:   true,
		logger:  nil, // falls back to Logger() at call time
		workers: 0,   // shared pool sized to GOMAXPROCS
	}
}

// WithGammaCorrection selects whether the system's transfer function is
// applied before quantization. The default is true.
func WithGammaCorrection(enabled bool) PipelineOption {
	return func(o *pipelineOptions) {
		o.gamma = enabled
	}
}

// WithLogger sets the logger used by this pipeline instead of the
// package logger set by [SetLogger].
func WithLogger(l *slog.Logger) PipelineOption {
	return func(o *pipelineOptions) {
		o.logger = l
	}
}

// WithWorkers sets the number of goroutines [Pipeline.Band] uses.
// Zero or negative selects a shared pool sized to GOMAXPROCS.
func WithWorkers(n int) PipelineOption {
	return func(o *pipelineOptions) {
		o.workers = n
	}
}
