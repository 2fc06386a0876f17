package specrend

import (
	"context"
	"fmt"
	"log/slog"
)

// Pipeline converts light to DisplayRGB under one color system.
//
// The system is validated and its matrix derived once, in NewPipeline.
// A Pipeline is immutable and safe for concurrent use.
type Pipeline struct {
	system ColorSystem
	matrix Matrix3
	opts   pipelineOptions
}

// NewPipeline returns a pipeline for sys. It fails if sys is degenerate.
func NewPipeline(sys ColorSystem, opts ...PipelineOption) (*Pipeline, error) {
	m, err := sys.Matrix()
	if err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{system: sys, matrix: m, opts: o}, nil
}

// System returns the color system of the pipeline.
func (p *Pipeline) System() ColorSystem {
	return p.system
}

// Matrix returns the cached XYZ to RGB transform.
func (p *Pipeline) Matrix() Matrix3 {
	return p.matrix
}

// GammaCorrection reports whether output is gamma encoded.
func (p *Pipeline) GammaCorrection() bool {
	return p.opts.gamma
}

func (p *Pipeline) logger() *slog.Logger {
	if p.opts.logger != nil {
		return p.opts.logger
	}
	return Logger()
}

// linear runs the basis change, gamut constraint and normalization.
func (p *Pipeline) linear(c Chromaticity) (LinearRGB, float64) {
	rgb := p.matrix.MulVec(c)
	white := -min(0, rgb.R, rgb.G, rgb.B)
	rgb, _ = rgb.Constrain()
	return rgb.Normalize(), white
}

func (p *Pipeline) encode(rgb LinearRGB) DisplayRGB {
	if p.opts.gamma {
		rgb = rgb.GammaCorrect(p.system)
	}
	return rgb.Quantize()
}

func (p *Pipeline) trace(sample slog.Attr, white float64, out DisplayRGB) {
	l := p.logger()
	ctx := context.Background()
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	if white > 0 {
		l.LogAttrs(ctx, slog.LevelDebug, "specrend: desaturated out-of-gamut sample",
			slog.String("system", p.system.Name),
			sample,
			slog.Float64("white", white))
	}
	if out == (DisplayRGB{}) {
		l.LogAttrs(ctx, slog.LevelDebug, "specrend: black sample",
			slog.String("system", p.system.Name),
			sample)
	}
}

// Linear returns the normalized, in-gamut linear RGB for a wavelength in
// nanometers, before gamma correction and quantization.
func (p *Pipeline) Linear(nm float64) (LinearRGB, error) {
	c, err := WavelengthToChromaticity(nm)
	if err != nil {
		return LinearRGB{}, err
	}
	rgb, _ := p.linear(c)
	return rgb, nil
}

// Convert returns the display color of monochromatic light at nm.
func (p *Pipeline) Convert(nm float64) (DisplayRGB, error) {
	c, err := WavelengthToChromaticity(nm)
	if err != nil {
		return DisplayRGB{}, err
	}
	rgb, white := p.linear(c)
	out := p.encode(rgb)
	p.trace(slog.Float64("nm", nm), white, out)
	return out, nil
}

// ConvertChromaticity returns the display color of a chromaticity point,
// such as one obtained from [SpectrumToChromaticity].
func (p *Pipeline) ConvertChromaticity(c Chromaticity) DisplayRGB {
	rgb, white := p.linear(c)
	out := p.encode(rgb)
	p.trace(slog.Any("xy", c.XY()), white, out)
	return out
}

// ConvertSpectrum returns the display color of a light source with the
// spectral distribution f.
func (p *Pipeline) ConvertSpectrum(f SpectrumFunc) (DisplayRGB, error) {
	c, err := SpectrumToChromaticity(f)
	if err != nil {
		return DisplayRGB{}, err
	}
	return p.ConvertChromaticity(c), nil
}

// Render converts each wavelength in order and writes the result to sink.
// It stops at the first conversion or sink error.
func (p *Pipeline) Render(wavelengths []float64, sink Sink) error {
	for i, nm := range wavelengths {
		c, err := p.Convert(nm)
		if err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}
		if err := sink.WriteRGB(c); err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}
	}
	return nil
}
