package specrend

import (
	"fmt"
	"math"

	"github.com/gogpu/specrend/internal/cache"
	"github.com/gogpu/specrend/internal/cmf"
)

// SpectrumFunc returns the emittance of a light source at a wavelength in
// nanometers, in arbitrary units.
type SpectrumFunc func(nm float64) float64

// Planck's radiation law constants, in SI units.
const (
	planckC1 = 3.74183e-16 // 2*pi*h*c^2, W m^2
	planckC2 = 1.4388e-2   // h*c/k, m K
)

// BlackBody returns the spectrum of a black body at the given temperature
// in kelvin, by Planck's radiation law.
func BlackBody(kelvin float64) (SpectrumFunc, error) {
	if !(kelvin > 0) || math.IsInf(kelvin, 0) {
		return nil, fmt.Errorf("%w: %g K", ErrInvalidTemperature, kelvin)
	}
	return func(nm float64) float64 {
		m := nm * 1e-9
		return planckC1 * math.Pow(m, -5) / (math.Exp(planckC2/(m*kelvin)) - 1)
	}, nil
}

// locus memoizes BlackBodyChromaticity by temperature.
var locus = cache.New[float64, Chromaticity](4096)

// BlackBodyChromaticity returns the point of the Planckian locus at the
// given temperature: the chromaticity of [BlackBody] integrated over the
// tabulated band. Results are cached.
func BlackBodyChromaticity(kelvin float64) (Chromaticity, error) {
	if c, ok := locus.Get(kelvin); ok {
		return c, nil
	}
	f, err := BlackBody(kelvin)
	if err != nil {
		return Chromaticity{}, err
	}
	c, err := SpectrumToChromaticity(f)
	if err != nil {
		return Chromaticity{}, fmt.Errorf("%g K: %w", kelvin, err)
	}
	locus.Set(kelvin, c)
	return c, nil
}

// White is the equal-energy spectrum: constant emittance at every
// wavelength.
func White(float64) float64 {
	return 1
}

// Line returns a spectrum that emits only in the tabulated row holding nm.
// Integrating it gives the same chromaticity as [WavelengthToChromaticity].
func Line(nm float64) (SpectrumFunc, error) {
	want, err := cmf.Index(nm)
	if err != nil {
		lo, hi := cmf.Range()
		return nil, fmt.Errorf("%w: %g nm not in [%g, %g]", ErrWavelengthOutOfRange, nm, lo, hi)
	}
	return func(l float64) float64 {
		if i, err := cmf.Index(l); err == nil && i == want {
			return 1
		}
		return 0
	}, nil
}

// SpectrumToXYZ integrates f against the color-matching functions over the
// tabulated band at the table's 1 nm step, returning unnormalized
// tristimulus values.
func SpectrumToXYZ(f SpectrumFunc) Chromaticity {
	var t Chromaticity
	for i := range cmf.Len {
		e := cmf.At(i)
		me := f(cmf.Wavelength(i))
		t.X += me * e.X
		t.Y += me * e.Y
		t.Z += me * e.Z
	}
	return t
}

// SpectrumToChromaticity returns the chromaticity of a light source with
// the spectral distribution f.
func SpectrumToChromaticity(f SpectrumFunc) (Chromaticity, error) {
	t := SpectrumToXYZ(f)
	s := t.X + t.Y + t.Z
	if !(s > 0) || math.IsInf(s, 0) {
		return Chromaticity{}, fmt.Errorf("%w: spectrum integrates to %g", ErrZeroResponse, s)
	}
	return t.Scale(1 / s), nil
}
