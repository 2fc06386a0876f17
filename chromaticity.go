package specrend

import (
	"fmt"
	"math"

	"github.com/gogpu/specrend/internal/cmf"
)

// Chromaticity is a CIE 1931 (x, y, z) point, describing hue and saturation
// independently of luminance. Points returned by this package satisfy
// x + y + z = 1.
//
// The basis change is linear, so an unnormalized XYZ tristimulus triple may
// be passed wherever a Chromaticity is accepted.
type Chromaticity struct {
	X, Y, Z float64
}

func (c Chromaticity) array() [3]float64 {
	return [3]float64{c.X, c.Y, c.Z}
}

// Scale returns c with every coordinate multiplied by k.
func (c Chromaticity) Scale(k float64) Chromaticity {
	return Chromaticity{X: c.X * k, Y: c.Y * k, Z: c.Z * k}
}

// Normalize returns c scaled so that x + y + z = 1.
// The zero point is returned unchanged.
func (c Chromaticity) Normalize() Chromaticity {
	s := c.X + c.Y + c.Z
	if s == 0 {
		return c
	}
	return c.Scale(1 / s)
}

// XY returns the (x, y) pair of c.
func (c Chromaticity) XY() XY {
	return XY{X: c.X, Y: c.Y}
}

// UV returns the CIE 1976 u', v' coordinates of c.
func (c Chromaticity) UV() (u, v float64) {
	return XYToUV(c.X, c.Y)
}

// XYToUV converts CIE 1931 chromaticities x, y to CIE 1976 u', v'.
func XYToUV(x, y float64) (u, v float64) {
	d := -2*x + 12*y + 3
	return 4 * x / d, 9 * y / d
}

// UVToXY converts CIE 1976 u', v' to CIE 1931 chromaticities x, y.
func UVToXY(u, v float64) (x, y float64) {
	d := 6*u - 16*v + 12
	return 9 * u / d, 4 * v / d
}

// FromUV returns the chromaticity point with CIE 1976 coordinates u', v'.
func FromUV(u, v float64) Chromaticity {
	x, y := UVToXY(u, v)
	return XY{X: x, Y: y}.Chromaticity()
}

// WavelengthRange returns the band of wavelengths, in nanometers, accepted
// by [WavelengthToChromaticity].
func WavelengthRange() (lo, hi float64) {
	return cmf.Range()
}

// WavelengthToChromaticity returns the chromaticity of monochromatic light.
//
// The wavelength is in nanometers and must lie within [WavelengthRange].
// Fractional wavelengths select the tabulated row at or below them.
// Near the red end the matching functions fall to zero, where no
// chromaticity exists and ErrZeroResponse is returned.
func WavelengthToChromaticity(nm float64) (Chromaticity, error) {
	e, err := cmf.Lookup(nm)
	if err != nil {
		lo, hi := cmf.Range()
		return Chromaticity{}, fmt.Errorf("%w: %g nm not in [%g, %g]", ErrWavelengthOutOfRange, nm, lo, hi)
	}
	s := e.Sum()
	if s == 0 || math.IsNaN(s) {
		return Chromaticity{}, fmt.Errorf("%w: at %g nm", ErrZeroResponse, nm)
	}
	return Chromaticity{X: e.X / s, Y: e.Y / s, Z: e.Z / s}, nil
}
