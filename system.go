package specrend

import (
	"fmt"
	"math"
	"strconv"
)

// XY is a CIE 1931 chromaticity coordinate pair.
type XY struct {
	X, Y float64
}

// Chromaticity returns the full (x, y, z) point with z = 1 - x - y.
func (p XY) Chromaticity() Chromaticity {
	return Chromaticity{X: p.X, Y: p.Y, Z: 1 - (p.X + p.Y)}
}

// White point chromaticities.
var (
	// IlluminantC is the white point used by NTSC television.
	IlluminantC = XY{0.3101, 0.3162}
	// IlluminantD65 is the white point used by EBU, SMPTE and HDTV.
	IlluminantD65 = XY{0.3127, 0.3291}
	// IlluminantE is the CIE equal-energy illuminant.
	IlluminantE = XY{0.33333333, 0.33333333}
)

// Gamma selects the transfer function of a color system.
//
// The zero value, GammaRec709, selects the Rec. 709 reference curve.
// A positive value is the exponent of a pure power law, c^(1/gamma).
type Gamma float64

// GammaRec709 selects the ITU-R BT.709 transfer function.
const GammaRec709 Gamma = 0

// String returns "rec709" for the reference curve and the exponent otherwise.
func (g Gamma) String() string {
	if g == GammaRec709 {
		return "rec709"
	}
	return strconv.FormatFloat(float64(g), 'g', -1, 64)
}

// ColorSystem describes an additive display: the chromaticities of its three
// primaries, its white point and its transfer function.
//
// ColorSystem is a plain value; copies are independent and nothing in this
// package mutates one.
type ColorSystem struct {
	Name  string
	Red   XY
	Green XY
	Blue  XY
	White XY
	Gamma Gamma
}

// Built-in color systems. The numbers are the published reference values.
var (
	NTSC = ColorSystem{
		Name:  "NTSC",
		Red:   XY{0.67, 0.33},
		Green: XY{0.21, 0.71},
		Blue:  XY{0.14, 0.08},
		White: IlluminantC,
		Gamma: GammaRec709,
	}

	EBU = ColorSystem{
		Name:  "EBU (PAL/SECAM)",
		Red:   XY{0.64, 0.33},
		Green: XY{0.29, 0.60},
		Blue:  XY{0.15, 0.06},
		White: IlluminantD65,
		Gamma: GammaRec709,
	}

	SMPTE = ColorSystem{
		Name:  "SMPTE",
		Red:   XY{0.630, 0.340},
		Green: XY{0.310, 0.595},
		Blue:  XY{0.155, 0.070},
		White: IlluminantD65,
		Gamma: GammaRec709,
	}

	HDTV = ColorSystem{
		Name:  "HDTV",
		Red:   XY{0.670, 0.330},
		Green: XY{0.210, 0.710},
		Blue:  XY{0.150, 0.060},
		White: IlluminantD65,
		Gamma: GammaRec709,
	}

	CIE = ColorSystem{
		Name:  "CIE",
		Red:   XY{0.7355, 0.2645},
		Green: XY{0.2658, 0.7243},
		Blue:  XY{0.1669, 0.0085},
		White: IlluminantE,
		Gamma: GammaRec709,
	}

	Rec709 = ColorSystem{
		Name:  "CIE REC 709",
		Red:   XY{0.64, 0.33},
		Green: XY{0.30, 0.60},
		Blue:  XY{0.15, 0.06},
		White: IlluminantD65,
		Gamma: GammaRec709,
	}
)

// collinearEps bounds the primaries determinant below which the gamut
// triangle is treated as having zero area.
const collinearEps = 1e-9

// Validate reports whether the system can be used for conversion.
//
// The primaries must span a triangle of nonzero area, the white point must
// have positive y and must not lie on a line through two primaries, and the
// gamma must be GammaRec709 or a positive exponent.
func (s ColorSystem) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSystem)
	}
	for _, c := range []struct {
		label string
		p     XY
	}{
		{"red", s.Red}, {"green", s.Green}, {"blue", s.Blue}, {"white", s.White},
	} {
		if !unit(c.p.X) || !unit(c.p.Y) {
			return fmt.Errorf("%w: %s: %s chromaticity %v outside [0,1]", ErrInvalidSystem, s.Name, c.label, c.p)
		}
	}
	if g := float64(s.Gamma); math.IsNaN(g) || math.IsInf(g, 0) || g < 0 {
		return fmt.Errorf("%w: %s: gamma %v", ErrInvalidSystem, s.Name, g)
	}
	if s.White.Y <= 0 {
		return fmt.Errorf("%w: %s: white y = %v", ErrInvalidWhitePoint, s.Name, s.White.Y)
	}

	r := vec(s.Red.Chromaticity().array())
	g := vec(s.Green.Chromaticity().array())
	b := vec(s.Blue.Chromaticity().array())
	if det := r.dot(g.cross(b)); math.Abs(det) < collinearEps {
		return fmt.Errorf("%w: %s: primaries are collinear", ErrDegenerateSystem, s.Name)
	}
	if _, err := s.whiteScale(); err != nil {
		return err
	}
	return nil
}

func unit(v float64) bool {
	return v >= 0 && v <= 1
}

func (s ColorSystem) String() string {
	return s.Name
}
