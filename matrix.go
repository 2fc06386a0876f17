package specrend

import (
	"fmt"
	"math"
)

// vec is a column of three reals used while deriving matrices.
type vec [3]float64

func (a vec) dot(b vec) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a vec) cross(b vec) vec {
	return vec{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (a vec) scale(k float64) vec {
	return vec{a[0] * k, a[1] * k, a[2] * k}
}

// Matrix3 is a 3x3 matrix in row-major order.
//
// As an XYZ to RGB transform, row i holds the weights that produce
// channel i from (X, Y, Z).
type Matrix3 [3][3]float64

// MulVec returns m * (c.X, c.Y, c.Z) as linear RGB.
func (m Matrix3) MulVec(c Chromaticity) LinearRGB {
	return LinearRGB{
		R: m[0][0]*c.X + m[0][1]*c.Y + m[0][2]*c.Z,
		G: m[1][0]*c.X + m[1][1]*c.Y + m[1][2]*c.Z,
		B: m[2][0]*c.X + m[2][1]*c.Y + m[2][2]*c.Z,
	}
}

// Det returns the determinant of m.
func (m Matrix3) Det() float64 {
	return vec(m[0]).dot(vec(m[1]).cross(vec(m[2])))
}

// Inverse returns the inverse of m. ok is false if m is singular.
func (m Matrix3) Inverse() (inv Matrix3, ok bool) {
	det := m.Det()
	if det == 0 || math.IsNaN(det) {
		return Matrix3{}, false
	}
	r0, r1, r2 := vec(m[0]), vec(m[1]), vec(m[2])
	// The columns of the inverse are the pairwise cross products of the rows.
	c0, c1, c2 := r1.cross(r2), r2.cross(r0), r0.cross(r1)
	for i := range 3 {
		inv[i] = [3]float64{c0[i] / det, c1[i] / det, c2[i] / det}
	}
	return inv, true
}

// whiteScale derives the XYZ to RGB rows for s, scaled so that the white
// point with luminance Y = 1 maps to (1, 1, 1).
//
// The unscaled rows are the cross products of primary pairs: each row is
// orthogonal to two primaries, so it measures only the third. Dividing a
// row by its projection of the white point, with y_w as the luminance
// divisor, fixes the relative luminance of the primaries.
func (s ColorSystem) whiteScale() ([3]vec, error) {
	if s.White.Y <= 0 {
		return [3]vec{}, fmt.Errorf("%w: %s: white y = %v", ErrInvalidWhitePoint, s.Name, s.White.Y)
	}
	r := vec(s.Red.Chromaticity().array())
	g := vec(s.Green.Chromaticity().array())
	b := vec(s.Blue.Chromaticity().array())
	w := vec(s.White.Chromaticity().array())

	rows := [3]vec{g.cross(b), b.cross(r), r.cross(g)}
	for i, row := range rows {
		k := row.dot(w) / s.White.Y
		if math.Abs(k) < collinearEps || math.IsNaN(k) {
			return [3]vec{}, fmt.Errorf("%w: %s: white point not reachable from primaries", ErrDegenerateSystem, s.Name)
		}
		rows[i] = row.scale(1 / k)
	}
	return rows, nil
}

// Matrix returns the XYZ to linear RGB transform of s.
func (s ColorSystem) Matrix() (Matrix3, error) {
	if err := s.Validate(); err != nil {
		return Matrix3{}, err
	}
	rows, err := s.whiteScale()
	if err != nil {
		return Matrix3{}, err
	}
	return Matrix3{rows[0], rows[1], rows[2]}, nil
}

// XYZToRGB projects a chromaticity (or any XYZ triple) into the linear RGB
// space of sys. The result is unconstrained: components may be negative
// for colors outside the gamut, or greater than 1.
//
// XYZToRGB derives the matrix on every call; use a [Pipeline] to convert
// many samples. It panics if sys does not validate, which cannot happen for
// systems obtained from a [Registry].
func XYZToRGB(sys ColorSystem, c Chromaticity) LinearRGB {
	m, err := sys.Matrix()
	if err != nil {
		panic(err)
	}
	return m.MulVec(c)
}

// RGBToXYZ is the inverse of [XYZToRGB].
func RGBToXYZ(sys ColorSystem, rgb LinearRGB) (Chromaticity, error) {
	m, err := sys.Matrix()
	if err != nil {
		return Chromaticity{}, err
	}
	inv, ok := m.Inverse()
	if !ok {
		return Chromaticity{}, fmt.Errorf("%w: %s: singular matrix", ErrDegenerateSystem, sys.Name)
	}
	v := inv.MulVec(Chromaticity{X: rgb.R, Y: rgb.G, Z: rgb.B})
	return Chromaticity{X: v.R, Y: v.G, Z: v.B}, nil
}
