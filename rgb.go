package specrend

import (
	"fmt"

	"github.com/gogpu/specrend/internal/transfer"
)

// LinearRGB is a color as weights of a system's primaries in linear light.
// Components are unconstrained until [LinearRGB.Constrain] and
// [LinearRGB.Normalize] have been applied.
type LinearRGB struct {
	R, G, B float64
}

// InGamut reports whether the color is a non-negative mix of the primaries.
func (c LinearRGB) InGamut() bool {
	return c.R >= 0 && c.G >= 0 && c.B >= 0
}

// Constrain desaturates an out-of-gamut color by adding just enough white,
// an equal amount of every primary, to make all components non-negative.
// It reports whether the color was changed.
//
// The result may exceed 1; see [LinearRGB.Normalize].
func (c LinearRGB) Constrain() (LinearRGB, bool) {
	// w = -min(0, r, g, b)
	w := -min(0, c.R, c.G, c.B)
	if w > 0 {
		return LinearRGB{R: c.R + w, G: c.G + w, B: c.B + w}, true
	}
	return c, false
}

// Max returns the largest component.
func (c LinearRGB) Max() float64 {
	return max(c.R, c.G, c.B)
}

// Normalize scales the color so its largest component is 1.
// Colors whose largest component is not positive are returned unchanged.
func (c LinearRGB) Normalize() LinearRGB {
	m := c.Max()
	if m > 0 {
		return LinearRGB{R: c.R / m, G: c.G / m, B: c.B / m}
	}
	return c
}

// GammaCorrect applies the transfer function of sys to every component.
func (c LinearRGB) GammaCorrect(sys ColorSystem) LinearRGB {
	return LinearRGB{
		R: GammaCorrect(sys, c.R),
		G: GammaCorrect(sys, c.G),
		B: GammaCorrect(sys, c.B),
	}
}

// Quantize converts components in [0,1] to 8 bits, truncating toward zero.
// Out-of-range components are clamped.
func (c LinearRGB) Quantize() DisplayRGB {
	return DisplayRGB{
		R: transfer.Quantize(c.R),
		G: transfer.Quantize(c.G),
		B: transfer.Quantize(c.B),
	}
}

// DisplayRGB is a display-ready 8-bit color.
type DisplayRGB struct {
	R, G, B uint8
}

// RGBA implements the color.Color interface. DisplayRGB is always opaque.
func (c DisplayRGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// String returns the color as "#rrggbb".
func (c DisplayRGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
