// Package transfer provides the nonlinear transfer functions applied to
// linear light before display, and the 8-bit quantizer.
//
// References:
//   - ITU-R BT.709: https://www.itu.int/rec/R-REC-BT.709
//   - Poynton, Gamma FAQ: http://www.poynton.com/GammaFAQ.html
package transfer

import "math"

const (
	// Rec709Threshold is the linear-light value below which the Rec. 709
	// curve is a straight line.
	Rec709Threshold = 0.018

	// Rec709Exponent is the exponent of the power segment.
	Rec709Exponent = 0.45

	rec709Gain   = 1.099
	rec709Offset = 0.099
)

// Rec709Slope is the slope of the linear segment. It is chosen so the two
// segments meet at Rec709Threshold.
var Rec709Slope = rec709Power(Rec709Threshold) / Rec709Threshold

func rec709Power(c float64) float64 {
	return rec709Gain*math.Pow(c, Rec709Exponent) - rec709Offset
}

// Rec709 applies the Rec. 709 opto-electronic transfer function.
// Formula: if c < 0.018: c*slope; else: 1.099*pow(c, 0.45)-0.099
// Input should be in [0,1].
func Rec709(c float64) float64 {
	if c < Rec709Threshold {
		return c * Rec709Slope
	}
	return rec709Power(c)
}

// Power applies a pure power-law encoding c^(1/gamma).
func Power(c, gamma float64) float64 {
	return math.Pow(c, 1/gamma)
}
