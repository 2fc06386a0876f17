package specrend

import "math"

// SineRainbow returns sample i of the classic phase-shifted sine palette:
// three sinusoids 120° apart, one per channel. It is not physically based;
// it is kept for side-by-side comparison with a real spectral band.
//
// speed is the phase advance per sample and shift offsets the whole
// palette, which animates it when advanced between frames.
func SineRainbow(i int, speed, shift float64) DisplayRGB {
	t := speed*float64(i) + shift
	channel := func(phase float64) uint8 {
		//nolint:gosec // G115: (sin+1)*127 is in [0,254]
		return uint8((math.Sin(t+phase) + 1) * 127)
	}
	return DisplayRGB{
		R: channel(0),
		G: channel(2 * math.Pi / 3),
		B: channel(4 * math.Pi / 3),
	}
}
