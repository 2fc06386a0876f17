package transfer

// Quantize maps a component in [0,1] to [0,255], truncating toward zero.
// Values outside [0,1] and NaN are clamped first.
func Quantize(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	//nolint:gosec // G115: v*255 is in [0,255)
	return uint8(v * 255)
}
