package specrend

import "errors"

var (
	// ErrWavelengthOutOfRange is returned for wavelengths outside the
	// tabulated band. Input is never clamped.
	ErrWavelengthOutOfRange = errors.New("specrend: wavelength outside tabulated range")

	// ErrZeroResponse is returned when the matching functions sum to zero
	// for a sample, so no chromaticity exists.
	ErrZeroResponse = errors.New("specrend: zero color-matching response")

	// ErrDegenerateSystem is returned for color systems whose primaries are
	// collinear, or whose white point cannot be reached from them.
	ErrDegenerateSystem = errors.New("specrend: degenerate color system")

	// ErrInvalidWhitePoint is returned when the white point luminance y is
	// not positive.
	ErrInvalidWhitePoint = errors.New("specrend: invalid white point")

	// ErrInvalidSystem is returned for malformed color systems.
	ErrInvalidSystem = errors.New("specrend: invalid color system")

	// ErrUnknownSystem is returned by registry lookups that find nothing.
	ErrUnknownSystem = errors.New("specrend: unknown color system")

	// ErrDuplicateSystem is returned when a name is registered twice.
	ErrDuplicateSystem = errors.New("specrend: duplicate color system")

	// ErrInvalidTemperature is returned for black-body temperatures <= 0.
	ErrInvalidTemperature = errors.New("specrend: invalid temperature")

	// ErrSinkFull is returned by bounded sinks that cannot take more samples.
	ErrSinkFull = errors.New("specrend: sink full")
)
