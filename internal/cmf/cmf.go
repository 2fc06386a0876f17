// Package cmf provides the CIE 1931 color-matching function table.
//
// The table is read-only process-wide data. It is indexed by
// (wavelength - Start) / Step and is never mutated after package
// initialization, so it may be read from any number of goroutines.
package cmf

import (
	"errors"
	"fmt"
	"math"
)

const (
	// Start is the first tabulated wavelength in nanometers.
	Start = 380
	// End is the last tabulated wavelength in nanometers.
	End = 780
	// Step is the sampling interval of the table in nanometers.
	Step = 1
	// Len is the number of table rows.
	Len = (End-Start)/Step + 1
)

// ErrOutOfRange is returned for wavelengths outside [Start, End].
var ErrOutOfRange = errors.New("cmf: wavelength outside tabulated range")

// Entry is one row of the table: the x̄, ȳ, z̄ response at a wavelength.
type Entry struct {
	X, Y, Z float64
}

// Sum returns x̄+ȳ+z̄.
func (e Entry) Sum() float64 {
	return e.X + e.Y + e.Z
}

// Range returns the tabulated wavelength range in nanometers.
func Range() (lo, hi float64) {
	return Start, End
}

// Index returns the table index for a wavelength. Fractional wavelengths
// are truncated toward the shorter tabulated neighbor.
func Index(nm float64) (int, error) {
	if math.IsNaN(nm) || nm < Start || nm > End {
		return 0, fmt.Errorf("%w: %g nm", ErrOutOfRange, nm)
	}
	return int(nm-Start) / Step, nil
}

// Lookup returns the table row for a wavelength in nanometers.
func Lookup(nm float64) (Entry, error) {
	i, err := Index(nm)
	if err != nil {
		return Entry{}, err
	}
	return table[i], nil
}

// At returns the row at index i. It panics if i is out of range.
func At(i int) Entry {
	return table[i]
}

// Wavelength returns the wavelength in nanometers of row i.
func Wavelength(i int) float64 {
	return float64(Start + i*Step)
}
