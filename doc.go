// Package specrend renders visible light as displayable RGB color.
//
// # Overview
//
// specrend is a small colorimetry engine. Given a wavelength, or a whole
// emission spectrum, it produces the 8-bit RGB color a display with a chosen
// set of primaries and white point should show. Rendering a smooth spectral
// band (a rainbow) to a terminal or pixel buffer is the typical use.
//
// # Quick Start
//
//	import "github.com/gogpu/specrend"
//
//	p, err := specrend.NewPipeline(specrend.SMPTE)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c, err := p.Convert(550) // mid-spectrum green
//
// # Pipeline
//
// Every sample flows through the same stages:
//
//	wavelength -> chromaticity (CIE 1931 table lookup)
//	           -> linear RGB   (basis change for the color system)
//	           -> in gamut     (desaturate by adding white)
//	           -> normalized   (brightest channel = 1)
//	           -> encoded      (optional gamma correction)
//	           -> DisplayRGB   (x255, truncated)
//
// Each stage is also exported on its own: [WavelengthToChromaticity],
// [XYZToRGB], [LinearRGB.Constrain], [LinearRGB.Normalize] and
// [GammaCorrect].
//
// # Color Systems
//
// The built-in systems are [NTSC], [EBU], [SMPTE], [HDTV], [CIE] and
// [Rec709]. Custom systems are added with [Registry.Register] or loaded from
// TOML with [Registry.LoadTOML]. A system is validated when it is registered
// or when a [Pipeline] is built from it, never per sample.
//
// # Spectra
//
// [WavelengthToChromaticity] samples the matching functions at a single
// wavelength. [SpectrumToChromaticity] integrates an arbitrary emission
// spectrum, for example [BlackBody], against the full table.
//
// # Concurrency
//
// All stages are pure functions over read-only tables. A [Pipeline] may be
// shared between goroutines; [Pipeline.Band] converts a batch of samples in
// parallel.
package specrend

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
