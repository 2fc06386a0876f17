package specrend

import (
	"image"
	"math"
	"strconv"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// labelFont is parsed once; faces are created per call because an
// opentype face is not safe for concurrent use.
var labelFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// ScaleOptions controls the wavelength axis drawn by [Pixmap.DrawScale].
type ScaleOptions struct {
	// From and To are the wavelengths at the left edge of the first column
	// and the right edge of the last column.
	From, To float64
	// Every is the spacing of labeled ticks in nanometers. Default 50.
	Every float64
	// Top is the first row of the axis strip; the strip runs to the bottom
	// of the pixmap.
	Top int
	// Size is the label font size in pixels. Default 11.
	Size float64
	// Color of ticks and labels. The zero value draws white.
	Color DisplayRGB
}

// DrawScale draws a wavelength axis with tick marks and labels below a band.
func (p *Pixmap) DrawScale(opts ScaleOptions) error {
	if opts.Every <= 0 {
		opts.Every = 50
	}
	if opts.Size <= 0 {
		opts.Size = 11
	}
	if opts.Color == (DisplayRGB{}) {
		opts.Color = DisplayRGB{R: 255, G: 255, B: 255}
	}
	if opts.To <= opts.From || opts.Top >= p.height {
		return nil
	}

	f, err := labelFont()
	if err != nil {
		return err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    opts.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = face.Close()
	}()

	d := &font.Drawer{
		Dst:  p,
		Src:  image.NewUniform(opts.Color),
		Face: face,
	}
	tick := max(2, (p.height-opts.Top)/4)
	baseline := min(p.height-2, opts.Top+tick+face.Metrics().Ascent.Ceil()+1)
	perPixel := float64(p.width) / (opts.To - opts.From)

	for nm := math.Ceil(opts.From/opts.Every) * opts.Every; nm <= opts.To; nm += opts.Every {
		x := int((nm - opts.From) * perPixel)
		if x >= p.width {
			x = p.width - 1
		}
		p.FillColumn(x, opts.Top, opts.Top+tick, opts.Color)

		label := strconv.FormatFloat(nm, 'f', -1, 64)
		w := font.MeasureString(face, label).Ceil()
		lx := min(max(x-w/2, 0), p.width-w)
		d.Dot = fixed.P(lx, baseline)
		d.DrawString(label)
	}
	return nil
}
