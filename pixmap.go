package specrend

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Pixmap represents a rectangular pixel buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
// New pixels are opaque black.
func NewPixmap(width, height int) *Pixmap {
	p := &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
	p.Clear(DisplayRGB{})
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are
// ignored.
func (p *Pixmap) SetPixel(x, y int, c DisplayRGB) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = 0xff
}

// GetPixel returns the color of a single pixel, or black out of bounds.
func (p *Pixmap) GetPixel(x, y int) DisplayRGB {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return DisplayRGB{}
	}
	i := (y*p.width + x) * 4
	return DisplayRGB{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2]}
}

// FillColumn paints rows [y0, y1) of column x.
func (p *Pixmap) FillColumn(x, y0, y1 int, c DisplayRGB) {
	for y := max(y0, 0); y < min(y1, p.height); y++ {
		p.SetPixel(x, y, c)
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c DisplayRGB) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = 0xff
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// Scaled returns a copy of p resized to width x height. Smooth selects
// bilinear filtering; otherwise every source pixel becomes a solid block,
// which keeps band edges sharp.
func (p *Pixmap) Scaled(width, height int, smooth bool) *Pixmap {
	dst := NewPixmap(width, height)
	var s draw.Scaler = draw.NearestNeighbor
	if smooth {
		s = draw.ApproxBiLinear
	}
	s.Scale(dst, dst.Bounds(), p, p.Bounds(), draw.Src, nil)
	return dst
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.ToImage()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Set implements the draw.Image interface. Alpha is discarded.
func (p *Pixmap) Set(x, y int, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	p.SetPixel(x, y, DisplayRGB{R: n.R, G: n.G, B: n.B})
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

// BandSink paints successive samples as full-height columns of a pixmap,
// left to right.
type BandSink struct {
	pm     *Pixmap
	x      int
	y0, y1 int
}

// NewBandSink returns a sink that writes one column per sample into rows
// [y0, y1) of pm.
func NewBandSink(pm *Pixmap, y0, y1 int) *BandSink {
	return &BandSink{pm: pm, y0: y0, y1: y1}
}

// WriteRGB paints the next column. It returns ErrSinkFull once every
// column has been written.
func (s *BandSink) WriteRGB(c DisplayRGB) error {
	if s.x >= s.pm.Width() {
		return ErrSinkFull
	}
	s.pm.FillColumn(s.x, s.y0, s.y1, c)
	s.x++
	return nil
}

// Columns returns the number of columns written so far.
func (s *BandSink) Columns() int {
	return s.x
}
