// Package term paints display colors to a terminal as 24-bit ANSI
// background cells.
//
// A Sink writes one cell per sample:
//
//	s := term.NewSink(os.Stdout)
//	_ = p.Render(wavelengths, s)
//	_ = s.Newline()
package term

import (
	"io"
	"os"

	"github.com/gogpu/specrend"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	xterm "golang.org/x/term"
)

// DefaultCell is printed once per sample. Two spaces make a roughly square
// cell in most terminal fonts.
const DefaultCell = "  "

// Option configures a Sink.
type Option func(*Sink)

// WithProfile sets the color profile. The default is termenv.TrueColor;
// lower profiles approximate each color with the nearest palette entry.
func WithProfile(p termenv.Profile) Option {
	return func(s *Sink) {
		s.profile = p
	}
}

// WithCell sets the text printed for each sample.
func WithCell(cell string) Option {
	return func(s *Sink) {
		s.cell = cell
	}
}

// WithWrap starts a new line after every n cells. Zero disables wrapping.
func WithWrap(n int) Option {
	return func(s *Sink) {
		s.wrap = n
	}
}

// Sink implements specrend.Sink for a terminal.
//
// Sink is not safe for concurrent use; colors appear in the order they are
// written.
type Sink struct {
	out     *termenv.Output
	profile termenv.Profile
	cell    string
	wrap    int
	col     int
}

var _ specrend.Sink = (*Sink)(nil)

// NewSink returns a sink writing to w.
func NewSink(w io.Writer, opts ...Option) *Sink {
	s := &Sink{
		profile: termenv.TrueColor,
		cell:    DefaultCell,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.out = termenv.NewOutput(w, termenv.WithProfile(s.profile))
	return s
}

// Hex returns c as a "#rrggbb" string.
func Hex(c specrend.DisplayRGB) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// WriteRGB paints one cell with background c.
func (s *Sink) WriteRGB(c specrend.DisplayRGB) error {
	cell := s.out.String(s.cell).Background(s.out.Color(Hex(c))).String()
	if _, err := io.WriteString(s.out, cell); err != nil {
		return err
	}
	s.col++
	if s.wrap > 0 && s.col >= s.wrap {
		return s.Newline()
	}
	return nil
}

// Newline ends the current row of cells.
func (s *Sink) Newline() error {
	s.col = 0
	_, err := io.WriteString(s.out, "\n")
	return err
}

// Width returns the width in columns of the terminal attached to f.
// ok is false if f is not a terminal.
func Width(f *os.File) (cols int, ok bool) {
	fd := int(f.Fd()) //nolint:gosec // G115: file descriptors fit in int
	if !xterm.IsTerminal(fd) {
		return 0, false
	}
	w, _, err := xterm.GetSize(fd)
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}
