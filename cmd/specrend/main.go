// Command specrend renders the visible spectrum, a black-body ramp or the
// classic sine rainbow, either as ANSI color cells on a terminal or as PNG.
//
//	specrend                              # 380..750 nm under SMPTE in the terminal
//	specrend -system hdtv -gamma -out band.png
//	specrend -mode blackbody -temp 12000 -out planck.png
//	specrend -mode sine -frames 24 -shift 0.25 -out rainbow.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gogpu/specrend"
	"github.com/gogpu/specrend/term"
	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Speed of the sine palette, per sample.
const sineSpeed = 0.1

// Height of the wavelength axis below a PNG band.
const scaleHeight = 18

// Lowest temperature of the black-body ramp.
const minKelvin = 1000

// Default per-frame shift: a phase step for the sine palette, whole samples
// otherwise.
const (
	sineShift = 0.1
	bandShift = 1
)

type options struct {
	system   string
	from, to float64
	step     float64
	gamma    bool
	mode     string
	temp     float64
	out      string
	width    int
	height   int
	frames   int
	shift    float64
	config   string
	list     bool
	verbose  bool
	tty      *os.File
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("specrend: %v", err)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("specrend", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.system, "system", "SMPTE", "color system name or alias (see -list)")
	fs.Float64Var(&o.from, "from", 380, "first wavelength in nm")
	fs.Float64Var(&o.to, "to", 750, "last wavelength in nm")
	fs.Float64Var(&o.step, "step", 2, "wavelength step in nm")
	fs.BoolVar(&o.gamma, "gamma", false, "apply the system's gamma correction")
	fs.StringVar(&o.mode, "mode", "band", "what to draw: band, sine or blackbody")
	fs.Float64Var(&o.temp, "temp", 10000, "highest black-body temperature in K")
	fs.StringVar(&o.out, "out", "", "PNG file to write; empty prints to the terminal")
	fs.IntVar(&o.width, "width", 800, "PNG width")
	fs.IntVar(&o.height, "height", 120, "PNG height")
	fs.IntVar(&o.frames, "frames", 1, "number of PNG animation frames")
	fs.Float64Var(&o.shift, "shift", 0, "per-frame shift: phase for -mode sine (default 0.1), whole samples otherwise (default 1)")
	fs.StringVar(&o.config, "config", "", "TOML file with extra color systems")
	fs.BoolVar(&o.list, "list", false, "list color systems and exit")
	fs.BoolVar(&o.verbose, "v", false, "log conversion details to stderr")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	switch o.mode {
	case "band", "sine", "blackbody":
	default:
		return o, fmt.Errorf("unknown mode %q", o.mode)
	}
	shiftSet := false
	fs.Visit(func(f *flag.Flag) { shiftSet = shiftSet || f.Name == "shift" })
	if !shiftSet {
		o.shift = bandShift
		if o.mode == "sine" {
			o.shift = sineShift
		}
	}
	if o.out != "" {
		if o.width <= 0 || o.height <= 0 {
			return o, fmt.Errorf("invalid size %dx%d", o.width, o.height)
		}
		if o.frames < 1 {
			return o, fmt.Errorf("invalid frame count %d", o.frames)
		}
	}
	return o, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if f, ok := stdout.(*os.File); ok {
		o.tty = f
	}

	if o.verbose {
		specrend.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer specrend.SetLogger(nil)
	}

	reg := specrend.DefaultRegistry()
	if o.config != "" {
		// Custom systems live only as long as this invocation.
		reg = specrend.NewStandardRegistry()
		if err := loadConfig(reg, o.config); err != nil {
			return err
		}
	}
	if o.list {
		return listSystems(stdout, reg)
	}

	sys, err := reg.Lookup(o.system)
	if err != nil {
		return err
	}
	p, err := specrend.NewPipeline(sys, specrend.WithGammaCorrection(o.gamma))
	if err != nil {
		return err
	}
	wl, err := specrend.Wavelengths(o.from, o.to, o.step)
	if err != nil {
		return err
	}

	colors, err := samples(p, o, wl)
	if err != nil {
		return err
	}
	if o.out == "" {
		return printBand(stdout, o, colors)
	}
	return writeFrames(o, colors)
}

func loadConfig(reg *specrend.Registry, path string) error {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := reg.LoadTOML(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// samples returns the colors of the first frame.
func samples(p *specrend.Pipeline, o options, wl []float64) ([]specrend.DisplayRGB, error) {
	switch o.mode {
	case "sine":
		out := make([]specrend.DisplayRGB, len(wl))
		for i := range out {
			out[i] = specrend.SineRainbow(i, sineSpeed, 0)
		}
		return out, nil
	case "blackbody":
		return blackBodyRamp(p, o.temp, len(wl))
	}
	return p.Band(wl)
}

// blackBodyRamp returns n colors from minKelvin up to hot.
func blackBodyRamp(p *specrend.Pipeline, hot float64, n int) ([]specrend.DisplayRGB, error) {
	if !(hot > minKelvin) {
		return nil, fmt.Errorf("%w: -temp must exceed %d K", specrend.ErrInvalidTemperature, minKelvin)
	}
	out := make([]specrend.DisplayRGB, n)
	for i := range out {
		k := hot
		if n > 1 {
			k = minKelvin + (hot-minKelvin)*float64(i)/float64(n-1)
		}
		c, err := specrend.BlackBodyChromaticity(k)
		if err != nil {
			return nil, err
		}
		out[i] = p.ConvertChromaticity(c)
	}
	return out, nil
}

// frame returns the colors of animation frame k. The sine palette is
// recomputed with a shifted phase; other modes rotate by k*shift samples,
// rounded to the nearest sample.
func frame(o options, base []specrend.DisplayRGB, k int) []specrend.DisplayRGB {
	if k == 0 {
		return base
	}
	out := make([]specrend.DisplayRGB, len(base))
	if o.mode == "sine" {
		for i := range out {
			out[i] = specrend.SineRainbow(i, sineSpeed, float64(k)*o.shift)
		}
		return out
	}
	n := len(base)
	r := int(math.Round(float64(k)*o.shift)) % n
	for i := range out {
		out[i] = base[((i+r)%n+n)%n]
	}
	return out
}

func printBand(w io.Writer, o options, colors []specrend.DisplayRGB) error {
	profile := termenv.TrueColor
	var opts []term.Option
	if o.tty != nil {
		if cols, ok := term.Width(o.tty); ok {
			profile = termenv.NewOutput(o.tty).EnvColorProfile()
			if n := cols / len(term.DefaultCell); n > 0 {
				opts = append(opts, term.WithWrap(n))
			}
		}
	}
	opts = append(opts, term.WithProfile(profile))

	s := term.NewSink(w, opts...)
	for _, c := range colors {
		if err := s.WriteRGB(c); err != nil {
			return err
		}
	}
	return s.Newline()
}

// framePath returns path for a single frame, and path with a zero-padded
// frame number before the extension otherwise.
func framePath(path string, k, frames int) string {
	if frames == 1 {
		return path
	}
	ext := filepath.Ext(path)
	digits := len(fmt.Sprint(frames - 1))
	return fmt.Sprintf("%s-%0*d%s", strings.TrimSuffix(path, ext), digits, k, ext)
}

func writeFrames(o options, colors []specrend.DisplayRGB) error {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for k := range o.frames {
		g.Go(func() error {
			return writePNG(framePath(o.out, k, o.frames), o, frame(o, colors, k))
		})
	}
	return g.Wait()
}

func writePNG(path string, o options, colors []specrend.DisplayRGB) error {
	src := specrend.NewPixmap(len(colors), 1)
	sink := specrend.NewBandSink(src, 0, 1)
	for _, c := range colors {
		if err := sink.WriteRGB(c); err != nil {
			return err
		}
	}
	pm := src.Scaled(o.width, o.height, false)

	if o.mode == "band" && o.height > 2*scaleHeight {
		top := o.height - scaleHeight
		for x := range o.width {
			pm.FillColumn(x, top, o.height, specrend.DisplayRGB{})
		}
		err := pm.DrawScale(specrend.ScaleOptions{
			From: o.from,
			To:   o.from + o.step*float64(len(colors)),
			Top:  top,
		})
		if err != nil {
			return err
		}
	}
	if err := pm.SavePNG(path); err != nil {
		return err
	}
	specrend.Logger().Info("specrend: wrote image", "path", path, "width", o.width, "height", o.height)
	return nil
}

func listSystems(w io.Writer, reg *specrend.Registry) error {
	p := message.NewPrinter(userLanguage())
	for _, s := range reg.Systems() {
		if _, err := p.Fprintf(w, "%-20s red (%.4f, %.4f)  green (%.4f, %.4f)  blue (%.4f, %.4f)  white (%.4f, %.4f)  gamma %s\n",
			s.Name, s.Red.X, s.Red.Y, s.Green.X, s.Green.Y, s.Blue.X, s.Blue.Y,
			s.White.X, s.White.Y, s.Gamma); err != nil {
			return err
		}
	}
	_, err := p.Fprintf(w, "%d color systems\n", reg.Len())
	return err
}

// userLanguage derives the message language from LANG, such as "de_DE.UTF-8".
func userLanguage() language.Tag {
	lang, _, _ := strings.Cut(os.Getenv("LANG"), ".")
	if t, err := language.Parse(strings.ReplaceAll(lang, "_", "-")); err == nil {
		return t
	}
	return language.English
}
