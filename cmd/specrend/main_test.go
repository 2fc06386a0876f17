package main

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/specrend"
)

func TestRunTerminal(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := run([]string{"-from", "550", "-to", "552", "-step", "2"}, &out, &errOut); err != nil {
		t.Fatal(err)
	}
	// SMPTE without gamma: 550 nm is (0, 255, 7).
	if !strings.Contains(out.String(), "48;2;0;255;7m") {
		t.Errorf("output %q lacks the 550 nm cell", out.String())
	}
	if !strings.HasSuffix(out.String(), "\n") {
		t.Error("band not terminated by a newline")
	}
}

func TestRunPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "band.png")
	var out, errOut bytes.Buffer
	if err := run([]string{"-out", path, "-width", "370", "-height", "60"}, &out, &errOut); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 370 || b.Dy() != 60 {
		t.Errorf("size = %v", b)
	}
	// Column 0 is 380 nm, violet with blue saturated.
	_, _, b, _ := img.At(0, 0).RGBA()
	if b>>8 != 255 {
		t.Errorf("380 nm blue = %d, want 255", b>>8)
	}
}

func TestRunFrames(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer
	args := []string{"-mode", "sine", "-frames", "12", "-shift", "0.5", "-out", filepath.Join(dir, "r.png"), "-width", "50", "-height", "10"}
	if err := run(args, &out, &errOut); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"r-00.png", "r-05.png", "r-11.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("frame %s: %v", name, err)
		}
	}
}

func TestRunBlackBody(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := run([]string{"-mode", "blackbody", "-temp", "6500", "-step", "37"}, &out, &errOut); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "48;2;") {
		t.Errorf("output %q has no color cells", out.String())
	}

	err := run([]string{"-mode", "blackbody", "-temp", "500"}, &out, &errOut)
	if !errors.Is(err, specrend.ErrInvalidTemperature) {
		t.Errorf("cold ramp error = %v", err)
	}
}

func TestRunList(t *testing.T) {
	t.Setenv("LANG", "")
	var out, errOut bytes.Buffer
	if err := run([]string{"-list"}, &out, &errOut); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"NTSC", "EBU (PAL/SECAM)", "CIE REC 709", "gamma rec709", "color systems"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("list lacks %q:\n%s", want, out.String())
		}
	}
}

func TestRunConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "systems.toml")
	const cfg = `
[[system]]
name    = "Display P3"
aliases = ["p3"]
red     = [0.680, 0.320]
green   = [0.265, 0.690]
blue    = [0.150, 0.060]
white   = "D65"
gamma   = 2.2
`
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}
	var out, errOut bytes.Buffer
	if err := run([]string{"-config", path, "-system", "p3", "-gamma", "-from", "600", "-to", "600"}, &out, &errOut); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "48;2;255;") {
		t.Errorf("600 nm under P3 = %q, want red saturated", out.String())
	}
}

// Custom systems stay local to one invocation, so loading the same file
// again does not clash with the first load.
func TestRunConfigRepeated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "systems.toml")
	const cfg = `
[[system]]
name    = "Wide Gamut"
aliases = ["wide"]
red     = [0.7347, 0.2653]
green   = [0.1152, 0.8264]
blue    = [0.1566, 0.0177]
white   = "D65"
`
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}
	for i := range 2 {
		var out, errOut bytes.Buffer
		if err := run([]string{"-config", path, "-system", "wide", "-from", "550", "-to", "550"}, &out, &errOut); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	if _, err := specrend.Lookup("wide"); !errors.Is(err, specrend.ErrUnknownSystem) {
		t.Errorf("default registry lookup = %v, want ErrUnknownSystem", err)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown system", []string{"-system", "nope"}, specrend.ErrUnknownSystem},
		{"range", []string{"-from", "200"}, specrend.ErrWavelengthOutOfRange},
		{"step", []string{"-step", "0"}, specrend.ErrWavelengthOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			if err := run(tt.args, &out, &errOut); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	var out, errOut bytes.Buffer
	for _, args := range [][]string{
		{"-mode", "plaid"},
		{"extra"},
		{"-out", "x.png", "-width", "0"},
		{"-config", filepath.Join(t.TempDir(), "missing.toml")},
	} {
		if err := run(args, &out, &errOut); err == nil {
			t.Errorf("run(%q) succeeded", args)
		}
	}
}

func TestFramePath(t *testing.T) {
	tests := []struct {
		path      string
		k, frames int
		want      string
	}{
		{"a.png", 0, 1, "a.png"},
		{"a.png", 3, 10, "a-3.png"},
		{"out/a.png", 7, 100, "out/a-07.png"},
	}
	for _, tt := range tests {
		if got := framePath(tt.path, tt.k, tt.frames); got != tt.want {
			t.Errorf("framePath(%q, %d, %d) = %q, want %q", tt.path, tt.k, tt.frames, got, tt.want)
		}
	}
}

func TestFrameRotates(t *testing.T) {
	base := []specrend.DisplayRGB{{R: 1}, {R: 2}, {R: 3}}
	o := options{mode: "band", shift: 1}
	got := frame(o, base, 1)
	if got[0].R != 2 || got[2].R != 1 {
		t.Errorf("frame 1 = %v", got)
	}
	o.shift = -1
	if got := frame(o, base, 1); got[0].R != 3 {
		t.Errorf("negative shift frame = %v", got)
	}
	o.shift = 0.4
	if got := frame(o, base, 3); got[0].R != 2 {
		t.Errorf("fractional shift frame 3 = %v, want a one-sample rotation", got)
	}
}

func TestShiftDefaults(t *testing.T) {
	tests := []struct {
		args []string
		want float64
	}{
		{[]string{"-mode", "band"}, 1},
		{[]string{"-mode", "blackbody"}, 1},
		{[]string{"-mode", "sine"}, 0.1},
		{[]string{"-mode", "band", "-shift", "3"}, 3},
		{[]string{"-mode", "sine", "-shift", "0"}, 0},
	}
	for _, tt := range tests {
		o, err := parseFlags(tt.args, io.Discard)
		if err != nil {
			t.Fatal(err)
		}
		if o.shift != tt.want {
			t.Errorf("%q: shift = %v, want %v", tt.args, o.shift, tt.want)
		}
	}
}

// Without -shift every band frame moves.
func TestBandFramesMove(t *testing.T) {
	o, err := parseFlags([]string{"-frames", "3"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	base := []specrend.DisplayRGB{{R: 1}, {R: 2}, {R: 3}, {R: 4}}
	for k := 1; k < 3; k++ {
		if got := frame(o, base, k); got[0] == base[0] {
			t.Errorf("frame %d equals frame 0: %v", k, got)
		}
	}
}
