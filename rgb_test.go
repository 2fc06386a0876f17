package specrend

import (
	"image/color"
	"math"
	"testing"
)

func TestInGamutMatchesConstrain(t *testing.T) {
	samples := []LinearRGB{
		{0, 0, 0},
		{1, 1, 1},
		{0.2, 0.5, 0},
		{-0.1, 0.5, 0.2},
		{0.3, -2, 1.5},
		{0, 0, -1e-12},
		{2, 3, 4},
		{-1, -1, -1},
	}
	for _, c := range samples {
		_, modified := c.Constrain()
		if c.InGamut() == modified {
			t.Errorf("%v: InGamut = %v but Constrain modified = %v", c, c.InGamut(), modified)
		}
	}
}

func TestConstrain(t *testing.T) {
	tests := []struct {
		name     string
		in, want LinearRGB
		modified bool
	}{
		{"in gamut", LinearRGB{0.2, 0.4, 0.6}, LinearRGB{0.2, 0.4, 0.6}, false},
		{"one negative", LinearRGB{-0.25, 1, 0.5}, LinearRGB{0, 1.25, 0.75}, true},
		{"two negative", LinearRGB{-0.5, -0.25, 1}, LinearRGB{0, 0.25, 1.5}, true},
		{"all negative", LinearRGB{-1, -2, -3}, LinearRGB{2, 1, 0}, true},
		{"zero", LinearRGB{}, LinearRGB{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, modified := tt.in.Constrain()
			if got != tt.want || modified != tt.modified {
				t.Errorf("Constrain(%v) = %v, %v; want %v, %v", tt.in, got, modified, tt.want, tt.modified)
			}
			if !got.InGamut() {
				t.Errorf("result %v not in gamut", got)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want LinearRGB
	}{
		{LinearRGB{0.5, 0.25, 0}, LinearRGB{1, 0.5, 0}},
		{LinearRGB{2, 4, 1}, LinearRGB{0.5, 1, 0.25}},
		{LinearRGB{}, LinearRGB{}},
		{LinearRGB{-1, -2, -3}, LinearRGB{-1, -2, -3}},
	}
	for _, tt := range tests {
		if got := tt.in.Normalize(); got != tt.want {
			t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, c := range []LinearRGB{{0.3, 0.7, 0.1}, {5, 1, 3}, {1e-9, 2e-9, 0}, {0, 0, 42}} {
		once := c.Normalize()
		twice := once.Normalize()
		if !near(once.R, twice.R, 1e-15) || !near(once.G, twice.G, 1e-15) || !near(once.B, twice.B, 1e-15) {
			t.Errorf("Normalize not idempotent for %v: %v then %v", c, once, twice)
		}
		if !near(once.Max(), 1, 1e-15) {
			t.Errorf("Normalize(%v).Max() = %v, want 1", c, once.Max())
		}
	}
}

func TestQuantizeTruncates(t *testing.T) {
	got := LinearRGB{R: 1, G: 0.999, B: 0.0039}.Quantize()
	want := DisplayRGB{R: 255, G: 254, B: 0}
	if got != want {
		t.Errorf("Quantize = %v, want %v", got, want)
	}
	if got := (LinearRGB{R: math.NaN(), G: -1, B: 7}).Quantize(); got != (DisplayRGB{B: 255}) {
		t.Errorf("Quantize clamps to %v", got)
	}
}

func TestDisplayRGBColor(t *testing.T) {
	var c color.Color = DisplayRGB{R: 255, G: 128, B: 0}
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 128*257 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = (%d, %d, %d, %d)", r, g, b, a)
	}
	if got := (DisplayRGB{R: 0, G: 255, B: 7}).String(); got != "#00ff07" {
		t.Errorf("String() = %q", got)
	}
}
