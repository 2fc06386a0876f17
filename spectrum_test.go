package specrend

import (
	"errors"
	"math"
	"testing"
)

// Planckian locus chromaticities integrated at 1 nm.
func TestBlackBodyLocus(t *testing.T) {
	tests := []struct {
		kelvin float64
		x, y   float64
	}{
		{2000, 0.5267, 0.4133},
		{3000, 0.4369, 0.4041},
		{5000, 0.3451, 0.3516},
		{6500, 0.3135, 0.3237},
		{10000, 0.2807, 0.2884},
	}
	for _, tt := range tests {
		f, err := BlackBody(tt.kelvin)
		if err != nil {
			t.Fatal(err)
		}
		c, err := SpectrumToChromaticity(f)
		if err != nil {
			t.Fatalf("%v K: %v", tt.kelvin, err)
		}
		if !near(c.X, tt.x, 5e-4) || !near(c.Y, tt.y, 5e-4) {
			t.Errorf("%v K: (x, y) = (%.4f, %.4f), want (%.4f, %.4f)", tt.kelvin, c.X, c.Y, tt.x, tt.y)
		}
		if !near(c.X+c.Y+c.Z, 1, 1e-9) {
			t.Errorf("%v K: x+y+z = %v", tt.kelvin, c.X+c.Y+c.Z)
		}
	}
}

func TestBlackBodyInvalid(t *testing.T) {
	for _, k := range []float64{0, -300, math.NaN(), math.Inf(1)} {
		if _, err := BlackBody(k); !errors.Is(err, ErrInvalidTemperature) {
			t.Errorf("BlackBody(%v) error = %v, want ErrInvalidTemperature", k, err)
		}
	}
}

// Two generators with different temperatures share no state.
func TestBlackBodyIndependent(t *testing.T) {
	cool, _ := BlackBody(3000)
	hot, _ := BlackBody(9000)
	before := cool(550)
	_ = hot(550)
	if cool(550) != before {
		t.Error("creating another black body changed an existing one")
	}
	if hot(450)/hot(650) <= cool(450)/cool(650) {
		t.Error("hotter body should be relatively bluer")
	}
}

func TestEqualEnergyIsWhite(t *testing.T) {
	c, err := SpectrumToChromaticity(White)
	if err != nil {
		t.Fatal(err)
	}
	if !near(c.X, 1.0/3, 1e-3) || !near(c.Y, 1.0/3, 1e-3) {
		t.Errorf("equal-energy chromaticity = %v, want about (1/3, 1/3)", c.XY())
	}
}

// Integration of a single line agrees with point sampling.
func TestLineMatchesPointSampling(t *testing.T) {
	for _, nm := range []float64{400, 520, 550, 700} {
		want, err := WavelengthToChromaticity(nm)
		if err != nil {
			t.Fatal(err)
		}
		line, err := Line(nm)
		if err != nil {
			t.Fatal(err)
		}
		got, err := SpectrumToChromaticity(line)
		if err != nil {
			t.Fatal(err)
		}
		if !near(got.X, want.X, 1e-12) || !near(got.Y, want.Y, 1e-12) {
			t.Errorf("%v nm: integrated %v, sampled %v", nm, got, want)
		}
	}
}

func TestSpectrumZeroResponse(t *testing.T) {
	dark := func(float64) float64 { return 0 }
	if _, err := SpectrumToChromaticity(dark); !errors.Is(err, ErrZeroResponse) {
		t.Errorf("dark spectrum error = %v, want ErrZeroResponse", err)
	}
	line, err := Line(779)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := SpectrumToChromaticity(line); !errors.Is(err, ErrZeroResponse) {
		t.Errorf("779 nm line error = %v, want ErrZeroResponse", err)
	}
}

func TestLineOutOfRange(t *testing.T) {
	for _, nm := range []float64{379, 900, math.NaN(), math.Inf(1)} {
		if f, err := Line(nm); !errors.Is(err, ErrWavelengthOutOfRange) || f != nil {
			t.Errorf("Line(%v) = %v, %v; want ErrWavelengthOutOfRange", nm, f != nil, err)
		}
	}
}

func TestSpectrumToXYZLinear(t *testing.T) {
	a := SpectrumToXYZ(White)
	double := SpectrumToXYZ(func(float64) float64 { return 2 })
	if !near(double.Y, 2*a.Y, 1e-9) {
		t.Errorf("doubling emittance gave Y = %v, want %v", double.Y, 2*a.Y)
	}
}

func TestBlackBodyChromaticity(t *testing.T) {
	f, _ := BlackBody(4000)
	want, err := SpectrumToChromaticity(f)
	if err != nil {
		t.Fatal(err)
	}
	for range 2 {
		got, err := BlackBodyChromaticity(4000)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("BlackBodyChromaticity(4000) = %v, want %v", got, want)
		}
	}
	if _, err := BlackBodyChromaticity(-1); !errors.Is(err, ErrInvalidTemperature) {
		t.Errorf("negative temperature error = %v", err)
	}
	// Too cold to emit anything representable in the visible band.
	if _, err := BlackBodyChromaticity(1); !errors.Is(err, ErrZeroResponse) {
		t.Errorf("1 K error = %v, want ErrZeroResponse", err)
	}
}
