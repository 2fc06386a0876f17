package specrend

import (
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Color systems can be described in TOML:
//
//	[[system]]
//	name    = "Adobe RGB (1998)"
//	aliases = ["adobe"]
//	red     = [0.64, 0.33]
//	green   = [0.21, 0.71]
//	blue    = [0.15, 0.06]
//	white   = "D65"          # or [0.3127, 0.3291]
//	gamma   = 2.2            # or "rec709"
//
// Named white points are "C", "D65" and "E".

type systemFile struct {
	System []systemEntry `toml:"system"`
}

type systemEntry struct {
	Name    string   `toml:"name"`
	Aliases []string `toml:"aliases,omitempty"`
	Red     any      `toml:"red"`
	Green   any      `toml:"green"`
	Blue    any      `toml:"blue"`
	White   any      `toml:"white"`
	Gamma   any      `toml:"gamma"`
}

var namedWhites = map[string]XY{
	"c":   IlluminantC,
	"d65": IlluminantD65,
	"e":   IlluminantE,
}

// SystemSpec is a color system as read from a configuration file,
// together with the aliases it should be registered under.
type SystemSpec struct {
	ColorSystem
	Aliases []string
}

// LoadSystems parses color systems from TOML and validates each one.
func LoadSystems(r io.Reader) ([]SystemSpec, error) {
	var f systemFile
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("specrend: config: %w", err)
	}

	out := make([]SystemSpec, 0, len(f.System))
	for i, e := range f.System {
		sys, err := e.colorSystem()
		if err != nil {
			return nil, fmt.Errorf("specrend: config: system %d (%q): %w", i, e.Name, err)
		}
		if err := sys.Validate(); err != nil {
			return nil, fmt.Errorf("specrend: config: system %d: %w", i, err)
		}
		out = append(out, SystemSpec{ColorSystem: sys, Aliases: e.Aliases})
	}
	return out, nil
}

// LoadTOML reads color systems from r and registers them. Every system is
// validated before any is registered.
func (r *Registry) LoadTOML(in io.Reader) ([]ColorSystem, error) {
	specs, err := LoadSystems(in)
	if err != nil {
		return nil, err
	}
	out := make([]ColorSystem, 0, len(specs))
	for _, s := range specs {
		if err := r.Register(s.ColorSystem, s.Aliases...); err != nil {
			return out, err
		}
		out = append(out, s.ColorSystem)
	}
	return out, nil
}

// WriteSystems encodes systems as TOML in the format read by LoadSystems.
func WriteSystems(w io.Writer, systems ...ColorSystem) error {
	f := systemFile{System: make([]systemEntry, 0, len(systems))}
	for _, s := range systems {
		e := systemEntry{
			Name:  s.Name,
			Red:   []float64{s.Red.X, s.Red.Y},
			Green: []float64{s.Green.X, s.Green.Y},
			Blue:  []float64{s.Blue.X, s.Blue.Y},
			White: []float64{s.White.X, s.White.Y},
			Gamma: s.Gamma.String(),
		}
		if s.Gamma != GammaRec709 {
			e.Gamma = float64(s.Gamma)
		}
		f.System = append(f.System, e)
	}
	return toml.NewEncoder(w).Encode(f)
}

func (e systemEntry) colorSystem() (ColorSystem, error) {
	sys := ColorSystem{Name: e.Name}
	var err error
	if sys.Red, err = pair("red", e.Red); err != nil {
		return sys, err
	}
	if sys.Green, err = pair("green", e.Green); err != nil {
		return sys, err
	}
	if sys.Blue, err = pair("blue", e.Blue); err != nil {
		return sys, err
	}
	if name, ok := e.White.(string); ok {
		w, found := namedWhites[strings.ToLower(name)]
		if !found {
			return sys, fmt.Errorf("%w: unknown white point %q", ErrInvalidSystem, name)
		}
		sys.White = w
	} else if sys.White, err = pair("white", e.White); err != nil {
		return sys, err
	}
	sys.Gamma, err = gamma(e.Gamma)
	return sys, err
}

func pair(field string, v any) (XY, error) {
	a, ok := v.([]any)
	if !ok || len(a) != 2 {
		return XY{}, fmt.Errorf("%w: %s must be an [x, y] pair", ErrInvalidSystem, field)
	}
	x, okx := number(a[0])
	y, oky := number(a[1])
	if !okx || !oky {
		return XY{}, fmt.Errorf("%w: %s must hold numbers", ErrInvalidSystem, field)
	}
	return XY{X: x, Y: y}, nil
}

func gamma(v any) (Gamma, error) {
	switch g := v.(type) {
	case nil:
		return GammaRec709, nil
	case string:
		if key(g) == "rec709" {
			return GammaRec709, nil
		}
		return 0, fmt.Errorf("%w: unknown gamma %q", ErrInvalidSystem, g)
	}
	n, ok := number(v)
	if !ok || n <= 0 {
		return 0, fmt.Errorf("%w: gamma must be \"rec709\" or a positive number", ErrInvalidSystem)
	}
	return Gamma(n), nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	}
	return 0, false
}
