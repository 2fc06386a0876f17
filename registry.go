package specrend

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
)

// Registry is a catalog of validated color systems keyed by name.
//
// Names are matched case-insensitively, ignoring spaces and punctuation,
// so "EBU (PAL/SECAM)" may be looked up as "ebu-pal-secam".
//
// Thread safety: Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	systems map[string]ColorSystem
	order   []string
	aliases map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		systems: make(map[string]ColorSystem),
		aliases: make(map[string]string),
	}
}

// NewStandardRegistry returns a registry holding the built-in systems.
func NewStandardRegistry() *Registry {
	r := NewRegistry()
	for _, b := range builtins {
		if err := r.register(b.sys, b.aliases...); err != nil {
			panic(err)
		}
	}
	return r
}

var builtins = []struct {
	sys     ColorSystem
	aliases []string
}{
	{NTSC, nil},
	{EBU, []string{"EBU", "PAL", "SECAM"}},
	{SMPTE, nil},
	{HDTV, nil},
	{CIE, []string{"CIE RGB"}},
	{Rec709, []string{"Rec709", "BT709"}},
}

var stdRegistry = NewStandardRegistry()

// DefaultRegistry returns the process-wide registry used by [Lookup] and
// [Systems]. It starts with the built-in systems.
func DefaultRegistry() *Registry {
	return stdRegistry
}

// Lookup finds a system in the default registry.
func Lookup(name string) (ColorSystem, error) {
	return stdRegistry.Lookup(name)
}

// Systems returns the systems of the default registry in registration order.
func Systems() []ColorSystem {
	return stdRegistry.Systems()
}

// key folds a name to its lookup form.
func key(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Register validates sys and adds it under its name and any aliases.
// Invalid systems are rejected here, so conversions never need to check.
func (r *Registry) Register(sys ColorSystem, aliases ...string) error {
	if err := r.register(sys, aliases...); err != nil {
		return err
	}
	Logger().Info("specrend: registered color system",
		"name", sys.Name,
		"white", sys.White,
		"gamma", sys.Gamma.String())
	return nil
}

func (r *Registry) register(sys ColorSystem, aliases ...string) error {
	if err := sys.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(sys.Name)
	if k == "" {
		return fmt.Errorf("%w: name %q has no letters or digits", ErrInvalidSystem, sys.Name)
	}
	names := []string{k}
	for _, a := range aliases {
		if ak := key(a); ak != "" && ak != k {
			names = append(names, ak)
		}
	}
	for _, n := range names {
		if r.taken(n) {
			return fmt.Errorf("%w: %q", ErrDuplicateSystem, n)
		}
	}

	r.systems[k] = sys
	r.order = append(r.order, k)
	for _, n := range names[1:] {
		r.aliases[n] = k
	}
	return nil
}

func (r *Registry) taken(k string) bool {
	if _, ok := r.systems[k]; ok {
		return true
	}
	_, ok := r.aliases[k]
	return ok
}

// Lookup returns the system registered under name or one of its aliases.
func (r *Registry) Lookup(name string) (ColorSystem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k := key(name)
	if target, ok := r.aliases[k]; ok {
		k = target
	}
	sys, ok := r.systems[k]
	if !ok {
		return ColorSystem{}, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
	}
	return sys, nil
}

// Systems returns every registered system in registration order.
func (r *Registry) Systems() []ColorSystem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ColorSystem, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.systems[k])
	}
	return out
}

// Len returns the number of registered systems, not counting aliases.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
