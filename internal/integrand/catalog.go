// Package integrand provides the functions the demo integrates: a catalogue
// of named built-ins with known antiderivatives, and Go expressions in x
// compiled at run time.
package integrand

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"oodesign/internal/quadrature"
)

// ErrUnknownIntegrand is returned by Lookup for names not in the catalogue.
var ErrUnknownIntegrand = errors.New("unknown integrand")

// ExprPrefix marks an integrand spec as a Go expression rather than a name.
const ExprPrefix = "expr:"

// Integrand is a function to integrate, optionally with a closed-form
// antiderivative.
type Integrand struct {
	Name string
	F    quadrature.Func
	// Antiderivative is nil when no closed form is known.
	Antiderivative func(x float64) float64
	// Diverges reports bounds over which the integral does not exist.
	Diverges func(a, b float64) bool
}

// Exact returns the exact integral over [a, b] when an antiderivative is known
// and the integral converges.
func (in Integrand) Exact(a, b float64) (float64, bool) {
	if in.Antiderivative == nil {
		return 0, false
	}
	if in.Diverges != nil && in.Diverges(a, b) {
		return 0, false
	}
	return in.Antiderivative(b) - in.Antiderivative(a), true
}

var catalog = map[string]Integrand{
	"square": {
		Name:           "square",
		F:              func(x float64) float64 { return x * x },
		Antiderivative: func(x float64) float64 { return x * x * x / 3 },
	},
	"cube": {
		Name:           "cube",
		F:              func(x float64) float64 { return x * x * x },
		Antiderivative: func(x float64) float64 { return x * x * x * x / 4 },
	},
	"sin": {
		Name:           "sin",
		F:              math.Sin,
		Antiderivative: func(x float64) float64 { return -math.Cos(x) },
	},
	"exp": {
		Name:           "exp",
		F:              math.Exp,
		Antiderivative: math.Exp,
	},
	"sqrt": {
		Name:           "sqrt",
		F:              math.Sqrt,
		Antiderivative: func(x float64) float64 { return 2 * x * math.Sqrt(x) / 3 },
	},
	"reciprocal": {
		Name:           "reciprocal",
		F:              func(x float64) float64 { return 1 / x },
		Antiderivative: func(x float64) float64 { return math.Log(math.Abs(x)) },
		Diverges:       func(a, b float64) bool { return a*b <= 0 }, // pole at 0
	},
}

// Lookup returns the built-in integrand called name.
func Lookup(name string) (Integrand, error) {
	in, ok := catalog[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Integrand{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownIntegrand, name, strings.Join(Names(), ", "))
	}
	return in, nil
}

// Names lists the built-in integrands, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve turns a config value into an Integrand. Values starting with
// ExprPrefix are compiled with Compile, anything else is a catalogue name.
func Resolve(spec string) (Integrand, error) {
	if expr, ok := strings.CutPrefix(strings.TrimSpace(spec), ExprPrefix); ok {
		f, err := Compile(expr)
		if err != nil {
			return Integrand{}, err
		}
		return Integrand{Name: strings.TrimSpace(expr), F: f}, nil
	}
	return Lookup(spec)
}
