package quadrature

import (
	"fmt"
	"sort"
	"strings"
)

// Registered strategy names.
const (
	NameTrapezoidal = "trapezoidal"
	NameSimpson     = "simpson"
)

var registry = map[string]Strategy{
	NameTrapezoidal: Trapezoidal{},
	NameSimpson:     Simpson{},
}

// Lookup returns the strategy registered under name, ignoring case.
func Lookup(name string) (Strategy, error) {
	s, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
	}
	return s, nil
}

// LookupAll resolves every name in order, failing on the first unknown one.
func LookupAll(names []string) ([]Strategy, error) {
	out := make([]Strategy, 0, len(names))
	for _, name := range names {
		s, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Names returns the registered strategy names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
