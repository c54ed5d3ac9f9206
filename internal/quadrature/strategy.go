// Package quadrature approximates definite integrals of single-variable
// functions with composite quadrature rules. The rule is a Strategy and can be
// swapped at run time on an Integrator.
package quadrature

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPartition is returned when the subinterval count is not positive.
	ErrInvalidPartition = errors.New("partition count must be positive")
	// ErrNoStrategy is returned when an Integrator is given a nil strategy.
	ErrNoStrategy = errors.New("no integration strategy")
	// ErrUnknownStrategy is returned by Lookup for unregistered names.
	ErrUnknownStrategy = errors.New("unknown integration strategy")
)

// Func is a real-valued function of one real variable.
type Func func(x float64) float64

// Strategy integrates f over [a, b] using n subintervals.
//
// Implementations are stateless: the same arguments always give the same
// result. Bounds are not validated; a > b yields the signed result of the
// reversed orientation and a == b yields 0.
type Strategy interface {
	Name() string
	Integrate(f Func, a, b float64, n int) (float64, error)
}

// Partitioner is implemented by strategies that may use a different number
// of subintervals than requested.
type Partitioner interface {
	Partitions(n int) int
}

// EffectivePartitions reports how many subintervals s really uses for a
// request of n.
func EffectivePartitions(s Strategy, n int) int {
	if p, ok := s.(Partitioner); ok {
		return p.Partitions(n)
	}
	return n
}

func checkPartitions(name string, n int) error {
	if n <= 0 {
		return fmt.Errorf("%s: %w, got %d", name, ErrInvalidPartition, n)
	}
	return nil
}
