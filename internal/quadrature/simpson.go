package quadrature

import (
	"fmt"
	"math"
)

// Simpson is the composite Simpson's rule
//
//	h/3 * (f(a) + 4f(x_1) + 2f(x_2) + 4f(x_3) + ... + 4f(x_{n-1}) + f(b))
//
// The rule needs an even number of subintervals: an odd n is silently raised
// to n+1, so the result is that of a finer partition than requested. Use
// Partitions to learn the count actually used. Error is O(h^4) for integrands
// with a bounded fourth derivative; cubics are integrated exactly.
type Simpson struct{}

// Name returns "simpson".
func (Simpson) Name() string { return NameSimpson }

// Partitions returns the even subinterval count used for a request of n.
// math.MaxInt cannot be rounded up and is returned unchanged.
func (Simpson) Partitions(n int) int {
	if n%2 != 0 && n < math.MaxInt {
		return n + 1
	}
	return n
}

// Integrate applies the rule with Partitions(n) subintervals.
func (s Simpson) Integrate(f Func, a, b float64, n int) (float64, error) {
	if err := checkPartitions(NameSimpson, n); err != nil {
		return 0, err
	}
	if n == math.MaxInt {
		return 0, fmt.Errorf("%s: %w, %d cannot be rounded up to an even count", NameSimpson, ErrInvalidPartition, n)
	}
	n = s.Partitions(n)
	h := (b - a) / float64(n)
	result := f(a) + f(b)
	for i := 1; i < n; i += 2 {
		result += 4 * f(a+float64(i)*h)
	}
	for i := 2; i < n-1; i += 2 {
		result += 2 * f(a+float64(i)*h)
	}
	return result * h / 3, nil
}
