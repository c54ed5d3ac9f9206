package quadrature

// Trapezoidal is the composite trapezoidal rule
//
//	h * (f(a)/2 + f(x_1) + ... + f(x_{n-1}) + f(b)/2),  x_i = a + i*h, h = (b-a)/n
//
// Error is O(h^2) for smooth integrands.
type Trapezoidal struct{}

// Name returns "trapezoidal".
func (Trapezoidal) Name() string { return NameTrapezoidal }

// Integrate applies the rule with exactly n subintervals.
func (Trapezoidal) Integrate(f Func, a, b float64, n int) (float64, error) {
	if err := checkPartitions(NameTrapezoidal, n); err != nil {
		return 0, err
	}
	h := (b - a) / float64(n)
	result := 0.5 * (f(a) + f(b))
	for i := 1; i < n; i++ {
		result += f(a + float64(i)*h)
	}
	return result * h, nil
}
