package quadrature

import (
	"fmt"
	"math"
)

// integral is a definite integral with a known value.
type integral struct {
	Name  string
	A, B  float64
	F     Func
	Value float64
}

func constant(alpha float64) integral {
	return integral{
		Name:  fmt.Sprintf("∫_{-1}^{2} %vdx", alpha),
		A:     -1,
		B:     2,
		F:     func(float64) float64 { return alpha },
		Value: 3 * alpha,
	}
}

func poly(degree int) integral {
	d := float64(degree)
	return integral{
		Name:  fmt.Sprintf("∫_{-1}^{2} x^%vdx", degree),
		A:     -1,
		B:     2,
		F:     func(x float64) float64 { return math.Pow(x, d) },
		Value: (math.Pow(2, d+1) - math.Pow(-1, d+1)) / (d + 1),
	}
}

func sine() integral {
	return integral{
		Name:  "∫_0^1 sin(x)dx",
		A:     0,
		B:     1,
		F:     math.Sin,
		Value: 1 - math.Cos(1),
	}
}

func exponential() integral {
	return integral{
		Name:  "∫_0^2 e^x dx",
		A:     0,
		B:     2,
		F:     math.Exp,
		Value: math.Exp(2) - 1,
	}
}

func square(x float64) float64 { return x * x }
