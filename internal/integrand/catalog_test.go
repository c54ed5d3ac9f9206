package integrand

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oodesign/internal/quadrature"
)

func TestLookup_Square(t *testing.T) {
	in, err := Lookup("square")
	require.NoError(t, err)
	assert.Equal(t, 9.0, in.F(3))

	exact, ok := in.Exact(0, 1)
	require.True(t, ok)
	assert.InDelta(t, 1.0/3, exact, 1e-15)
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("gamma")
	assert.ErrorIs(t, err, ErrUnknownIntegrand)
}

func TestCatalog_AntiderivativesMatchSimpson(t *testing.T) {
	bounds := map[string][2]float64{
		"square":     {0, 1},
		"cube":       {-1, 2},
		"sin":        {0, math.Pi},
		"exp":        {0, 1},
		"sqrt":       {1, 4},
		"reciprocal": {1, 3},
	}
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			in, err := Lookup(name)
			require.NoError(t, err)
			b, ok := bounds[name]
			require.True(t, ok, "no bounds for %s", name)

			exact, ok := in.Exact(b[0], b[1])
			require.True(t, ok)
			got, err := quadrature.Simpson{}.Integrate(in.F, b[0], b[1], 200)
			require.NoError(t, err)
			assert.InDelta(t, exact, got, 1e-7)
		})
	}
}

func TestExact_ReciprocalAcrossPole(t *testing.T) {
	in, err := Lookup("reciprocal")
	require.NoError(t, err)

	for _, b := range [][2]float64{{-1, 1}, {0, 2}, {-3, 0}, {2, -2}} {
		_, ok := in.Exact(b[0], b[1])
		assert.False(t, ok, "bounds %v contain the pole", b)
	}

	exact, ok := in.Exact(-3, -1)
	require.True(t, ok)
	assert.InDelta(t, -math.Log(3), exact, 1e-15)
}

func TestExact_Unknown(t *testing.T) {
	_, ok := Integrand{Name: "x", F: func(x float64) float64 { return x }}.Exact(0, 1)
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	in, err := Resolve("Cube")
	require.NoError(t, err)
	assert.Equal(t, "cube", in.Name)

	in, err = Resolve("expr: 2*x + 1")
	require.NoError(t, err)
	assert.Equal(t, "2*x + 1", in.Name)
	assert.Equal(t, 7.0, in.F(3))
	_, ok := in.Exact(0, 1)
	assert.False(t, ok)

	_, err = Resolve("expr:")
	assert.ErrorIs(t, err, ErrBadExpression)
}
