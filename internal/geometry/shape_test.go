package geometry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleArea_UsesFixedPi(t *testing.T) {
	assert.Equal(t, 3.14159, Circle{Radius: 1}.Area())
	assert.InDelta(t, 3.14159*4, Circle{Radius: 2}.Area(), 1e-12)
	// math.Pi would give 3.141592653589793
	assert.NotEqual(t, 3.141592653589793, Circle{Radius: 1}.Area())
}

func TestSquareArea(t *testing.T) {
	assert.Equal(t, 1.0, Square{Side: 1}.Area())
	assert.Equal(t, 6.25, Square{Side: 2.5}.Area())
}

func TestAreaIsRepeatable(t *testing.T) {
	c := Circle{Radius: 1.5}
	first := c.Area()
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, c.Area())
	}
}

func TestShapeStrings(t *testing.T) {
	assert.Equal(t, "circle(r=1)", Circle{Radius: 1}.String())
	assert.Equal(t, "square(side=2.5)", Square{Side: 2.5}.String())
}

func TestFromSpec(t *testing.T) {
	s, err := FromSpec("Circle", 2)
	require.NoError(t, err)
	assert.Equal(t, Circle{Radius: 2}, s)

	s, err = FromSpec(" square ", 3)
	require.NoError(t, err)
	assert.Equal(t, Square{Side: 3}, s)
}

func TestFromSpec_Rejects(t *testing.T) {
	cases := []struct {
		name string
		kind string
		size float64
	}{
		{"unknown kind", "hexagon", 1},
		{"zero size", "circle", 0},
		{"negative size", "square", -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromSpec(tc.kind, tc.size)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidShape), "got %v", err)
		})
	}
}
