// Package geometry computes areas of simple plane shapes through a single
// polymorphic Area contract.
package geometry

import (
	"errors"
	"fmt"
	"strings"
)

// Pi is the fixed approximation used for circle areas. Results must match the
// reference output (Circle{1}.Area() == 3.14159), so math.Pi is not used.
const Pi = 3.14159

// Shape kinds accepted by FromSpec.
const (
	KindCircle = "circle"
	KindSquare = "square"
)

// ErrInvalidShape is returned by FromSpec for unknown kinds and non-positive sizes.
var ErrInvalidShape = errors.New("invalid shape")

// Shape is anything with an area.
type Shape interface {
	Area() float64
}

// Circle is a circle of the given radius.
type Circle struct {
	Radius float64
}

// Area returns Pi * r * r.
func (c Circle) Area() float64 {
	return Pi * c.Radius * c.Radius
}

func (c Circle) String() string {
	return fmt.Sprintf("circle(r=%g)", c.Radius)
}

// Square is a square with the given side length.
type Square struct {
	Side float64
}

// Area returns side * side.
func (s Square) Area() float64 {
	return s.Side * s.Side
}

func (s Square) String() string {
	return fmt.Sprintf("square(side=%g)", s.Side)
}

// FromSpec builds a shape from a kind name and its single size parameter
// (radius for circles, side for squares). Kind matching ignores case.
func FromSpec(kind string, size float64) (Shape, error) {
	if !(size > 0) {
		return nil, fmt.Errorf("%w: %s size must be > 0, got %g", ErrInvalidShape, kind, size)
	}
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindCircle:
		return Circle{Radius: size}, nil
	case KindSquare:
		return Square{Side: size}, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidShape, kind)
	}
}
