package geometry

// AreaCalculator sums the areas of an ordered list of shapes. The slice is
// shared with the caller and never modified.
type AreaCalculator struct {
	shapes []Shape
}

// NewAreaCalculator creates a calculator over shapes.
func NewAreaCalculator(shapes ...Shape) *AreaCalculator {
	return &AreaCalculator{shapes: shapes}
}

// Shapes returns the shapes the calculator was built with.
func (c *AreaCalculator) Shapes() []Shape {
	return c.shapes
}

// TotalArea returns the sum of every shape's area, in order. An empty
// calculator returns 0.
func (c *AreaCalculator) TotalArea() float64 {
	total := 0.0
	for _, s := range c.shapes {
		total += s.Area()
	}
	return total
}
