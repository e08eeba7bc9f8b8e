package planar

import "math"

// Circle is the Strategy for a circle with a fixed radius. The radius is
// stored verbatim; a negative radius is not rejected and simply yields the
// mathematical π·r².
type Circle struct {
	radius float64
}

// NewCircle returns a Circle strategy for the given radius.
func NewCircle(radius float64) Circle {
	return Circle{radius: radius}
}

// Radius returns the radius the circle was constructed with.
func (c Circle) Radius() float64 { return c.radius }

// Area returns π·r².
func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// IsRightTriangle always reports false: a circle is not a triangle.
func (c Circle) IsRightTriangle() bool { return false }
