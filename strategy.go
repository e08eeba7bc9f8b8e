package planar

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports an unrecognized shape type or a parameter list
// whose length does not match the shape's arity. Test with errors.Is.
var ErrInvalidArgument = errors.New("invalid shape type or parameters")

// Strategy computes properties of a single 2D shape. Implementations are
// immutable after construction; both methods are pure.
type Strategy interface {
	// Area returns the geometric area of the shape.
	Area() float64

	// IsRightTriangle reports whether the shape is a right triangle.
	// Non-triangle shapes always report false.
	IsRightTriangle() bool
}

// Shape type identifiers accepted by New. Matching is exact and
// case-sensitive.
const (
	ShapeCircle   = "circle"
	ShapeTriangle = "triangle"
)

// New constructs the Strategy for the given shape type.
//
// "circle" takes exactly one parameter, the radius. "triangle" takes exactly
// three, the side lengths. Any other shape type, or a wrong parameter count,
// fails with an error wrapping [ErrInvalidArgument]. Parameter values
// themselves are never checked: a negative radius or an impossible triangle
// constructs fine and produces whatever the arithmetic produces.
func New(shape string, params ...float64) (Strategy, error) {
	switch shape {
	case ShapeCircle:
		if len(params) != 1 {
			return nil, fmt.Errorf("planar: create %s strategy with %d parameter(s): %w",
				shape, len(params), ErrInvalidArgument)
		}
		return NewCircle(params[0]), nil
	case ShapeTriangle:
		if len(params) != 3 {
			return nil, fmt.Errorf("planar: create %s strategy with %d parameter(s): %w",
				shape, len(params), ErrInvalidArgument)
		}
		return NewTriangle(params[0], params[1], params[2]), nil
	default:
		return nil, fmt.Errorf("planar: create strategy %q: %w", shape, ErrInvalidArgument)
	}
}
