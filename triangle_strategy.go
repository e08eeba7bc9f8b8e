package planar

import (
	"math"
	"sort"
)

// Triangle is the Strategy for a triangle described by its three side
// lengths. Sides are stored exactly as given, unsorted and unvalidated: the
// triangle inequality is never checked, so a degenerate side combination
// flows straight into the arithmetic.
type Triangle struct {
	side1, side2, side3 float64
}

// NewTriangle returns a Triangle strategy for the given side lengths.
func NewTriangle(side1, side2, side3 float64) Triangle {
	return Triangle{side1: side1, side2: side2, side3: side3}
}

// Sides returns the side lengths in construction order.
func (t Triangle) Sides() (float64, float64, float64) {
	return t.side1, t.side2, t.side3
}

// Area computes the area by Heron's formula. For side combinations that do
// not form a real triangle the radicand can be zero or negative, so the
// result may be 0 or NaN; no guard is applied.
func (t Triangle) Area() float64 {
	p := (t.side1 + t.side2 + t.side3) / 2
	return math.Sqrt(p * (p - t.side1) * (p - t.side2) * (p - t.side3))
}

// IsRightTriangle reports whether the sides satisfy the Pythagorean
// relation: sorted ascending, a² + b² == c² under exact float64 equality.
// There is no epsilon, so sides that are mathematically but not bit-exactly
// Pythagorean report false. A non-positive shortest side can never form a
// right triangle.
func (t Triangle) IsRightTriangle() bool {
	s := []float64{t.side1, t.side2, t.side3}
	sort.Float64s(s)
	if s[0] <= 0 {
		return false
	}
	return s[0]*s[0]+s[1]*s[1] == s[2]*s[2]
}
