// Package planar computes the area of simple 2D shapes and classifies right
// triangles behind a small strategy abstraction.
//
// # Strategies
//
// A [Strategy] is an immutable calculator for one shape, selected at runtime
// by a shape-type identifier:
//
//   - [Circle] — area of a circle from its radius.
//   - [Triangle] — area of a triangle from its three side lengths via Heron's
//     formula, plus a right-triangle check.
//
// # Usage
//
// Construct a strategy through the factory and query it:
//
//	s, err := planar.New("triangle", 3, 4, 5)
//	if err != nil { ... }
//	area := s.Area()             // 6
//	right := s.IsRightTriangle() // true
//
// The factory validates only shape-type identity and parameter arity: an
// unknown shape or a wrong parameter count fails with an error wrapping
// [ErrInvalidArgument]. Parameter values are never validated — a negative
// radius or a degenerate triangle is accepted and evaluated arithmetically,
// which may yield NaN or zero.
//
// # Concurrency
//
// Strategies are plain immutable values with no shared state; a single
// instance is safe for concurrent use without synchronization.
package planar
