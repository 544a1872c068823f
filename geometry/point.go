// Package geometry provides immutable 2D primitives: points, lines in the
// plane, and gradient helpers over sequences of points.
package geometry

import "fmt"

// Point is an immutable point in the Cartesian plane.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Add returns the point translated by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Subtract returns the point translated by the negation of other.
func (p Point) Subtract(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// GradientTo returns the gradient from p to other; see Gradient.
func (p Point) GradientTo(other Point) (float64, bool) {
	return Gradient(p, other)
}
