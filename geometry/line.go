package geometry

import "math"

// Line is an infinite straight line in the plane. It is a closed union: the
// only implementations are Diagonal and Vertical, and consumers may type
// switch over exactly those two.
type Line interface {
	// IntersectionWith finds the point where this line crosses other. The
	// second return is false when no single such point exists (parallel
	// diagonals, or two verticals).
	IntersectionWith(other Line) (Point, bool)
	// YValueAt returns the line's y value at the given x. The second return
	// is false for vertical lines.
	YValueAt(x float64) (float64, bool)
	// XValueAt returns the line's x value at the given y. The second return
	// is false for horizontal lines.
	XValueAt(y float64) (float64, bool)
	// Contains reports whether the point lies exactly on the line.
	Contains(point Point) bool
	// DistanceTo returns the perpendicular distance from the line to the
	// point.
	DistanceTo(point Point) float64

	isLine()
}

// FromPoints returns the line through both of the given points: a Vertical if
// they share an x coordinate, a Diagonal otherwise.
func FromPoints(point1, point2 Point) Line {
	gradient, ok := Gradient(point1, point2)
	if !ok {
		return Vertical{X: point1.X}
	}
	return Diagonal{
		Gradient:  gradient,
		Intercept: point1.Y - gradient*point1.X,
	}
}

// Diagonal is a non-vertical line y = Gradient*x + Intercept.
type Diagonal struct {
	Gradient, Intercept float64
}

func (d Diagonal) isLine() {}

// IntersectionWith implements Line. Against another Diagonal the second
// return is false when the lines are parallel; against a Vertical the
// intersection always exists.
func (d Diagonal) IntersectionWith(other Line) (Point, bool) {
	switch o := other.(type) {
	case Vertical:
		y, _ := d.YValueAt(o.X)
		return Point{X: o.X, Y: y}, true
	case Diagonal:
		relativeGradient := d.Gradient - o.Gradient
		if relativeGradient == 0 {
			return Point{}, false
		}
		x := (o.Intercept - d.Intercept) / relativeGradient
		y, _ := d.YValueAt(x)
		return Point{X: x, Y: y}, true
	}
	return Point{}, false
}

// YValueAt implements Line; always present for a diagonal.
func (d Diagonal) YValueAt(x float64) (float64, bool) {
	return x*d.Gradient + d.Intercept, true
}

// XValueAt implements Line; absent when the line is horizontal.
func (d Diagonal) XValueAt(y float64) (float64, bool) {
	if d.Gradient == 0 {
		return 0, false
	}
	return (y - d.Intercept) / d.Gradient, true
}

// Contains implements Line.
func (d Diagonal) Contains(point Point) bool {
	return point.X*d.Gradient+d.Intercept == point.Y
}

// DistanceTo implements Line.
func (d Diagonal) DistanceTo(point Point) float64 {
	if d.Gradient == 0 {
		return math.Abs(point.Y - d.Intercept)
	}
	inverseGradient := 1 / d.Gradient
	return 1 / (d.Gradient + inverseGradient) * math.Sqrt(
		math.Pow(point.Y-d.Intercept-d.Gradient*point.X, 2)+
			math.Pow(point.X+d.Intercept*inverseGradient-inverseGradient*point.Y, 2))
}

// RunsBelow reports whether the line passes below the given point.
func (d Diagonal) RunsBelow(point Point) bool {
	y, _ := d.YValueAt(point.X)
	return point.Y > y
}

// RunsAbove reports whether the line passes above the given point.
func (d Diagonal) RunsAbove(point Point) bool {
	y, _ := d.YValueAt(point.X)
	return point.Y < y
}

// Vertical is the line x = X.
type Vertical struct {
	X float64
}

func (v Vertical) isLine() {}

// IntersectionWith implements Line. A vertical line meets any diagonal in
// exactly one point and never meets another vertical.
func (v Vertical) IntersectionWith(other Line) (Point, bool) {
	if o, ok := other.(Diagonal); ok {
		return o.IntersectionWith(v)
	}
	return Point{}, false
}

// YValueAt implements Line; a vertical line has no single y at any x.
func (v Vertical) YValueAt(x float64) (float64, bool) {
	return 0, false
}

// XValueAt implements Line; always present, and independent of y.
func (v Vertical) XValueAt(y float64) (float64, bool) {
	return v.X, true
}

// Contains implements Line.
func (v Vertical) Contains(point Point) bool {
	return point.X == v.X
}

// DistanceTo implements Line.
func (v Vertical) DistanceTo(point Point) float64 {
	return math.Abs(v.X - point.X)
}
