package geometry

import (
	"iter"

	"github.com/Areteos/arete-utilities/optional"
	"github.com/Areteos/arete-utilities/seq"
)

// Gradient returns the gradient of the straight line through two points. The
// plane is Cartesian, so the order of the points does not matter. The second
// return is false when the points share an x coordinate: a vertical line has
// no defined slope, which is an expected outcome rather than an error.
func Gradient(point1, point2 Point) (float64, bool) {
	denominator := point2.X - point1.X
	if denominator == 0 {
		return 0, false
	}
	return (point2.Y - point1.Y) / denominator, true
}

// SequentialGradients returns the gradient between each consecutive pair of
// points, one entry per pair in order. Entries are absent where the pair is
// vertically aligned. Inputs with fewer than two points produce an empty
// slice.
func SequentialGradients(points iter.Seq[Point]) []optional.Value[float64] {
	gradients := make([]optional.Value[float64], 0)
	for pair := range seq.InPairs(points) {
		if gradient, ok := Gradient(pair.First, pair.Second); ok {
			gradients = append(gradients, optional.Of(gradient))
		} else {
			gradients = append(gradients, optional.Empty[float64]())
		}
	}
	return gradients
}
