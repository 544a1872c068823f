package maths

import "math/rand/v2"

// GeneratePoints pseudorandomly draws the desired number of x locations from
// [minimumX, maximumX] so that their frequency follows the given probability
// density, by rejection sampling: a uniform candidate x and a uniform
// acceptance threshold in [0, maximumY) are drawn, and the candidate is kept
// when the density at x exceeds the threshold.
//
// The caller must ensure maximumY is at least the supremum of the density
// over the domain, or sampling will be biased; this contract is not checked.
// If the density is nowhere positive over the domain, no candidate is ever
// accepted and the call never returns.
func GeneratePoints(probabilityDistribution func(float64) float64, minimumX, maximumX, maximumY float64, number int) []float64 {
	domainRange := maximumX - minimumX

	points := make([]float64, 0, number)
	for len(points) < number {
		point := rand.Float64()*domainRange + minimumX
		probability := probabilityDistribution(point)
		if rand.Float64()*maximumY < probability {
			points = append(points, point)
		}
	}
	return points
}
