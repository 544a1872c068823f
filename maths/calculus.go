package maths

import (
	"slices"

	"github.com/Areteos/arete-utilities/seq"
)

// IntegrateApproximately numerically integrates function over the interval
// [lowerBound, upperBound] in the given number of steps, using left-hand
// rectangular slices. Summation stops once the next step would pass
// upperBound - stepSize: a final partial step is dropped rather than clipped,
// so intervals that the step size does not divide evenly are slightly
// undercovered at the upper end.
func IntegrateApproximately(function func(float64) float64, lowerBound, upperBound float64, steps int) float64 {
	stepSize := (upperBound - lowerBound) / float64(steps)
	sum := 0.0
	for x := lowerBound; x <= upperBound-stepSize; x += stepSize {
		sum += function(x) * stepSize
	}
	return sum
}

// FindIntervalMinimumAndMaximum finds the minimum and maximum value, in that
// order, of function over [lowerBound, upperBound], sampled in the given
// number of steps. Both endpoints are always sampled: the upper bound is
// appended unconditionally, even when stepping does not land on it exactly.
//
// Panics if lowerBound is greater than upperBound.
func FindIntervalMinimumAndMaximum(function func(float64) float64, lowerBound, upperBound float64, steps int) (minimum, maximum float64) {
	yValues := make([]float64, 0, steps)
	intervalRange := upperBound - lowerBound
	if intervalRange < 0 {
		panic("maths: interval lower bound greater than interval upper bound")
	}
	if intervalRange > 0 {
		stepSize := intervalRange / float64(steps-1)
		for x := lowerBound; x <= upperBound-stepSize; x += stepSize {
			yValues = append(yValues, function(x))
		}
	}
	yValues = append(yValues, function(upperBound))

	minimum, maximum, _ = seq.MinimumAndMaximum(slices.Values(yValues))
	return minimum, maximum
}

// FindApproximateGradientAtPoint approximates the gradient of function at x
// by central difference: the gradient of the chord between the points delta
// either side of x.
func FindApproximateGradientAtPoint(function func(float64) float64, x, delta float64) float64 {
	return (function(x+delta) - function(x-delta)) / (2 * delta)
}

// FindApproximateDerivative returns a function approximating the derivative
// of the input, evaluated via FindApproximateGradientAtPoint with the given
// delta.
func FindApproximateDerivative(function func(float64) float64, delta float64) func(float64) float64 {
	return func(x float64) float64 {
		return FindApproximateGradientAtPoint(function, x, delta)
	}
}

// FindLocalExtrema brute-force scans function over [lowerBound, upperBound]
// in the given number of steps and returns the locations of its local minima
// and maxima, in that order of return and in domain order within each slice.
// Only locations are returned; callers evaluate the function at them if they
// need the extremal values.
//
// The scan tracks the sign of the discrete gradient between consecutive
// samples. A sign flip from positive to negative records a maximum, negative
// to positive a minimum. Zero-gradient plateaus are buffered while open: when
// a plateau ends, an extremum is recorded at its middle sample only if the
// gradient signs entering and leaving the plateau differ, otherwise the
// plateau is discarded as noise.
func FindLocalExtrema(function func(float64) float64, lowerBound, upperBound float64, steps int) (minima, maxima []float64) {
	stepSize := (upperBound - lowerBound) / float64(steps)

	var previousGradient, previousValue float64
	havePreviousGradient, havePreviousValue := false, false

	minima = make([]float64, 0)
	maxima = make([]float64, 0)

	currentFlat := make([]float64, 0)
	var flatEntryGradient float64
	haveFlatEntryGradient := false

	for x := lowerBound; x <= upperBound-stepSize; x += stepSize {
		value := function(x)
		if havePreviousValue {
			gradient := (value - previousValue) / stepSize

			if havePreviousGradient {
				gradientProduct := gradient * previousGradient
				if gradientProduct < 0 {
					if len(currentFlat) == 0 {
						if previousGradient > 0 {
							maxima = append(maxima, x)
						} else {
							minima = append(minima, x)
						}
					} else {
						if flatEntryGradient*gradient < 0 {
							if previousGradient < 0 {
								maxima = append(maxima, currentFlat[len(currentFlat)/2])
							} else {
								minima = append(minima, currentFlat[len(currentFlat)/2])
							}
						}
						currentFlat = currentFlat[:0]
					}
				} else if gradientProduct == 0 {
					if !haveFlatEntryGradient {
						flatEntryGradient = previousGradient
						haveFlatEntryGradient = true
					}
					if gradient != 0 {
						if len(currentFlat) > 0 && flatEntryGradient*gradient < 0 {
							if previousGradient < 0 {
								maxima = append(maxima, currentFlat[(len(currentFlat)+1)/2-1])
							} else {
								minima = append(minima, currentFlat[(len(currentFlat)+1)/2-1])
							}
						}
						currentFlat = currentFlat[:0]
						haveFlatEntryGradient = false
					} else {
						currentFlat = append(currentFlat, x)
					}
				}
			}

			previousGradient = gradient
			havePreviousGradient = true
		}
		previousValue = value
		havePreviousValue = true
	}
	return minima, maxima
}
