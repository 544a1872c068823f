package maths

import (
	"math"

	"github.com/Areteos/arete-utilities/seq"
)

// halfUp rounds to the nearest integer, halves going up. Note this differs
// from math.Round for negative halves: halfUp(-2.5) is -2.
func halfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Round rounds the input to the given number of decimal places, halves going
// up. Large magnitudes and extreme decimalPlaces values are at the mercy of
// float64: there is no special guarding beyond the natural floating-point
// domain.
func Round(input float64, decimalPlaces int) float64 {
	tens := math.Pow(10, float64(decimalPlaces))
	return halfUp(input*tens) / tens
}

// RoundToSignificantFigures rounds the input to the given number of decimal
// significant figures. For example 0.003467 to 2 significant figures is
// 0.0035. An input of 0 or a non-positive figure count has no meaningful
// order of magnitude and produces NaN; this is not specially guarded.
func RoundToSignificantFigures(input float64, significantFigures int) float64 {
	magnitude := math.Pow(10, math.Floor(math.Log10(math.Abs(input))))
	correction := math.Pow(10, float64(significantFigures-1))
	return halfUp(input*correction/magnitude) * magnitude / correction
}

// IsWithin reports whether x is strictly less than margin away from target.
func IsWithin[T seq.Real](target, margin, x T) bool {
	return math.Abs(float64(target)-float64(x)) < float64(margin)
}

// FindClosestMultiple returns the multiple of base closest to target, i.e.
// base times the nearest integer to target/base.
func FindClosestMultiple(base, target float64) float64 {
	return base * halfUp(target/base)
}
