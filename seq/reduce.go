package seq

import (
	"iter"
	"math"
	"slices"
)

// Real is the constraint satisfied by the built-in numeric types that the
// reductions operate on. Elements are compared and accumulated by their
// float64 value regardless of concrete representation.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum returns the sum of the numbers in a single full traversal.
func Sum[T Real](numbers iter.Seq[T]) float64 {
	sum := 0.0
	for n := range numbers {
		sum += float64(n)
	}
	return sum
}

// Minimum returns the smallest number in the sequence. The second return is
// false on empty input. Ties keep the earliest-seen value.
func Minimum[T Real](numbers iter.Seq[T]) (T, bool) {
	var minimum T
	found := false
	for n := range numbers {
		if !found || float64(n) < float64(minimum) {
			minimum = n
			found = true
		}
	}
	return minimum, found
}

// Maximum returns the largest number in the sequence. The second return is
// false on empty input. Ties keep the earliest-seen value.
func Maximum[T Real](numbers iter.Seq[T]) (T, bool) {
	var maximum T
	found := false
	for n := range numbers {
		if !found || float64(n) > float64(maximum) {
			maximum = n
			found = true
		}
	}
	return maximum, found
}

// MinimumAndMaximum finds the smallest and largest numbers in one traversal,
// comparing two elements at a time so that each pair costs three comparisons
// instead of four. A trailing unpaired element is compared independently
// against the current minimum and maximum. The final return is false on empty
// input. Ties keep the earliest-seen extremal values, matching Minimum and
// Maximum.
func MinimumAndMaximum[T Real](numbers iter.Seq[T]) (minimum, maximum T, ok bool) {
	for pair := range TwoAtATime(numbers) {
		first := pair.First
		floatFirst := float64(first)

		if !ok {
			minimum, maximum = first, first
			ok = true
		}

		second, present := pair.Second.Get()
		if !present {
			if floatFirst < float64(minimum) {
				minimum = first
			} else if floatFirst > float64(maximum) {
				maximum = first
			}
			continue
		}

		floatSecond := float64(second)
		if floatFirst > floatSecond {
			if floatFirst > float64(maximum) {
				maximum = first
			}
			if floatSecond < float64(minimum) {
				minimum = second
			}
		} else {
			if floatFirst < float64(minimum) {
				minimum = first
			}
			if floatSecond > float64(maximum) {
				maximum = second
			}
		}
	}
	return minimum, maximum, ok
}

// ArithmeticMean returns the mean of the numbers. The second return is false
// on empty input.
func ArithmeticMean[T Real](numbers iter.Seq[T]) (float64, bool) {
	sum := 0.0
	count := 0
	for n := range numbers {
		sum += float64(n)
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// Product returns the product of the numbers. An empty input yields 1.
func Product[T Real](numbers iter.Seq[T]) float64 {
	product := 1.0
	for n := range numbers {
		product *= float64(n)
	}
	return product
}

// GeometricMean returns the "geometric mean" of the numbers; the second
// return is false on empty input.
//
// Note: this returns the plain product of the elements, not its n-th root.
// The behaviour is kept for compatibility with existing callers; avoid it in
// new code and use Product (or take the root yourself) instead.
func GeometricMean[T Real](numbers iter.Seq[T]) (float64, bool) {
	product := 1.0
	count := 0
	for n := range numbers {
		product *= float64(n)
		count++
	}
	if count == 0 {
		return 0, false
	}
	return product, true
}

// SampleStandardDeviation estimates the standard deviation of a population
// given a sample of it. The sequence is traversed twice, so it must be
// restartable. The second return is false on empty input.
//
// Note: this divides by n rather than the usual n-1 for a sample; see the
// PopulationStandardDeviation note. Kept for compatibility.
func SampleStandardDeviation[T Real](numbers iter.Seq[T]) (float64, bool) {
	mean, ok := ArithmeticMean(numbers)
	if !ok {
		return 0, false
	}
	sum := 0.0
	count := 0
	for n := range numbers {
		deviation := float64(n) - mean
		sum += deviation * deviation
		count++
	}
	return math.Sqrt(sum / float64(count)), true
}

// PopulationStandardDeviation calculates the standard deviation of an entire
// population. The sequence is traversed twice, so it must be restartable. The
// second return is false on empty input; a single-element input yields NaN.
//
// Note: this divides by n-1, which is the sample formula, despite the name.
// The divisors of this function and SampleStandardDeviation look swapped, but
// the behaviour is kept as-is for compatibility with existing callers.
func PopulationStandardDeviation[T Real](numbers iter.Seq[T]) (float64, bool) {
	mean, ok := ArithmeticMean(numbers)
	if !ok {
		return 0, false
	}
	sum := 0.0
	count := 0
	for n := range numbers {
		deviation := float64(n) - mean
		sum += deviation * deviation
		count++
	}
	return math.Sqrt(sum / float64(count-1)), true
}

// MapLinearly remaps the values so that their minimum and maximum become
// newMinimum and newMaximum, applying the unique affine map between the old
// and new ranges to every element. If the input is constant the affine map is
// undefined and the values are passed through unchanged. An empty input
// yields an empty slice.
func MapLinearly[T Real](values []T, newMinimum, newMaximum float64) []float64 {
	if len(values) == 0 {
		return []float64{}
	}

	minimum, maximum, _ := MinimumAndMaximum(slices.Values(values))

	mapping := func(x float64) float64 { return x }
	if originalRange := float64(maximum) - float64(minimum); originalRange != 0 {
		factor := (newMaximum - newMinimum) / originalRange
		oldMinimum := float64(minimum)
		mapping = func(x float64) float64 {
			return (x-oldMinimum)*factor + newMinimum
		}
	}

	result := make([]float64, len(values))
	for i, v := range values {
		result[i] = mapping(float64(v))
	}
	return result
}
