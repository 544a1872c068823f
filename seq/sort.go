package seq

import (
	"cmp"
	"slices"
)

// SortSimultaneously sorts two equal-length slices together, using the
// natural ordering of values to arrange both: each companion is treated as
// occupying the same position as the value at the corresponding index. The
// sort is stable and the inputs are left untouched. Generally zipping the two
// slices and sorting the pairs is the more convenient option; this exists for
// callers that need the slices kept separate.
//
// Panics if the slices have different lengths.
func SortSimultaneously[T cmp.Ordered, E any](values []T, companions []E) ([]T, []E) {
	if len(values) != len(companions) {
		panic("seq: SortSimultaneously on slices of mismatched lengths")
	}

	indices := make([]int, len(values))
	for i := range indices {
		indices[i] = i
	}
	slices.SortStableFunc(indices, func(a, b int) int {
		return cmp.Compare(values[a], values[b])
	})

	sortedValues := make([]T, len(values))
	sortedCompanions := make([]E, len(companions))
	for position, index := range indices {
		sortedValues[position] = values[index]
		sortedCompanions[position] = companions[index]
	}
	return sortedValues, sortedCompanions
}
