package seq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Areteos/arete-utilities/seq"
)

func TestSortSimultaneously(t *testing.T) {
	values := []int{3, 1, 2}
	companions := []string{"c", "a", "b"}

	sortedValues, sortedCompanions := seq.SortSimultaneously(values, companions)

	require.Equal(t, []int{1, 2, 3}, sortedValues)
	require.Equal(t, []string{"a", "b", "c"}, sortedCompanions)

	// Inputs untouched.
	require.Equal(t, []int{3, 1, 2}, values)
	require.Equal(t, []string{"c", "a", "b"}, companions)
}

func TestSortSimultaneously_StableOnTies(t *testing.T) {
	values := []int{2, 1, 2, 1}
	companions := []string{"first2", "first1", "second2", "second1"}

	_, sortedCompanions := seq.SortSimultaneously(values, companions)

	require.Equal(t, []string{"first1", "second1", "first2", "second2"}, sortedCompanions)
}

func TestSortSimultaneously_Empty(t *testing.T) {
	sortedValues, sortedCompanions := seq.SortSimultaneously([]int{}, []string{})
	require.Empty(t, sortedValues)
	require.Empty(t, sortedCompanions)
}

func TestSortSimultaneously_PanicsOnMismatchedLengths(t *testing.T) {
	require.Panics(t, func() {
		seq.SortSimultaneously([]int{1, 2}, []string{"a"})
	})
}
