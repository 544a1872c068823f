package seq_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Areteos/arete-utilities/seq"
)

func intRange(start, length int) []int {
	values := make([]int, length)
	for i := range values {
		values[i] = start + i
	}
	return values
}

func TestStitched_TruncatesAtFirstExhaustedTurn(t *testing.T) {
	// Lengths 5, 4, 4 and 9: the cycle breaks when the second source runs
	// out on its fifth turn, after the first source's fifth value has
	// already been drawn.
	a := slices.Values(intRange(0, 5))
	b := slices.Values(intRange(100, 4))
	c := slices.Values(intRange(200, 4))
	d := slices.Values(intRange(300, 9))

	got := slices.Collect(seq.Stitched(a, b, c, d))

	require.Equal(t, []int{
		0, 100, 200, 300,
		1, 101, 201, 301,
		2, 102, 202, 302,
		3, 103, 203, 303,
		4,
	}, got)
}

func TestStitched_EqualLengths(t *testing.T) {
	got := slices.Collect(seq.Stitched(
		slices.Values([]string{"a", "c"}),
		slices.Values([]string{"b", "d"}),
	))
	require.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestStitched_SingleSource(t *testing.T) {
	got := slices.Collect(seq.Stitched(slices.Values([]int{1, 2, 3})))
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestStitched_EmptyFirstSource(t *testing.T) {
	got := slices.Collect(seq.Stitched(
		slices.Values([]int{}),
		slices.Values([]int{1, 2, 3}),
	))
	require.Empty(t, got)
}

func TestStitched_Restartable(t *testing.T) {
	stitched := seq.Stitched(
		slices.Values([]int{1, 3}),
		slices.Values([]int{2, 4}),
	)

	require.Equal(t, []int{1, 2, 3, 4}, slices.Collect(stitched))
	require.Equal(t, []int{1, 2, 3, 4}, slices.Collect(stitched))
}

func TestStitchedCursors_ConsumesInputs(t *testing.T) {
	first := seq.NewCursor(slices.Values([]int{1, 3}))
	second := seq.NewCursor(slices.Values([]int{2, 4}))

	stitched := seq.StitchedCursors(first, second)
	defer stitched.Stop()

	require.Equal(t, []int{1, 2, 3, 4}, slices.Collect(stitched.All()))

	_, ok := stitched.Next()
	require.False(t, ok)
}
