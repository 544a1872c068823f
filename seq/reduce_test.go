package seq_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/Areteos/arete-utilities/seq"
)

func TestSum(t *testing.T) {
	require.Equal(t, 10.0, seq.Sum(slices.Values([]int{1, 2, 3, 4})))
	require.Equal(t, 0.0, seq.Sum(slices.Values([]float64{})))
	require.InDelta(t, 0.6, seq.Sum(slices.Values([]float64{0.1, 0.2, 0.3})), 1e-12)
}

func TestMinimumAndMaximum(t *testing.T) {
	tests := []struct {
		name            string
		input           []float64
		wantMin, wantMax float64
	}{
		{"even length", []float64{3, 1, 4, 1.5}, 1, 4},
		{"odd length", []float64{3, 1, 4, 1.5, 9}, 1, 9},
		{"single element", []float64{7}, 7, 7},
		{"trailing minimum", []float64{5, 2, 8, 0}, 0, 8},
		{"trailing maximum", []float64{5, 2, 8, 100}, 2, 100},
		{"all equal", []float64{2, 2, 2}, 2, 2},
		{"negatives", []float64{-3, -1, -4}, -4, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minimum, maximum, ok := seq.MinimumAndMaximum(slices.Values(tt.input))
			require.True(t, ok)
			require.Equal(t, tt.wantMin, minimum)
			require.Equal(t, tt.wantMax, maximum)

			single, ok := seq.Minimum(slices.Values(tt.input))
			require.True(t, ok)
			require.Equal(t, tt.wantMin, single)

			single, ok = seq.Maximum(slices.Values(tt.input))
			require.True(t, ok)
			require.Equal(t, tt.wantMax, single)
		})
	}
}

func TestMinimumAndMaximum_Empty(t *testing.T) {
	_, _, ok := seq.MinimumAndMaximum(slices.Values([]int{}))
	require.False(t, ok)

	_, ok = seq.Minimum(slices.Values([]int{}))
	require.False(t, ok)

	_, ok = seq.Maximum(slices.Values([]int{}))
	require.False(t, ok)
}

func TestArithmeticMean(t *testing.T) {
	mean, ok := seq.ArithmeticMean(slices.Values([]int{1, 2, 3, 4}))
	require.True(t, ok)
	require.Equal(t, 2.5, mean)

	mean, ok = seq.ArithmeticMean(slices.Values([]float64{-1, 1}))
	require.True(t, ok)
	require.Equal(t, 0.0, mean)

	_, ok = seq.ArithmeticMean(slices.Values([]int{}))
	require.False(t, ok)
}

func TestProduct(t *testing.T) {
	require.Equal(t, 24.0, seq.Product(slices.Values([]int{1, 2, 3, 4})))
	require.Equal(t, 1.0, seq.Product(slices.Values([]int{})))
	require.Equal(t, 0.0, seq.Product(slices.Values([]int{5, 0, 7})))
}

func TestGeometricMean_ReturnsPlainProduct(t *testing.T) {
	got, ok := seq.GeometricMean(slices.Values([]float64{2, 8}))
	require.True(t, ok)
	require.Equal(t, 16.0, got)

	_, ok = seq.GeometricMean(slices.Values([]float64{}))
	require.False(t, ok)
}

// The divisors of the two standard deviation functions are intentionally
// swapped relative to their names; gonum's conventionally named equivalents
// pin down which divisor each one uses.
func TestSampleStandardDeviation_DividesByN(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	got, ok := seq.SampleStandardDeviation(slices.Values(values))
	require.True(t, ok)
	require.InDelta(t, stat.PopStdDev(values, nil), got, 1e-12)
}

func TestPopulationStandardDeviation_DividesByNMinusOne(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	got, ok := seq.PopulationStandardDeviation(slices.Values(values))
	require.True(t, ok)
	require.InDelta(t, stat.StdDev(values, nil), got, 1e-12)
}

func TestStandardDeviation_EdgeCases(t *testing.T) {
	_, ok := seq.SampleStandardDeviation(slices.Values([]float64{}))
	require.False(t, ok)

	got, ok := seq.SampleStandardDeviation(slices.Values([]float64{5}))
	require.True(t, ok)
	require.Equal(t, 0.0, got)

	got, ok = seq.PopulationStandardDeviation(slices.Values([]float64{5}))
	require.True(t, ok)
	require.True(t, math.IsNaN(got))
}

func TestMapLinearly(t *testing.T) {
	require.Equal(t, []float64{0, 0.5, 1}, seq.MapLinearly([]float64{0, 5, 10}, 0, 1))
	require.Equal(t, []float64{100, 50, 0}, seq.MapLinearly([]float64{0, 5, 10}, 100, 0))
	require.Equal(t, []float64{-1, 1}, seq.MapLinearly([]int{3, 7}, -1, 1))
}

func TestMapLinearly_ConstantInputPassesThrough(t *testing.T) {
	require.Equal(t, []float64{4, 4, 4}, seq.MapLinearly([]float64{4, 4, 4}, 0, 1))
}

func TestMapLinearly_Empty(t *testing.T) {
	require.Empty(t, seq.MapLinearly([]float64{}, 0, 1))
}
