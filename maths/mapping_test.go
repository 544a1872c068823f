package maths_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Areteos/arete-utilities/maths"
)

func TestGetLinearMappingFunction(t *testing.T) {
	mapping, ok := maths.GetLinearMappingFunction(0, 10, 0, 1)
	require.True(t, ok)
	require.InDelta(t, 0.0, mapping(0), 1e-12)
	require.InDelta(t, 0.5, mapping(5), 1e-12)
	require.InDelta(t, 1.0, mapping(10), 1e-12)

	// Points outside the original pair follow the same line.
	require.InDelta(t, 2.0, mapping(20), 1e-12)
	require.InDelta(t, -1.0, mapping(-10), 1e-12)
}

func TestGetLinearMappingFunction_Inverting(t *testing.T) {
	mapping, ok := maths.GetLinearMappingFunction(0, 10, 100, 0)
	require.True(t, ok)
	require.InDelta(t, 100.0, mapping(0), 1e-12)
	require.InDelta(t, 30.0, mapping(7), 1e-12)
}

func TestGetLinearMappingFunction_ConstantTarget(t *testing.T) {
	mapping, ok := maths.GetLinearMappingFunction(0, 10, 7, 7)
	require.True(t, ok)
	require.Equal(t, 7.0, mapping(3))
	require.Equal(t, 7.0, mapping(-100))
}

func TestGetLinearMappingFunction_EqualOriginalsHaveNoMapping(t *testing.T) {
	_, ok := maths.GetLinearMappingFunction(4, 4, 0, 1)
	require.False(t, ok)
}

func TestInterpolateLinearly(t *testing.T) {
	require.Equal(t, 50.0, maths.InterpolateLinearly(0, 10, 0, 100, 5))
	require.Equal(t, 200.0, maths.InterpolateLinearly(0, 10, 0, 100, 20))
	require.Equal(t, 50.0, maths.InterpolateLinearly(10, 0, 100, 0, 5))
	require.Equal(t, 42.0, maths.InterpolateLinearly(1, 2, 42, 42, 1.5))
}

func TestInterpolateLinearly_PanicsOnEqualLocations(t *testing.T) {
	require.Panics(t, func() {
		maths.InterpolateLinearly(3, 3, 0, 1, 5)
	})
}
