package maths

// GetLinearMappingFunction returns the unique affine map that takes
// originalValue1 to newValue1 and originalValue2 to newValue2. If the new
// values are equal the map is the constant function at that value. The second
// return is false when the original values are equal: no such map exists.
func GetLinearMappingFunction(originalValue1, originalValue2, newValue1, newValue2 float64) (func(float64) float64, bool) {
	originalRange := originalValue2 - originalValue1
	if originalRange == 0 {
		return nil, false
	}
	normalisationFactor := (newValue2 - newValue1) / originalRange
	return func(x float64) float64 {
		return (x-originalValue1)*normalisationFactor + newValue1
	}, true
}

// InterpolateLinearly infers the value at queryLocation from two known
// (location, value) pairs by linear interpolation. Query locations outside
// [location1, location2] extrapolate along the same line.
//
// Panics if the two locations are equal: they define no line.
func InterpolateLinearly(location1, location2, value1, value2, queryLocation float64) float64 {
	if location1 == location2 {
		panic("maths: interpolation locations cannot be equal")
	}
	return (queryLocation-location1)*(value2-value1)/(location2-location1) + value1
}
