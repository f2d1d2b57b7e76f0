package linalg

import "math"

// Shared tolerance helper for float comparisons across the test files.
func closeEnough(a, b float64) bool {
	const epsilon = 1e-14
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if a == 0 || b == 0 {
		return diff < epsilon
	}
	return diff/math.Max(math.Abs(a), math.Abs(b)) < epsilon
}
