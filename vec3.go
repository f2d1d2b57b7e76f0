package linalg

// Vec3 is the concrete three-dimensional double-precision vector used
// for geometric work.
type Vec3 = Vector[float64]

// V3 returns the Vec3 (x, y, z).
func V3(x, y, z float64) Vec3 {
	return Vector[float64]{data: []float64{x, y, z}}
}
