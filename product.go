package linalg

import "fmt"

// Dot returns the dot product of a and b: the sum over i of a[i]*b[i].
// Returns ErrDimensionMismatch when the dimensions differ.
func Dot[T Number](a, b Vector[T]) (T, error) {
	var sum T
	if len(a.data) != len(b.data) {
		return sum, fmt.Errorf("dot: %w: %d and %d", ErrDimensionMismatch, len(a.data), len(b.data))
	}

	for i := range a.data {
		sum += a.data[i] * b.data[i]
	}

	return sum, nil
}

// Cross returns the right-handed three-dimensional cross product of a
// and b as a new vector. Returns ErrDimensionMismatch when the
// dimensions differ, and ErrUnsupportedDimension when they match but
// are not 3.
func Cross[T Number](a, b Vector[T]) (Vector[T], error) {
	if len(a.data) != len(b.data) {
		return Vector[T]{}, fmt.Errorf("cross: %w: %d and %d", ErrDimensionMismatch, len(a.data), len(b.data))
	}

	// The cross product also exists in seven dimensions; only the
	// three-dimensional case is supported here.
	if len(a.data) != 3 {
		return Vector[T]{}, fmt.Errorf("cross: %w: dimension %d", ErrUnsupportedDimension, len(a.data))
	}

	return Vector[T]{data: []T{
		a.data[1]*b.data[2] - a.data[2]*b.data[1],
		-(a.data[0]*b.data[2] - a.data[2]*b.data[0]),
		a.data[0]*b.data[1] - a.data[1]*b.data[0],
	}}, nil
}
