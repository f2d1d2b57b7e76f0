package linalg

import "math"

// Norm returns the Euclidean (L2) norm: the square root of the sum of
// squares of all elements. The norm of a dimension-0 vector is 0. For
// integer element types the result is truncated toward zero.
func (v Vector[T]) Norm() T {
	var sum T
	for _, x := range v.data {
		sum += x * x
	}
	return T(math.Sqrt(float64(sum)))
}

// Normalized returns v scaled to unit norm as a new vector.
//
// A zero norm is not guarded: float element types yield Inf or NaN
// elements, integer element types panic with a division-by-zero
// runtime error.
func (v Vector[T]) Normalized() Vector[T] {
	return v.Scale(T(1) / v.Norm())
}

// Normalize scales v to unit norm in place, mutating its elements.
// The zero-norm caveat of Normalized applies.
func (v Vector[T]) Normalize() {
	inv := T(1) / v.Norm()
	for i := range v.data {
		v.data[i] *= inv
	}
}
