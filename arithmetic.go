package linalg

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Add returns the elementwise sum v + o as a new vector.
// Returns ErrDimensionMismatch when the dimensions differ.
func (v Vector[T]) Add(o Vector[T]) (Vector[T], error) {
	if len(v.data) != len(o.data) {
		return Vector[T]{}, fmt.Errorf("add: %w: %d and %d", ErrDimensionMismatch, len(v.data), len(o.data))
	}

	out := make([]T, len(v.data))
	if dst, ok := any(out).([]float64); ok {
		copy(dst, any(v.data).([]float64))
		vecmath.AddBlockInPlace(dst, any(o.data).([]float64))
		return Vector[T]{data: out}, nil
	}

	for i := range v.data {
		out[i] = v.data[i] + o.data[i]
	}

	return Vector[T]{data: out}, nil
}

// Sub returns the elementwise difference v - o as a new vector.
// Returns ErrDimensionMismatch when the dimensions differ.
func (v Vector[T]) Sub(o Vector[T]) (Vector[T], error) {
	if len(v.data) != len(o.data) {
		return Vector[T]{}, fmt.Errorf("sub: %w: %d and %d", ErrDimensionMismatch, len(v.data), len(o.data))
	}

	out := make([]T, len(v.data))
	for i := range v.data {
		out[i] = v.data[i] - o.data[i]
	}

	return Vector[T]{data: out}, nil
}

// Mul returns the Hadamard (elementwise) product v * o as a new vector.
// Returns ErrDimensionMismatch when the dimensions differ.
func (v Vector[T]) Mul(o Vector[T]) (Vector[T], error) {
	if len(v.data) != len(o.data) {
		return Vector[T]{}, fmt.Errorf("mul: %w: %d and %d", ErrDimensionMismatch, len(v.data), len(o.data))
	}

	out := make([]T, len(v.data))
	if dst, ok := any(out).([]float64); ok {
		vecmath.MulBlock(dst, any(v.data).([]float64), any(o.data).([]float64))
		return Vector[T]{data: out}, nil
	}

	for i := range v.data {
		out[i] = v.data[i] * o.data[i]
	}

	return Vector[T]{data: out}, nil
}

// Scale returns v with every element multiplied by k.
// There is no dimension constraint.
func (v Vector[T]) Scale(k T) Vector[T] {
	out := make([]T, len(v.data))
	if dst, ok := any(out).([]float64); ok {
		vecmath.ScaleBlock(dst, any(v.data).([]float64), any(k).(float64))
		return Vector[T]{data: out}
	}

	for i, x := range v.data {
		out[i] = x * k
	}

	return Vector[T]{data: out}
}

// Scale returns k * v, the scalar-on-the-left form of Vector.Scale.
// Both argument orders produce identical results.
func Scale[T Number](k T, v Vector[T]) Vector[T] {
	return v.Scale(k)
}
