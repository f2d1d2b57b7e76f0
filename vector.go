package linalg

import (
	"fmt"
	"strings"
)

// Vector is a dynamically sized mathematical vector over a numeric
// element type. The dimension is fixed at construction; individual
// elements may be mutated through Set. The zero value is a usable
// dimension-0 vector.
type Vector[T Number] struct {
	data []T
}

// New returns a zero-filled vector of the given dimension.
// Negative dimensions are treated as 0.
func New[T Number](dims int) Vector[T] {
	if dims < 0 {
		dims = 0
	}
	return Vector[T]{data: make([]T, dims)}
}

// FromSlice returns a vector whose elements are a copy of values, in
// order. The dimension equals len(values); later mutations of values
// are not visible through the vector.
func FromSlice[T Number](values []T) Vector[T] {
	data := make([]T, len(values))
	copy(data, values)
	return Vector[T]{data: data}
}

// Dims returns the number of elements.
func (v Vector[T]) Dims() int {
	return len(v.data)
}

// At returns the element at index i.
// Returns ErrIndexOutOfRange unless 0 <= i < Dims().
func (v Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, fmt.Errorf("at: %w: index %d, dimension %d", ErrIndexOutOfRange, i, len(v.data))
	}
	return v.data[i], nil
}

// Set stores value at index i.
// Returns ErrIndexOutOfRange unless 0 <= i < Dims().
func (v Vector[T]) Set(i int, value T) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("set: %w: index %d, dimension %d", ErrIndexOutOfRange, i, len(v.data))
	}
	v.data[i] = value
	return nil
}

// Data returns a copy of the elements, in order.
func (v Vector[T]) Data() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// Clone returns a deep copy of the vector.
func (v Vector[T]) Clone() Vector[T] {
	return Vector[T]{data: v.Data()}
}

// String formats the vector for debugging, e.g. "(1, 2, 3)".
func (v Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", x)
	}
	b.WriteByte(')')
	return b.String()
}
