// Package linalg provides a generic mathematical vector type with
// fixed-at-construction dimensionality, elementwise arithmetic, scalar
// multiplication, Euclidean norm and normalization, and dot and cross
// products.
//
// Vector is a plain value: it owns its element storage exclusively and
// provides no internal locking. Concurrent mutation of the same vector
// from multiple goroutines requires external synchronization. Binary
// operations never mutate their operands and return fresh vectors.
//
// Vec3 is the concrete three-dimensional float64 instantiation
// intended for geometric work.
package linalg
