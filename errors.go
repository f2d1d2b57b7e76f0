package linalg

import "errors"

var (
	ErrDimensionMismatch    = errors.New("linalg: vector dimensions do not match")
	ErrUnsupportedDimension = errors.New("linalg: cross product requires three-dimensional vectors")
	ErrIndexOutOfRange      = errors.New("linalg: vector index out of range")
)
