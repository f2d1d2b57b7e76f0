package linalg

// Number constrains the element types a Vector can hold. Arithmetic
// operations require only addition, subtraction and multiplication;
// Norm additionally converts through float64 for the square root.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
