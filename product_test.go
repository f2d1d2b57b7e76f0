package linalg

import (
	"errors"
	"testing"
)

func TestDot(t *testing.T) {
	a := FromSlice([]float64{1, 2, 3})
	b := FromSlice([]float64{4, 5, 6})
	d, err := Dot(a, b)
	if err != nil {
		t.Fatalf("Dot() error: %v", err)
	}
	if d != 32 {
		t.Fatalf("Dot() = %v, want 32", d)
	}
}

func TestDotCommutative(t *testing.T) {
	a := FromSlice([]float64{1.5, -2, 7, 0})
	b := FromSlice([]float64{0.25, 8, -3, 4})
	ab, err := Dot(a, b)
	if err != nil {
		t.Fatalf("Dot() error: %v", err)
	}
	ba, err := Dot(b, a)
	if err != nil {
		t.Fatalf("Dot() error: %v", err)
	}
	if ab != ba {
		t.Fatalf("Dot(a, b) = %v, Dot(b, a) = %v; want equal", ab, ba)
	}
}

func TestDotEmptyVectors(t *testing.T) {
	d, err := Dot(New[float64](0), New[float64](0))
	if err != nil {
		t.Fatalf("Dot() error: %v", err)
	}
	if d != 0 {
		t.Fatalf("Dot() = %v for empty vectors, want 0", d)
	}
}

func TestDotDimensionMismatch(t *testing.T) {
	a := FromSlice([]float64{1, 2})
	b := FromSlice([]float64{1, 2, 3})
	if _, err := Dot(a, b); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("Dot() error = %v, want ErrDimensionMismatch", err)
	}
}

func TestCross(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)
	z, err := Cross(x, y)
	if err != nil {
		t.Fatalf("Cross() error: %v", err)
	}
	want := []float64{0, 0, 1}
	for i, w := range want {
		if got, _ := z.At(i); got != w {
			t.Fatalf("Cross()[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestCrossAntiCommutative(t *testing.T) {
	a := V3(1.5, -2, 3)
	b := V3(4, 0.5, -1)
	ab, err := Cross(a, b)
	if err != nil {
		t.Fatalf("Cross() error: %v", err)
	}
	ba, err := Cross(b, a)
	if err != nil {
		t.Fatalf("Cross() error: %v", err)
	}
	neg := ba.Scale(-1)
	for i := 0; i < 3; i++ {
		x, _ := ab.At(i)
		y, _ := neg.At(i)
		if x != y {
			t.Fatalf("Cross(a,b) and -Cross(b,a) differ at %d: %v vs %v", i, x, y)
		}
	}
}

func TestCrossDimensionMismatch(t *testing.T) {
	a := V3(1, 2, 3)
	b := FromSlice([]float64{1, 2})
	if _, err := Cross(a, b); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("Cross() error = %v, want ErrDimensionMismatch", err)
	}
}

func TestCrossUnsupportedDimension(t *testing.T) {
	a := FromSlice([]float64{1, 2})
	b := FromSlice([]float64{3, 4})
	if _, err := Cross(a, b); !errors.Is(err, ErrUnsupportedDimension) {
		t.Fatalf("Cross() error = %v, want ErrUnsupportedDimension", err)
	}
}

// The dimension-match check comes before the 3-D support check, so a
// 3-D operand against a 2-D operand reports a mismatch, not an
// unsupported dimension.
func TestCrossCheckOrder(t *testing.T) {
	a := V3(1, 2, 3)
	b := FromSlice([]float64{1, 2})
	_, err := Cross(a, b)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("Cross() error = %v, want ErrDimensionMismatch", err)
	}
	if errors.Is(err, ErrUnsupportedDimension) {
		t.Fatalf("Cross() error = %v, must not be ErrUnsupportedDimension", err)
	}
}

func TestCrossInt(t *testing.T) {
	a := FromSlice([]int{1, 0, 0})
	b := FromSlice([]int{0, 1, 0})
	z, err := Cross(a, b)
	if err != nil {
		t.Fatalf("Cross() error: %v", err)
	}
	want := []int{0, 0, 1}
	for i, w := range want {
		if got, _ := z.At(i); got != w {
			t.Fatalf("Cross()[%d] = %v, want %v", i, got, w)
		}
	}
}
