package mat

import "fmt"

// Vector is a dense vector of T. The zero value is an empty vector ready for
// Resize.
type Vector[T Scalar] struct {
	data []T
}

// NewVector creates a zero-initialized vector of length n.
func NewVector[T Scalar](n int) *Vector[T] {
	return &Vector[T]{data: make([]T, n)}
}

// VectorFromSlice creates a vector holding a copy of s.
func VectorFromSlice[T Scalar](s []T) *Vector[T] {
	v := NewVector[T](len(s))
	copy(v.data, s)
	return v
}

// Len returns the element count.
func (v *Vector[T]) Len() int { return len(v.data) }

// At returns the element at index i.
func (v *Vector[T]) At(i int) T {
	if uint(i) >= uint(len(v.data)) {
		panic(fmt.Sprintf("mat: index %d out of range for vector of length %d", i, len(v.data)))
	}
	return v.data[i]
}

// Set stores x at index i.
func (v *Vector[T]) Set(i int, x T) {
	if uint(i) >= uint(len(v.data)) {
		panic(fmt.Sprintf("mat: index %d out of range for vector of length %d", i, len(v.data)))
	}
	v.data[i] = x
}

// Data returns the backing slice.
func (v *Vector[T]) Data() []T { return v.data }

// Resize sets the length to n, reusing the backing storage when its capacity
// allows. Contents are unspecified afterwards.
func (v *Vector[T]) Resize(n int) {
	if cap(v.data) >= n {
		v.data = v.data[:n]
	} else {
		v.data = make([]T, n)
	}
}

// Clone returns a deep copy.
func (v *Vector[T]) Clone() *Vector[T] {
	return VectorFromSlice(v.data)
}
