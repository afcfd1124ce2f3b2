package mat

import "fmt"

// Matrix is a dense row-major matrix of T. The zero value is an empty matrix
// ready for Resize.
type Matrix[T Scalar] struct {
	rows, cols int
	data       []T
}

// NewMatrix creates a zero-initialized rows×cols matrix.
func NewMatrix[T Scalar](rows, cols int) *Matrix[T] {
	return &Matrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}
}

// MatrixFromRows creates a matrix from row slices. All rows must have the
// same length.
func MatrixFromRows[T Scalar](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return &Matrix[T]{}, nil
	}
	cols := len(rows[0])
	m := NewMatrix[T](len(rows), cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(r), cols)
		}
		copy(m.data[i*cols:(i+1)*cols], r)
	}
	return m, nil
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.cols }

// At returns the element at (i, j).
func (m *Matrix[T]) At(i, j int) T {
	if uint(i) >= uint(m.rows) || uint(j) >= uint(m.cols) {
		panic(fmt.Sprintf("mat: index (%d, %d) out of range for %d×%d matrix", i, j, m.rows, m.cols))
	}
	return m.data[i*m.cols+j]
}

// Set stores v at (i, j).
func (m *Matrix[T]) Set(i, j int, v T) {
	if uint(i) >= uint(m.rows) || uint(j) >= uint(m.cols) {
		panic(fmt.Sprintf("mat: index (%d, %d) out of range for %d×%d matrix", i, j, m.rows, m.cols))
	}
	m.data[i*m.cols+j] = v
}

// Data returns the flat row-major backing slice.
func (m *Matrix[T]) Data() []T { return m.data }

// Resize reshapes the matrix to rows×cols, reusing the backing storage when
// its capacity allows. Contents are unspecified afterwards; callers treat
// resized matrices as scratch to be overwritten.
func (m *Matrix[T]) Resize(rows, cols int) {
	n := rows * cols
	if cap(m.data) >= n {
		m.data = m.data[:n]
	} else {
		m.data = make([]T, n)
	}
	m.rows, m.cols = rows, cols
}

// Clone returns a deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	c := NewMatrix[T](m.rows, m.cols)
	copy(c.data, m.data)
	return c
}
