package lsq

import (
	"github.com/voxfit/voxfit/internal/cholesky"
	"github.com/voxfit/voxfit/internal/mat"
)

// PseudoInverseTransposed computes the Moore–Penrose pseudo-inverse of M
// given its conjugate transpose mt = Mᴴ, writing the result into dst
// (resized to the shape of mt). work is overwritten with whichever Gram
// matrix is smaller (mt·mtᴴ when mt has fewer rows than columns, mtᴴ·mt
// otherwise), which is Cholesky-factored and fully inverted before the final
// multiply. Both branches compute the same inverse; the dispatch only picks
// the cheaper factorization. dst, mt and work must not alias each other.
//
// Fails with cholesky.ErrNotPositiveDefinite when the chosen Gram matrix is
// singular, e.g. for a zero row or column in the dimension being collapsed.
func PseudoInverseTransposed[T mat.Scalar](dst, mt, work *mat.Matrix[T]) error {
	if mt.Rows() < mt.Cols() {
		// dst = (Mᴴ·M)⁻¹·Mᴴ
		mat.GramRight(work, mt)
	} else {
		// dst = Mᴴ·(M·Mᴴ)⁻¹
		mat.Gram(work, mt)
	}
	if err := cholesky.Decompose(work); err != nil {
		return err
	}
	if err := cholesky.Invert(work); err != nil {
		return err
	}
	if mt.Rows() < mt.Cols() {
		return mat.Mul(dst, work, mt)
	}
	return mat.Mul(dst, mt, work)
}

// PseudoInverse computes the Moore–Penrose pseudo-inverse of m into dst,
// resized to cols(m)×rows(m). It allocates its own transpose and scratch
// buffers; use PseudoInverseTransposed to reuse buffers across calls.
func PseudoInverse[T mat.Scalar](dst, m *mat.Matrix[T]) error {
	n := min(m.Rows(), m.Cols())
	work := mat.NewMatrix[T](n, n)
	mt := mat.NewMatrix[T](m.Cols(), m.Rows())
	mat.ConjTranspose(mt, m)
	return PseudoInverseTransposed(dst, mt, work)
}

// PseudoInverseOf returns a newly allocated pseudo-inverse of m.
func PseudoInverseOf[T mat.Scalar](m *mat.Matrix[T]) (*mat.Matrix[T], error) {
	dst := &mat.Matrix[T]{}
	if err := PseudoInverse(dst, m); err != nil {
		return nil, err
	}
	return dst, nil
}
