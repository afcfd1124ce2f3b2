// Package cholesky implements the in-place Cholesky factorization primitive
// for symmetric (Hermitian) positive-definite matrices: decomposition,
// triangular back-substitution, and full inversion from the factor.
//
// All routines operate on caller-supplied buffers and hold no state, so they
// are safe for concurrent use as long as buffers are not shared across calls.
package cholesky

import (
	"errors"
	"fmt"
	"math"

	"github.com/voxfit/voxfit/internal/mat"
)

// ErrNotPositiveDefinite is returned when factorization encounters a
// non-positive pivot. The input was not positive-definite; regularizing its
// diagonal is the caller's remedy.
var ErrNotPositiveDefinite = errors.New("matrix is not positive definite")

// Decompose factors the symmetric (Hermitian) positive-definite matrix a in
// place into its lower-triangular Cholesky factor L, with L·Lᴴ equal to the
// original matrix. Only the lower triangle and diagonal of a are read; the
// strict upper triangle is left untouched. On error the buffer contents are
// unspecified.
func Decompose[T mat.Scalar](a *mat.Matrix[T]) error {
	n := a.Rows()
	if a.Cols() != n {
		return fmt.Errorf("%w: cholesky: matrix is %d×%d, want square", mat.ErrDimensionMismatch, n, a.Cols())
	}
	conj := mat.Conjugator[T]()
	ad := a.Data()
	for j := 0; j < n; j++ {
		// Diagonal pivots are real by construction for Hermitian input.
		d := mat.RealPart(ad[j*n+j])
		for k := 0; k < j; k++ {
			l := ad[j*n+k]
			d -= mat.RealPart(l * conj(l))
		}
		if d <= 0 || math.IsNaN(d) {
			return fmt.Errorf("%w: non-positive pivot at index %d", ErrNotPositiveDefinite, j)
		}
		p := math.Sqrt(d)
		ad[j*n+j] = mat.FromFloat[T](p)
		inv := mat.FromFloat[T](1 / p)
		for i := j + 1; i < n; i++ {
			s := ad[i*n+j]
			for k := 0; k < j; k++ {
				s -= ad[i*n+k] * conj(ad[j*n+k])
			}
			ad[i*n+j] = s * inv
		}
	}
	return nil
}

// Solve back-solves L·Lᴴ·x = b in place given a buffer already factored by
// Decompose. On entry x holds b; on return it holds the solution.
func Solve[T mat.Scalar](x *mat.Vector[T], a *mat.Matrix[T]) error {
	n := a.Rows()
	if a.Cols() != n {
		return fmt.Errorf("%w: cholesky solve: matrix is %d×%d, want square", mat.ErrDimensionMismatch, n, a.Cols())
	}
	if x.Len() != n {
		return fmt.Errorf("%w: cholesky solve: vector length %d for a %d×%d factor", mat.ErrDimensionMismatch, x.Len(), n, n)
	}
	conj := mat.Conjugator[T]()
	ad, xd := a.Data(), x.Data()
	// Forward substitution: L·y = b.
	for i := 0; i < n; i++ {
		s := xd[i]
		for j := 0; j < i; j++ {
			s -= ad[i*n+j] * xd[j]
		}
		xd[i] = s / ad[i*n+i]
	}
	// Backward substitution: Lᴴ·x = y.
	for i := n - 1; i >= 0; i-- {
		s := xd[i]
		for j := i + 1; j < n; j++ {
			s -= conj(ad[j*n+i]) * xd[j]
		}
		xd[i] = s / ad[i*n+i]
	}
	return nil
}

// Invert computes, in place, the full inverse of the matrix whose Cholesky
// factor is stored in a. Both triangles of the buffer are filled on return.
func Invert[T mat.Scalar](a *mat.Matrix[T]) error {
	n := a.Rows()
	if a.Cols() != n {
		return fmt.Errorf("%w: cholesky invert: matrix is %d×%d, want square", mat.ErrDimensionMismatch, n, a.Cols())
	}
	conj := mat.Conjugator[T]()
	ad := a.Data()
	// Invert L in place, column by column. Within a column the factor
	// entries are read before they are overwritten.
	for j := 0; j < n; j++ {
		ad[j*n+j] = mat.FromFloat[T](1 / mat.RealPart(ad[j*n+j]))
		for i := j + 1; i < n; i++ {
			var s T
			for k := j; k < i; k++ {
				s += ad[i*n+k] * ad[k*n+j]
			}
			ad[i*n+j] = -s / ad[i*n+i]
		}
	}
	// A⁻¹ = (L⁻¹)ᴴ·(L⁻¹). Entry (i,j) only sums rows k ≥ max(i,j) of L⁻¹,
	// so filling the lower triangle top-down never reads an overwritten
	// cell.
	for j := 0; j < n; j++ {
		for i := j; i < n; i++ {
			var s T
			for k := i; k < n; k++ {
				s += conj(ad[k*n+i]) * ad[k*n+j]
			}
			ad[i*n+j] = s
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ad[i*n+j] = conj(ad[j*n+i])
		}
	}
	return nil
}
