// Package lsq solves over-determined linear systems by the normal-equations
// method and computes Moore–Penrose pseudo-inverses, with optional Tikhonov
// regularization (uniform or per-variable).
//
// Every routine is a pure function of its arguments plus caller-supplied
// scratch buffers. Work buffers are resized and overwritten; their contents
// afterwards are unspecified. Nothing here blocks, allocates hidden state,
// or retries: a factorization failure is reported immediately and
// regularization is the caller's remedy.
package lsq

import (
	"fmt"

	"github.com/voxfit/voxfit/internal/cholesky"
	"github.com/voxfit/voxfit/internal/mat"
)

// Solve computes x minimizing ‖M·x − b‖² via the normal equations: work is
// overwritten with Mᴴ·M and Cholesky-factored, then Mᴴ·b is back-solved into
// x. x and work are resized; m and b are never written. x must not alias b,
// and no buffer may be shared across concurrent calls.
//
// Fails with cholesky.ErrNotPositiveDefinite when M does not have full
// column rank (always the case for rows(M) < cols(M)).
func Solve[T mat.Scalar](x *mat.Vector[T], m *mat.Matrix[T], b *mat.Vector[T], work *mat.Matrix[T]) error {
	if m.Rows() != b.Len() {
		return fmt.Errorf("%w: solve: %d×%d matrix with length-%d rhs", mat.ErrDimensionMismatch, m.Rows(), m.Cols(), b.Len())
	}
	mat.Gram(work, m)
	if err := cholesky.Decompose(work); err != nil {
		return err
	}
	if err := mat.MulConjTransVec(x, m, b); err != nil {
		return err
	}
	return cholesky.Solve(x, work)
}

// SolveRegularized computes x minimizing ‖M·x − b‖² + λ‖x‖² by adding lambda
// to every diagonal entry of the normal-equations matrix before
// factorization. Any lambda > 0 makes the factored matrix positive-definite
// regardless of the rank of M. Buffer contract as for Solve.
func SolveRegularized[T mat.Scalar](x *mat.Vector[T], m *mat.Matrix[T], b *mat.Vector[T], lambda float64, work *mat.Matrix[T]) error {
	if m.Rows() != b.Len() {
		return fmt.Errorf("%w: solve regularized: %d×%d matrix with length-%d rhs", mat.ErrDimensionMismatch, m.Rows(), m.Cols(), b.Len())
	}
	mat.Gram(work, m)
	mat.AddToDiag(work, lambda)
	if err := cholesky.Decompose(work); err != nil {
		return err
	}
	if err := mat.MulConjTransVec(x, m, b); err != nil {
		return err
	}
	return cholesky.Solve(x, work)
}

// SolveRegularizedWeighted computes x minimizing ‖M·x − b‖² + ‖diag(w)·x‖²:
// diagonal entry i of the normal-equations matrix receives weights[i],
// giving per-variable regularization strength. Weights are real-valued even
// for complex matrices and len(weights) must equal cols(M). Buffer contract
// as for Solve.
func SolveRegularizedWeighted[T mat.Scalar](x *mat.Vector[T], m *mat.Matrix[T], b *mat.Vector[T], weights []float64, work *mat.Matrix[T]) error {
	if m.Rows() != b.Len() {
		return fmt.Errorf("%w: solve weighted: %d×%d matrix with length-%d rhs", mat.ErrDimensionMismatch, m.Rows(), m.Cols(), b.Len())
	}
	if len(weights) != m.Cols() {
		return fmt.Errorf("%w: solve weighted: %d weights for %d columns", mat.ErrDimensionMismatch, len(weights), m.Cols())
	}
	mat.Gram(work, m)
	if err := mat.AddWeightsToDiag(work, weights); err != nil {
		return err
	}
	if err := cholesky.Decompose(work); err != nil {
		return err
	}
	if err := mat.MulConjTransVec(x, m, b); err != nil {
		return err
	}
	return cholesky.Solve(x, work)
}
