// Copyright 2025 The Voxfit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"github.com/voxfit/voxfit/internal/cholesky"
	"github.com/voxfit/voxfit/internal/lsq"
	"github.com/voxfit/voxfit/mat"
)

// ErrNotPositiveDefinite is returned when Cholesky factorization encounters
// a non-positive pivot.
var ErrNotPositiveDefinite = cholesky.ErrNotPositiveDefinite

// Solve computes x minimizing ‖M·x − b‖² via the normal equations, using
// work as scratch for the Gram matrix.
func Solve[T mat.Scalar](x *mat.Vector[T], m *mat.Matrix[T], b *mat.Vector[T], work *mat.Matrix[T]) error {
	return lsq.Solve(x, m, b, work)
}

// SolveRegularized computes x minimizing ‖M·x − b‖² + λ‖x‖².
func SolveRegularized[T mat.Scalar](x *mat.Vector[T], m *mat.Matrix[T], b *mat.Vector[T], lambda float64, work *mat.Matrix[T]) error {
	return lsq.SolveRegularized(x, m, b, lambda, work)
}

// SolveRegularizedWeighted computes x minimizing ‖M·x − b‖² + ‖diag(w)·x‖².
func SolveRegularizedWeighted[T mat.Scalar](x *mat.Vector[T], m *mat.Matrix[T], b *mat.Vector[T], weights []float64, work *mat.Matrix[T]) error {
	return lsq.SolveRegularizedWeighted(x, m, b, weights, work)
}

// PseudoInverse computes the Moore–Penrose pseudo-inverse of m into dst.
func PseudoInverse[T mat.Scalar](dst, m *mat.Matrix[T]) error {
	return lsq.PseudoInverse(dst, m)
}

// PseudoInverseTransposed computes the pseudo-inverse of M given mt = Mᴴ,
// reusing the caller's work buffer for the Gram matrix.
func PseudoInverseTransposed[T mat.Scalar](dst, mt, work *mat.Matrix[T]) error {
	return lsq.PseudoInverseTransposed(dst, mt, work)
}

// PseudoInverseOf returns a newly allocated pseudo-inverse of m.
func PseudoInverseOf[T mat.Scalar](m *mat.Matrix[T]) (*mat.Matrix[T], error) {
	return lsq.PseudoInverseOf(m)
}

// Decompose Cholesky-factors a symmetric (Hermitian) positive-definite
// matrix in place.
func Decompose[T mat.Scalar](a *mat.Matrix[T]) error {
	return cholesky.Decompose(a)
}

// CholeskySolve back-solves L·Lᴴ·x = b in place given a factored buffer.
func CholeskySolve[T mat.Scalar](x *mat.Vector[T], a *mat.Matrix[T]) error {
	return cholesky.Solve(x, a)
}

// Invert computes the full inverse in place from a Cholesky factor.
func Invert[T mat.Scalar](a *mat.Matrix[T]) error {
	return cholesky.Invert(a)
}
